package dto

import "videotube/domain/model"

type ReqRegister struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	FullName string `json:"fullName" form:"fullName"`
	Password string `json:"password" form:"password"`
}

// ReqLogin accepts either username or email as the identifier.
type ReqLogin struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ReqRefreshToken struct {
	RefreshToken string `json:"refreshToken"`
}

type ReqChangePassword struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type ReqUpdateAccount struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// TokenPair is an access/refresh token set produced by login or rotation.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResult is the login payload: sanitized user plus both tokens.
type LoginResult struct {
	User         *model.User `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}
