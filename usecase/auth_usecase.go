package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"

	"videotube/domain/apperror"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
	"videotube/infrastructure/utils"
)

// TokenConfig carries the signing material and lifetimes for both token kinds.
// Now supplies the issue time; nil means the wall clock.
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Now           func() time.Time
}

type IAuthUsecase interface {
	Register(ctx context.Context, req dto.ReqRegister, avatarPath, coverPath string) (*model.User, error)
	Login(ctx context.Context, req dto.ReqLogin) (*dto.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error)
	Logout(ctx context.Context, userID string) error
	ChangePassword(ctx context.Context, userID string, req dto.ReqChangePassword) error
}

type authUsecase struct {
	userRepo  repository.IUser
	blobStore repository.IBlobStore
	tokens    TokenConfig
}

func NewAuthUsecase(userRepo repository.IUser, blobStore repository.IBlobStore, tokens TokenConfig) IAuthUsecase {
	return &authUsecase{userRepo: userRepo, blobStore: blobStore, tokens: tokens}
}

func (u *authUsecase) Register(ctx context.Context, req dto.ReqRegister, avatarPath, coverPath string) (*model.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.TrimSpace(req.Email)
	fullName := strings.TrimSpace(req.FullName)
	if username == "" || email == "" || fullName == "" || req.Password == "" {
		return nil, apperror.BadRequest("All fields are required")
	}
	if avatarPath == "" {
		return nil, apperror.BadRequest("Avatar file is required")
	}

	exists, err := u.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.BadRequest("User with email or username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	avatar, err := u.blobStore.Upload(ctx, avatarPath)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("avatar upload failed")
		return nil, apperror.Internal("Avatar upload failed")
	}
	coverURL := ""
	if coverPath != "" {
		cover, err := u.blobStore.Upload(ctx, coverPath)
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("cover image upload failed")
			return nil, apperror.Internal("Cover image upload failed")
		}
		coverURL = cover.URL
	}

	user, err := u.userRepo.Create(ctx, model.User{
		Username:   username,
		Email:      email,
		FullName:   fullName,
		Password:   string(hash),
		Avatar:     avatar.URL,
		CoverImage: coverURL,
	})
	if err != nil {
		if err == repository.ErrDuplicate {
			return nil, apperror.BadRequest("User with email or username already exists")
		}
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, req dto.ReqLogin) (*dto.LoginResult, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.TrimSpace(req.Email)
	if username == "" && email == "" {
		return nil, apperror.BadRequest("Username or email is required")
	}

	user, err := u.userRepo.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, notFoundOr(err, "User does not exist")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthorized("Invalid user credentials")
	}

	pair, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return &dto.LoginResult{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Refresh rotates the session: the presented token must match the one stored
// on the user, and a fresh pair replaces it. A replayed token fails the match
// and is rejected.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	if refreshToken == "" {
		return nil, apperror.Unauthorized("Refresh token is required")
	}

	claims := &model.RefreshClaims{}
	_, err := jwt.ParseWithClaims(refreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(u.tokens.RefreshSecret), nil
	})
	if err != nil {
		return nil, apperror.Unauthorized("Invalid refresh token")
	}

	userID, err := parseObjectID(claims.UserID, "refresh token")
	if err != nil {
		return nil, apperror.Unauthorized("Invalid refresh token")
	}
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid refresh token")
	}
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, apperror.Unauthorized("Refresh token is expired or used")
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) Logout(ctx context.Context, userID string) error {
	id, err := parseObjectID(userID, "user id")
	if err != nil {
		return err
	}
	return u.userRepo.UpdateRefreshToken(ctx, id, "")
}

func (u *authUsecase) ChangePassword(ctx context.Context, userID string, req dto.ReqChangePassword) error {
	if req.OldPassword == "" || req.NewPassword == "" {
		return apperror.BadRequest("Old and new password are required")
	}
	id, err := parseObjectID(userID, "user id")
	if err != nil {
		return err
	}
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "User does not exist")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return apperror.BadRequest("Invalid old password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(ctx, id, string(hash))
}

// issueTokens signs a fresh access/refresh pair and persists the refresh half
// as the user's single active session token.
func (u *authUsecase) issueTokens(ctx context.Context, user *model.User) (*dto.TokenPair, error) {
	now := u.now()

	accessClaims := model.UserClaims{
		UserID:   user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(u.tokens.AccessTTL).Unix(),
		},
	}
	accessToken, err := utils.GenerateToken(accessClaims, u.tokens.AccessSecret)
	if err != nil {
		return nil, apperror.Internal("Token generation failed")
	}

	refreshClaims := model.RefreshClaims{
		UserID: user.ID.Hex(),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(u.tokens.RefreshTTL).Unix(),
		},
	}
	refreshToken, err := utils.GenerateToken(refreshClaims, u.tokens.RefreshSecret)
	if err != nil {
		return nil, apperror.Internal("Token generation failed")
	}

	if err := u.userRepo.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}
	return &dto.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (u *authUsecase) now() time.Time {
	if u.tokens.Now != nil {
		return u.tokens.Now()
	}
	return utils.GetCurrentTime()
}
