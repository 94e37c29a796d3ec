package dto

type ReqCreatePlaylist struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	VideoIDs    []string `json:"videoIds"`
}

type ReqUpdatePlaylist struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ReqContent struct {
	Content string `json:"content"`
}
