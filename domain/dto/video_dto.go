package dto

// ReqUploadVideo carries the metadata of a new upload; the blobs themselves
// arrive as multipart files and are staged to local paths by the handler.
type ReqUploadVideo struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

// ReqUpdateVideo is a partial update: nil means "leave unchanged". The new
// thumbnail, when present, is a staged local file path.
type ReqUpdateVideo struct {
	Title       *string
	Description *string
	IsPublished *bool
	Thumbnail   *string
}

// Empty reports whether the update carries no field at all.
func (r ReqUpdateVideo) Empty() bool {
	return r.Title == nil && r.Description == nil && r.IsPublished == nil && r.Thumbnail == nil
}

// WatchResult reports the outcome of a watch call.
type WatchResult struct {
	VideoID             string `json:"videoId"`
	UpdatedViews        int64  `json:"updatedViews"`
	WatchHistoryUpdated bool   `json:"watchHistoryUpdated"`
}

// ToggleResult is the uniform toggle-relation response.
type ToggleResult struct {
	Active bool `json:"active"`
}
