package repository

import "context"

// BlobInfo describes a stored blob. Duration is only reported for media the
// store can probe (videos); zero otherwise.
type BlobInfo struct {
	URL      string
	Duration float64
}

// IBlobStore is the external object storage for media files. Upload consumes a
// staged local file; callers remove the local file regardless of outcome.
type IBlobStore interface {
	Upload(ctx context.Context, localPath string) (*BlobInfo, error)
	Delete(ctx context.Context, url string) error
}
