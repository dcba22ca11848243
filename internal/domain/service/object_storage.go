package service

import (
	"context"
	"io"
)

// UploadProgress is reported while an upload streams.
type UploadProgress struct {
	Key        string
	Written    int64
	Total      int64
	Percentage int
}

// UploadInput describes one object to store.
type UploadInput struct {
	Key         string
	ContentType string
	Size        int64
	Body        io.Reader
	// OnProgress, if set, is called as bytes are written.
	OnProgress func(UploadProgress)
}

// UploadResult is where a stored object can be fetched.
type UploadResult struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// ObjectStorage stores binary blobs such as product images.
type ObjectStorage interface {
	Upload(ctx context.Context, input *UploadInput) (*UploadResult, error)

	Delete(ctx context.Context, key string) error
}
