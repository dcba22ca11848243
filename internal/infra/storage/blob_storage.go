// Package storage keeps product images in a gocloud blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Registered drivers.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxBytes      int64
	logger        *slog.Logger
}

// Params defines the dependencies of the blob storage.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.ObjectStorage, error) {
	cfg := params.Config.Blob

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket, cfg.PublicBaseURL, cfg.MaxUploadBytes, params.Logger), nil
}

// NewBlobStorage wraps an open bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string, maxBytes int64, logger *slog.Logger) service.ObjectStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		maxBytes:      maxBytes,
		logger:        logger,
	}
}

// Upload streams input.Body into the bucket. Bodies over the size limit are
// abandoned without leaving a partial object behind.
func (s *blobStorage) Upload(ctx context.Context, input *service.UploadInput) (*service.UploadResult, error) {
	if s.maxBytes > 0 && input.Size > s.maxBytes {
		return nil, domainerrors.ErrUploadTooLarge
	}

	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer, err := s.bucket.NewWriter(writeCtx, input.Key, &blob.WriterOptions{ContentType: input.ContentType})
	if err != nil {
		return nil, domainerrors.ErrStorageUnavailable.WrapMessage(err.Error())
	}

	body := input.Body
	if s.maxBytes > 0 {
		body = io.LimitReader(body, s.maxBytes+1)
	}
	reader := newProgressReader(body, input.Key, input.Size, input.OnProgress)

	written, copyErr := io.Copy(writer, reader)
	if copyErr == nil && s.maxBytes > 0 && written > s.maxBytes {
		copyErr = domainerrors.ErrUploadTooLarge
	}
	if copyErr != nil {
		// Cancelling before Close discards the object.
		cancel()
		_ = writer.Close()

		return nil, copyErr
	}

	if err := writer.Close(); err != nil {
		return nil, domainerrors.ErrStorageUnavailable.WrapMessage(err.Error())
	}
	reader.finish()

	s.logger.InfoContext(ctx, "Object uploaded",
		slog.String("key", input.Key),
		slog.Int64("bytes", written),
	)

	return &service.UploadResult{
		Key:  input.Key,
		URL:  s.publicURL(input.Key),
		Size: written,
	}, nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if errors.IsNotFound(err) {
			return nil
		}

		return domainerrors.ErrStorageUnavailable.WrapMessage(err.Error())
	}

	return nil
}

func (s *blobStorage) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return key
	}

	return s.publicBaseURL + "/" + key
}
