// Package storage implements blob storage for uploaded print documents.
package storage

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"path"
	"strings"

	"printdesk/config"
	"printdesk/internal/domain/service"
	"printdesk/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the bucket schemes the deployment may point BucketURL at.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for the blob storage, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the configured bucket and returns a FileStorage backed by it.
func NewBlobStorage(params Params) (service.FileStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket url must be provided")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing blob storage bucket")

			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Save streams one uploaded document into the bucket under a job-scoped key.
func (s *blobStorage) Save(ctx context.Context, jobKey, fileName, contentType string, r io.Reader) (*service.StoredFile, error) {
	key := jobKey + "/" + sanitizeFileName(fileName)

	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(fileName))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open writer for %s", key)
	}

	size, err := io.Copy(writer, r)
	if err != nil {
		writer.Close()

		return nil, errors.Wrapf(err, "failed to write %s", key)
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to finalize %s", key)
	}

	s.logger.Debug("Stored print document",
		slog.String("key", key),
		slog.String("content_type", contentType),
		slog.String("size", util.FormatBytes(size)),
	)

	return &service.StoredFile{
		Key:         key,
		URL:         s.publicBaseURL + "/" + key,
		Size:        size,
		ContentType: contentType,
	}, nil
}

// sanitizeFileName strips path separators and other characters that would
// break the storage key or the serving URL.
func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "/" || name == "." {
		return "file"
	}

	var cleaned strings.Builder
	cleaned.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			cleaned.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			cleaned.WriteRune(r)
		default:
			cleaned.WriteRune('_')
		}
	}

	if cleaned.Len() == 0 {
		return "file"
	}

	return cleaned.String()
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewBlobStorage),
)
