package service

import (
	"context"
	"io"
)

// StoredFile describes an object persisted by the FileStorage.
type StoredFile struct {
	Key         string // Storage key of the object inside the bucket.
	URL         string // Serving URL recorded on the PrintFile.
	Size        int64  // Bytes written.
	ContentType string
}

// FileStorage abstracts the blob store holding uploaded print documents.
type FileStorage interface {
	// Save streams one uploaded document into the bucket under a
	// job-scoped key and returns its stored metadata.
	Save(ctx context.Context, jobKey, fileName, contentType string, r io.Reader) (*StoredFile, error)
}
