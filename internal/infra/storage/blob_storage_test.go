package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"gocloud.dev/blob/memblob"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *blobStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: "https://files.printdesk.example.com",
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestBlobStorage_Save(t *testing.T) {
	storage := newTestStorage(t)

	stored, err := storage.Save(context.Background(), "jobs/abc", "report.pdf", "application/pdf", strings.NewReader("%PDF-1.4 fake"))
	require.NoError(t, err)

	assert.Equal(t, "jobs/abc/report.pdf", stored.Key)
	assert.Equal(t, "https://files.printdesk.example.com/jobs/abc/report.pdf", stored.URL)
	assert.Equal(t, int64(len("%PDF-1.4 fake")), stored.Size)
	assert.Equal(t, "application/pdf", stored.ContentType)

	data, err := storage.bucket.ReadAll(context.Background(), stored.Key)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(data))
}

func TestBlobStorage_SaveInfersContentType(t *testing.T) {
	storage := newTestStorage(t)

	stored, err := storage.Save(context.Background(), "jobs/abc", "notes.txt", "", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Contains(t, stored.ContentType, "text/plain")
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "report.pdf", want: "report.pdf"},
		{in: "../../etc/passwd", want: "passwd"},
		{in: "my resume (final).pdf", want: "my_resume__final_.pdf"},
		{in: "C:\\Users\\me\\doc.docx", want: "doc.docx"},
		{in: "///", want: "file"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFileName(tt.in))
		})
	}
}
