package port

import (
	"context"
	"io"
)

// ObjectStorage abstracts where generated documents are kept. The local
// provider serves files through the API itself; the S3 provider hands out
// presigned URLs.
type ObjectStorage interface {
	// Save stores the object under key, overwriting any previous version.
	Save(ctx context.Context, key, contentType string, body io.Reader) error
	// Open returns the object contents for streaming to a client.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// DownloadURL returns a time-limited URL for fetching the object.
	DownloadURL(ctx context.Context, key string, expirySeconds int64) (string, error)
}
