package port

import "context"

// ObjectStorage abstracts read-only access to case documents in cloud
// object storage. Stored documents are never mutated.
type ObjectStorage interface {
	// GetPresignedURL returns a time-limited download URL for an object.
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
	// DownloadToTemp copies an object to a local temporary file and
	// returns its path.
	DownloadToTemp(ctx context.Context, bucket, key string) (string, error)
}
