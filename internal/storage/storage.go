package storage

import (
	"context"
	"time"
)

// DefaultPresignedURLExpiry is the default validity for presigned URLs.
const DefaultPresignedURLExpiry = 15 * time.Minute

// BackupStorage defines the interface for storing block snapshots in an
// S3-compatible object store. Backups are advisory; callers must tolerate
// failures without surfacing them to the user.
type BackupStorage interface {
	// UploadSnapshot writes a serialized block snapshot under the given
	// object key.
	UploadSnapshot(ctx context.Context, objectKey string, data []byte, contentType string) error

	// GeneratePresignedDownloadURL returns a temporary URL from which the
	// snapshot can be downloaded.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (url string, err error)

	// DeleteObject removes a snapshot from storage.
	DeleteObject(ctx context.Context, objectKey string) error
}
