package domain

import (
	"context"
	"fmt"
	"time"
)

// PNGContentType is the only content type accepted for uploads.
const PNGContentType = "image/png"

// UploadedFile describes a stored upload.
// swagger:model UploadedFile
type UploadedFile struct {
	URL         string `json:"url"`
	Name        string `json:"fileName"`
	ContentType string `json:"-"`
	Size        int64  `json:"-"`
}

// UploadFileName returns the object name for an upload by userID at the given instant:
// "{userID}-{unix milliseconds}.png". Names are not checked for uniqueness.
func UploadFileName(userID string, at time.Time) string {
	return fmt.Sprintf("%s-%d.png", userID, at.UnixMilli())
}

// BlobStore is the object storage holding uploads in a single bucket.
type BlobStore interface {
	// Upload stores data under name without overwriting an existing object.
	Upload(ctx context.Context, cred Credential, name, contentType string, data []byte) error
	// PublicURL returns the public URL for name. It is derived from name alone.
	PublicURL(name string) string
}

// UploadService defines file upload operations.
type UploadService interface {
	UploadPNG(ctx context.Context, cred Credential, contentType string, data []byte) (*UploadedFile, error)
}
