package provider

import (
	"bytes"
	"context"
	"net/http"
	"net/url"

	"eventsgateway/internal/domain"
)

// BlobStore is a domain.BlobStore over the platform's storage API for one bucket.
type BlobStore struct {
	client *Client
	bucket string
}

// NewBlobStore returns a BlobStore writing to bucket.
func NewBlobStore(c *Client, bucket string) *BlobStore {
	return &BlobStore{client: c, bucket: bucket}
}

// Upload stores data under name. Existing objects are never replaced.
func (b *BlobStore) Upload(ctx context.Context, cred domain.Credential, name, contentType string, data []byte) error {
	path := "/storage/v1/object/" + url.PathEscape(b.bucket) + "/" + url.PathEscape(name)
	req, err := b.client.newRequest(ctx, http.MethodPost, path, cred.AccessToken, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.ContentLength = int64(len(data))
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")
	return b.client.do(req, nil)
}

// PublicURL returns the public object URL for name.
func (b *BlobStore) PublicURL(name string) string {
	return b.client.BaseURL() + "/storage/v1/object/public/" + url.PathEscape(b.bucket) + "/" + url.PathEscape(name)
}
