package services

import (
	"context"
	"fmt"
	"time"

	"eventsgateway/internal/domain"
)

type uploadService struct {
	store domain.BlobStore
	now   Clock
}

// NewUploadService creates an UploadService storing PNG files in store.
func NewUploadService(store domain.BlobStore, clock Clock) domain.UploadService {
	if clock == nil {
		clock = time.Now
	}
	return &uploadService{store: store, now: clock}
}

// UploadPNG stores data as "{user_id}-{unix_ms}.png". The content type must be exactly image/png.
func (s *uploadService) UploadPNG(ctx context.Context, cred domain.Credential, contentType string, data []byte) (*domain.UploadedFile, error) {
	userID := cred.UserID()
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if contentType != domain.PNGContentType {
		return nil, domain.ErrUnsupportedContentType
	}
	name := domain.UploadFileName(userID, s.now())
	if err := s.store.Upload(ctx, cred, name, domain.PNGContentType, data); err != nil {
		return nil, fmt.Errorf("upload %s: %w", name, err)
	}
	return &domain.UploadedFile{
		URL:         s.store.PublicURL(name),
		Name:        name,
		ContentType: domain.PNGContentType,
		Size:        int64(len(data)),
	}, nil
}
