package avatar

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/muslimtime-api/internal/domain"
	s3infra "github.com/muslimtime-api/internal/infrastructure/s3"
)

type Service interface {
	// Upload stores a new avatar for the user and returns the updated user.
	Upload(ctx context.Context, userID, filename string, r io.Reader) (*domain.User, error)
	// Remove deletes the user's avatar and clears the photo URL.
	Remove(ctx context.Context, userID string) (*domain.User, error)
}

type blobStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

type service struct {
	blobs blobStore
	users userStore
}

func NewService(blobs blobStore, users userStore) Service {
	return &service{blobs: blobs, users: users}
}

func (s *service) Upload(ctx context.Context, userID, filename string, r io.Reader) (*domain.User, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	safeName := sanitizeFilename(filename)
	key := path.Join("avatars", userID, safeName)
	url, err := s.blobs.Upload(ctx, key, r, s3infra.DetectContentType(safeName))
	if err != nil {
		return nil, fmt.Errorf("upload avatar: %w", err)
	}

	// The old object only wastes storage, its deletion never blocks the
	// new avatar.
	if u.AvatarKey != "" && u.AvatarKey != key {
		if err := s.blobs.Delete(ctx, u.AvatarKey); err != nil {
			slog.Warn("failed to delete previous avatar",
				slog.String("key", u.AvatarKey), slog.String("error", err.Error()))
		}
	}

	if err := s.users.Update(ctx, userID, map[string]interface{}{
		"photo_url":  url,
		"avatar_key": key,
	}); err != nil {
		return nil, err
	}
	return s.users.Get(ctx, userID)
}

func (s *service) Remove(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if u.AvatarKey != "" {
		if err := s.blobs.Delete(ctx, u.AvatarKey); err != nil {
			return nil, fmt.Errorf("delete avatar: %w", err)
		}
	}

	if err := s.users.Update(ctx, userID, map[string]interface{}{
		"photo_url":  nil,
		"avatar_key": "",
	}); err != nil {
		return nil, err
	}
	return s.users.Get(ctx, userID)
}

// sanitizeFilename strips directory components and keeps only safe characters
// (alphanumeric, dot, dash, underscore) to prevent path traversal in S3 keys.
func sanitizeFilename(name string) string {
	name = path.Base(name) // drop any leading path components / traversal sequences
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	if result := b.String(); result != "" && result != "." && result != ".." {
		return result
	}
	return "_"
}
