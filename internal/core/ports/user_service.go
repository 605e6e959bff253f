package ports

import (
	"context"

	"github.com/artfoliopro/portfolio-api/internal/core/domain"
)

// UserService covers profile management and the artist directory.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*domain.User, error)
	// SetProfileImage stores the upload as a profile image and persists the
	// resulting thumbnail filename on the user record.
	SetProfileImage(ctx context.Context, userID string, upload MediaUpload) (*domain.User, error)
	// GetPublicProfile returns a user with email and password excluded.
	GetPublicProfile(ctx context.Context, id string) (*domain.User, error)
	ListArtists(ctx context.Context) ([]*domain.User, error)
	SaveArtist(ctx context.Context, identity Identity, artistID string) ([]string, error)
	UnsaveArtist(ctx context.Context, identity Identity, artistID string) ([]string, error)
	// ListSavedArtists resolves the caller's saved references to public
	// artist profiles.
	ListSavedArtists(ctx context.Context, identity Identity) ([]*domain.User, error)
}
