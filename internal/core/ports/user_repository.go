package ports

import (
	"context"
	"time"

	"github.com/artfoliopro/portfolio-api/internal/core/domain"
)

// ProfileUpdate carries a partial profile mutation. Nil fields are left
// untouched; only supplied fields change.
type ProfileUpdate struct {
	DisplayName       *string
	Location          *string
	Bio               *string
	ProfessionalTitle *string
	Website           *string
	SocialLinks       *domain.SocialLinks
	Categories        []string
}

// UserRepository defines persistence operations for user records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs resolves a set of user ids, skipping ids that no longer exist.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.User, error)
	SetProfileImage(ctx context.Context, id, filename string) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	// ListArtists returns all users with role artist, newest first.
	ListArtists(ctx context.Context) ([]*domain.User, error)
	// AddSavedArtist appends artistID to the user's saved set and returns the
	// updated list. Fails with domain.ErrArtistAlreadySaved when present.
	AddSavedArtist(ctx context.Context, userID, artistID string) ([]string, error)
	// RemoveSavedArtist removes artistID if present (idempotent) and returns
	// the updated list.
	RemoveSavedArtist(ctx context.Context, userID, artistID string) ([]string, error)
}
