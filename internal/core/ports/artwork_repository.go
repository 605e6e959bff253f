package ports

import (
	"context"

	"github.com/artfoliopro/portfolio-api/internal/core/domain"
)

// ArtworkFilter carries query parameters for listing artworks.
type ArtworkFilter struct {
	Category string // optional: exact category name
	ArtistID string // optional: scope to one artist
	Page     int    // 1-based
	Limit    int    // rows per page
}

// ArtworkUpdate carries a partial artwork mutation. Nil fields are left
// untouched.
type ArtworkUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Tags        []string
}

// ArtworkRepository defines persistence operations for artworks.
type ArtworkRepository interface {
	Create(ctx context.Context, artwork *domain.Artwork) (*domain.Artwork, error)
	FindByID(ctx context.Context, id string) (*domain.Artwork, error)
	// List returns one page of artworks newest-first plus the total count of
	// records matching the filter.
	List(ctx context.Context, filter ArtworkFilter) ([]*domain.Artwork, int64, error)
	// FindByArtist returns all artworks for one artist, newest first.
	FindByArtist(ctx context.Context, artistID string) ([]*domain.Artwork, error)
	Update(ctx context.Context, id string, update ArtworkUpdate) (*domain.Artwork, error)
	Delete(ctx context.Context, id string) error
}
