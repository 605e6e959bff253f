package ports

import (
	"context"

	"github.com/artfoliopro/portfolio-api/internal/core/domain"
)

// CreateArtworkInput carries all data needed to publish an artwork.
type CreateArtworkInput struct {
	Title       string
	Description string
	Category    string
	Tags        []string
	Image       *MediaUpload
}

// ArtistSummary is the restricted artist projection joined onto list pages.
type ArtistSummary struct {
	ID           string
	DisplayName  string
	ProfileImage string
}

// ArtworkListItem pairs an artwork with its artist summary.
type ArtworkListItem struct {
	Artwork *domain.Artwork
	Artist  ArtistSummary
}

// ListArtworksInput carries the list endpoint parameters. Zero Page/Limit
// fall back to page 1 / limit 20.
type ListArtworksInput struct {
	Category string
	ArtistID string
	Page     int
	Limit    int
}

// ListArtworksResult is one page of artworks plus pagination totals.
type ListArtworksResult struct {
	Items []ArtworkListItem
	Total int64
	Page  int
	Limit int
	Pages int
}

// ArtworkDetail is the full artwork view: the record joined with the owning
// artist's public profile.
type ArtworkDetail struct {
	Artwork *domain.Artwork
	Artist  *domain.User
}

// ArtworkService defines use-case operations for the catalog.
type ArtworkService interface {
	Create(ctx context.Context, identity Identity, input CreateArtworkInput) (*domain.Artwork, error)
	List(ctx context.Context, input ListArtworksInput) (*ListArtworksResult, error)
	Get(ctx context.Context, id string) (*ArtworkDetail, error)
	Update(ctx context.Context, identity Identity, id string, update ArtworkUpdate) (*domain.Artwork, error)
	Delete(ctx context.Context, identity Identity, id string) error
	ListByArtist(ctx context.Context, artistID string) ([]*domain.Artwork, error)
}
