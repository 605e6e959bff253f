package handler

import (
	"time"

	"github.com/artfoliopro/portfolio-api/internal/core/domain"
	"github.com/artfoliopro/portfolio-api/internal/core/ports"
)

// Response-only types owned by the transport layer. These are intentionally
// separate from ports/domain types so the JSON contract is not coupled to
// internal service changes.

type updateArtworkRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Tags        []string `json:"tags"`
}

type artistSummaryResponse struct {
	ID           string `json:"id"`
	DisplayName  string `json:"display_name"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// artworkSummaryResponse is the item used in list responses: the artwork plus
// the restricted artist projection.
type artworkSummaryResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Category    string                `json:"category"`
	Image       domain.ImageSet       `json:"image"`
	Tags        []string              `json:"tags,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	Artist      artistSummaryResponse `json:"artist"`
}

type paginationResponse struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

type listArtworksResponse struct {
	Data       []artworkSummaryResponse `json:"data"`
	Pagination paginationResponse       `json:"pagination"`
}

// artworkDetailResponse joins the artwork with the full public artist profile.
type artworkDetailResponse struct {
	Artwork *domain.Artwork `json:"artwork"`
	Artist  *domain.User    `json:"artist"`
}

func toArtworkSummary(item ports.ArtworkListItem) artworkSummaryResponse {
	return artworkSummaryResponse{
		ID:          item.Artwork.ID,
		Title:       item.Artwork.Title,
		Description: item.Artwork.Description,
		Category:    item.Artwork.Category,
		Image:       item.Artwork.Image,
		Tags:        item.Artwork.Tags,
		CreatedAt:   item.Artwork.CreatedAt,
		Artist: artistSummaryResponse{
			ID:           item.Artist.ID,
			DisplayName:  item.Artist.DisplayName,
			ProfileImage: item.Artist.ProfileImage,
		},
	}
}
