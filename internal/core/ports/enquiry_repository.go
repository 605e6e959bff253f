package ports

import (
	"context"

	"github.com/artfoliopro/portfolio-api/internal/core/domain"
)

// EnquiryRepository defines persistence operations for enquiries.
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *domain.Enquiry) (*domain.Enquiry, error)
	FindByID(ctx context.Context, id string) (*domain.Enquiry, error)
	// FindByArtist returns all enquiries addressed to one artist, newest first.
	FindByArtist(ctx context.Context, artistID string) ([]*domain.Enquiry, error)
	UpdateStatus(ctx context.Context, id string, status domain.EnquiryStatus) (*domain.Enquiry, error)
}
