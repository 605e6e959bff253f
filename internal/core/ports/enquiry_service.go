package ports

import (
	"context"

	"github.com/artfoliopro/portfolio-api/internal/core/domain"
)

// CreateEnquiryInput carries an enquiry submission. ClientID is non-empty only
// when the sender presented a valid session token with role client.
type CreateEnquiryInput struct {
	ArtistID  string
	FirstName string
	LastName  string
	Email     string
	Message   string
	ClientID  string
}

// EnquiryService implements the enquiry status workflow.
type EnquiryService interface {
	Create(ctx context.Context, input CreateEnquiryInput) (*domain.Enquiry, error)
	ListForArtist(ctx context.Context, identity Identity) ([]*domain.Enquiry, error)
	// Get returns one enquiry for its target artist. A pending enquiry is
	// moved to read as a side effect of the read itself.
	Get(ctx context.Context, identity Identity, id string) (*domain.Enquiry, error)
	SetStatus(ctx context.Context, identity Identity, id string, status string) (*domain.Enquiry, error)
}
