package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/artfoliopro/portfolio-api/internal/api/metrics"
	"github.com/artfoliopro/portfolio-api/internal/core/domain"
	"github.com/artfoliopro/portfolio-api/internal/core/ports"
)

// EnquiryDeduper abstracts the duplicate-submission guard (Redis).
type EnquiryDeduper interface {
	IsDuplicate(ctx context.Context, artistID, email, message string) (bool, error)
	Mark(ctx context.Context, artistID, email, message string) error
}

// EnquiryService implements the artist-client enquiry workflow.
type EnquiryService struct {
	repo  ports.EnquiryRepository
	users ports.UserRepository
	dedup EnquiryDeduper // nil disables duplicate suppression
	log   zerolog.Logger
}

func NewEnquiryService(repo ports.EnquiryRepository, users ports.UserRepository, dedup EnquiryDeduper, log zerolog.Logger) *EnquiryService {
	return &EnquiryService{repo: repo, users: users, dedup: dedup, log: log}
}

func (s *EnquiryService) Create(ctx context.Context, input ports.CreateEnquiryInput) (*domain.Enquiry, error) {
	target, err := s.users.FindByID(ctx, input.ArtistID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, err
	}
	if !target.IsArtist() {
		return nil, domain.ErrArtistNotFound
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	if s.dedup != nil {
		isDup, err := s.dedup.IsDuplicate(ctx, input.ArtistID, email, input.Message)
		if err != nil {
			s.log.Warn().Err(err).Str("artist_id", input.ArtistID).Msg("dedup check failed, accepting enquiry anyway")
		} else if isDup {
			return nil, domain.ErrDuplicateEnquiry
		}
	}

	enquiry := &domain.Enquiry{
		ArtistID:  input.ArtistID,
		ClientID:  input.ClientID,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     email,
		Message:   input.Message,
		Status:    domain.EnquiryPending,
		SentAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, enquiry)
	if err != nil {
		return nil, err
	}

	if s.dedup != nil {
		if err := s.dedup.Mark(ctx, input.ArtistID, email, input.Message); err != nil {
			s.log.Warn().Err(err).Str("enquiry_id", created.ID).Msg("failed to set dedup key")
		}
	}

	metrics.EnquiriesCreatedTotal.Inc()
	s.log.Info().Str("enquiry_id", created.ID).Str("artist_id", input.ArtistID).Msg("enquiry created")
	return created, nil
}

func (s *EnquiryService) ListForArtist(ctx context.Context, identity ports.Identity) ([]*domain.Enquiry, error) {
	if identity.Role != domain.RoleArtist {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByArtist(ctx, identity.UserID)
}

func (s *EnquiryService) Get(ctx context.Context, identity ports.Identity, id string) (*domain.Enquiry, error) {
	enquiry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if enquiry.ArtistID != identity.UserID {
		return nil, domain.ErrForbidden
	}

	// First read by the target artist marks the enquiry as read. Later
	// statuses never regress.
	if enquiry.Status == domain.EnquiryPending {
		updated, err := s.repo.UpdateStatus(ctx, id, domain.EnquiryRead)
		if err != nil {
			return nil, err
		}
		metrics.EnquiryTransitionsTotal.WithLabelValues(string(domain.EnquiryRead)).Inc()
		return updated, nil
	}

	return enquiry, nil
}

func (s *EnquiryService) SetStatus(ctx context.Context, identity ports.Identity, id string, status string) (*domain.Enquiry, error) {
	next := domain.EnquiryStatus(status)
	if !next.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	enquiry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if enquiry.ArtistID != identity.UserID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	metrics.EnquiryTransitionsTotal.WithLabelValues(string(next)).Inc()
	s.log.Info().Str("enquiry_id", id).Str("status", status).Msg("enquiry status updated")
	return updated, nil
}
