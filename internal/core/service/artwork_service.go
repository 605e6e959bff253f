package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/artfoliopro/portfolio-api/internal/api/metrics"
	"github.com/artfoliopro/portfolio-api/internal/core/domain"
	"github.com/artfoliopro/portfolio-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ArtworkService implements catalog use cases with ownership checks.
type ArtworkService struct {
	repo  ports.ArtworkRepository
	users ports.UserRepository
	media ports.MediaStore
	log   zerolog.Logger
}

func NewArtworkService(repo ports.ArtworkRepository, users ports.UserRepository, media ports.MediaStore, log zerolog.Logger) *ArtworkService {
	return &ArtworkService{repo: repo, users: users, media: media, log: log}
}

func (s *ArtworkService) Create(ctx context.Context, identity ports.Identity, input ports.CreateArtworkInput) (*domain.Artwork, error) {
	if identity.Role != domain.RoleArtist {
		return nil, domain.ErrForbidden
	}
	if input.Title == "" || input.Category == "" || input.Image == nil {
		return nil, domain.ErrArtworkInvalid
	}

	stored, err := s.media.Store(ctx, *input.Image, ports.MediaKindArtwork)
	if err != nil {
		return nil, err
	}

	artwork := &domain.Artwork{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Tags:        input.Tags,
		ArtistID:    identity.UserID,
		CreatedAt:   time.Now().UTC(),
		Image: domain.ImageSet{
			Original:  stored.Original,
			Thumbnail: stored.Thumbnail,
			Medium:    stored.Medium,
		},
	}

	created, err := s.repo.Create(ctx, artwork)
	if err != nil {
		s.log.Error().Err(err).Str("artist_id", identity.UserID).Msg("failed to create artwork")
		return nil, err
	}

	metrics.ArtworksCreatedTotal.WithLabelValues(created.Category).Inc()
	s.log.Info().Str("artwork_id", created.ID).Str("artist_id", identity.UserID).Msg("artwork created")
	return created, nil
}

func (s *ArtworkService) List(ctx context.Context, input ports.ListArtworksInput) (*ports.ListArtworksResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	artworks, total, err := s.repo.List(ctx, ports.ArtworkFilter{
		Category: input.Category,
		ArtistID: input.ArtistID,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	summaries, err := s.artistSummaries(ctx, artworks)
	if err != nil {
		return nil, err
	}

	items := make([]ports.ArtworkListItem, 0, len(artworks))
	for _, a := range artworks {
		items = append(items, ports.ArtworkListItem{Artwork: a, Artist: summaries[a.ArtistID]})
	}

	return &ports.ListArtworksResult{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (s *ArtworkService) Get(ctx context.Context, id string) (*ports.ArtworkDetail, error) {
	artwork, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	artist, err := s.users.FindByID(ctx, artwork.ArtistID)
	if err != nil {
		return nil, err
	}

	return &ports.ArtworkDetail{Artwork: artwork, Artist: artist.Public()}, nil
}

func (s *ArtworkService) Update(ctx context.Context, identity ports.Identity, id string, update ports.ArtworkUpdate) (*domain.Artwork, error) {
	if err := s.requireOwner(ctx, identity, id); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, update)
}

func (s *ArtworkService) Delete(ctx context.Context, identity ports.Identity, id string) error {
	if err := s.requireOwner(ctx, identity, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("artwork_id", id).Str("artist_id", identity.UserID).Msg("artwork deleted")
	return nil
}

func (s *ArtworkService) ListByArtist(ctx context.Context, artistID string) ([]*domain.Artwork, error) {
	return s.repo.FindByArtist(ctx, artistID)
}

// requireOwner checks that identity is the artwork's publishing artist.
func (s *ArtworkService) requireOwner(ctx context.Context, identity ports.Identity, id string) error {
	artwork, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !artwork.OwnedBy(identity.UserID) {
		return domain.ErrForbidden
	}
	return nil
}

// artistSummaries batch-resolves the restricted artist projection for a page.
func (s *ArtworkService) artistSummaries(ctx context.Context, artworks []*domain.Artwork) (map[string]ports.ArtistSummary, error) {
	if len(artworks) == 0 {
		return map[string]ports.ArtistSummary{}, nil
	}

	seen := make(map[string]struct{}, len(artworks))
	ids := make([]string, 0, len(artworks))
	for _, a := range artworks {
		if _, ok := seen[a.ArtistID]; !ok {
			seen[a.ArtistID] = struct{}{}
			ids = append(ids, a.ArtistID)
		}
	}

	artists, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	summaries := make(map[string]ports.ArtistSummary, len(artists))
	for _, u := range artists {
		summaries[u.ID] = ports.ArtistSummary{
			ID:           u.ID,
			DisplayName:  u.DisplayName,
			ProfileImage: u.ProfileImage,
		}
	}
	return summaries, nil
}
