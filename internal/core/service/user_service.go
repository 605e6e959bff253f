package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/artfoliopro/portfolio-api/internal/core/domain"
	"github.com/artfoliopro/portfolio-api/internal/core/ports"
)

// UserService implements profile management and the artist directory.
type UserService struct {
	repo  ports.UserRepository
	media ports.MediaStore
	log   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, media ports.MediaStore, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, media: media, log: log}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, update ports.ProfileUpdate) (*domain.User, error) {
	return s.repo.UpdateProfile(ctx, userID, update)
}

func (s *UserService) SetProfileImage(ctx context.Context, userID string, upload ports.MediaUpload) (*domain.User, error) {
	stored, err := s.media.Store(ctx, upload, ports.MediaKindProfile)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.SetProfileImage(ctx, userID, stored.Thumbnail)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Str("file", stored.Thumbnail).Msg("profile image updated")
	return user, nil
}

func (s *UserService) GetPublicProfile(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

func (s *UserService) ListArtists(ctx context.Context) ([]*domain.User, error) {
	artists, err := s.repo.ListArtists(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]*domain.User, 0, len(artists))
	for _, a := range artists {
		public = append(public, a.Public())
	}
	return public, nil
}

func (s *UserService) SaveArtist(ctx context.Context, identity ports.Identity, artistID string) ([]string, error) {
	if err := s.requireArtist(ctx, artistID); err != nil {
		return nil, err
	}
	return s.repo.AddSavedArtist(ctx, identity.UserID, artistID)
}

func (s *UserService) UnsaveArtist(ctx context.Context, identity ports.Identity, artistID string) ([]string, error) {
	return s.repo.RemoveSavedArtist(ctx, identity.UserID, artistID)
}

func (s *UserService) ListSavedArtists(ctx context.Context, identity ports.Identity) ([]*domain.User, error) {
	user, err := s.repo.FindByID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if len(user.SavedArtists) == 0 {
		return []*domain.User{}, nil
	}

	artists, err := s.repo.FindByIDs(ctx, user.SavedArtists)
	if err != nil {
		return nil, err
	}

	public := make([]*domain.User, 0, len(artists))
	for _, a := range artists {
		public = append(public, a.Public())
	}
	return public, nil
}

// requireArtist resolves id and verifies the record has role artist.
func (s *UserService) requireArtist(ctx context.Context, id string) error {
	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrArtistNotFound
		}
		return err
	}
	if !target.IsArtist() {
		return domain.ErrArtistNotFound
	}
	return nil
}
