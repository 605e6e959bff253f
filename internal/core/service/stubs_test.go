package service

import (
	"context"
	"fmt"
	"time"

	"github.com/artfoliopro/portfolio-api/internal/core/domain"
	"github.com/artfoliopro/portfolio-api/internal/core/ports"
)

// In-memory repository doubles shared by the service tests.

type stubUserRepo struct {
	users map[string]*domain.User
	order []string
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.SavedArtists = append([]string(nil), u.SavedArtists...)
	clone.Categories = append([]string(nil), u.Categories...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[copy.ID] = cloneUser(copy)
	r.order = append(r.order, copy.ID)
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, update ports.ProfileUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.DisplayName != nil {
		u.DisplayName = *update.DisplayName
	}
	if update.Location != nil {
		u.Location = *update.Location
	}
	if update.Bio != nil {
		u.Bio = *update.Bio
	}
	if update.ProfessionalTitle != nil {
		u.ProfessionalTitle = *update.ProfessionalTitle
	}
	if update.Website != nil {
		u.Website = *update.Website
	}
	if update.SocialLinks != nil {
		u.SocialLinks = *update.SocialLinks
	}
	if update.Categories != nil {
		u.Categories = append([]string(nil), update.Categories...)
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) SetProfileImage(_ context.Context, id, filename string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.ProfileImage = filename
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastLogin = at
	return nil
}

func (r *stubUserRepo) ListArtists(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		if u := r.users[r.order[i]]; u.Role == domain.RoleArtist {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) AddSavedArtist(_ context.Context, userID, artistID string) ([]string, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	for _, id := range u.SavedArtists {
		if id == artistID {
			return nil, domain.ErrArtistAlreadySaved
		}
	}
	u.SavedArtists = append(u.SavedArtists, artistID)
	return append([]string(nil), u.SavedArtists...), nil
}

func (r *stubUserRepo) RemoveSavedArtist(_ context.Context, userID, artistID string) ([]string, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	kept := u.SavedArtists[:0]
	for _, id := range u.SavedArtists {
		if id != artistID {
			kept = append(kept, id)
		}
	}
	u.SavedArtists = kept
	return append([]string(nil), u.SavedArtists...), nil
}

// mustAddUser seeds the stub ignoring uniqueness bookkeeping errors.
func (r *stubUserRepo) mustAddUser(u *domain.User) *domain.User {
	created, err := r.Create(context.Background(), u)
	if err != nil {
		panic(err)
	}
	return created
}

type stubArtworkRepo struct {
	artworks []*domain.Artwork
	seq      int
}

func newStubArtworkRepo() *stubArtworkRepo {
	return &stubArtworkRepo{}
}

func cloneArtwork(a *domain.Artwork) *domain.Artwork {
	clone := *a
	clone.Tags = append([]string(nil), a.Tags...)
	return &clone
}

func (r *stubArtworkRepo) Create(_ context.Context, artwork *domain.Artwork) (*domain.Artwork, error) {
	r.seq++
	copy := cloneArtwork(artwork)
	copy.ID = fmt.Sprintf("art-%d", r.seq)
	r.artworks = append(r.artworks, cloneArtwork(copy))
	return copy, nil
}

func (r *stubArtworkRepo) FindByID(_ context.Context, id string) (*domain.Artwork, error) {
	for _, a := range r.artworks {
		if a.ID == id {
			return cloneArtwork(a), nil
		}
	}
	return nil, domain.ErrArtworkNotFound
}

func (r *stubArtworkRepo) List(_ context.Context, filter ports.ArtworkFilter) ([]*domain.Artwork, int64, error) {
	matched := make([]*domain.Artwork, 0)
	for i := len(r.artworks) - 1; i >= 0; i-- { // newest first
		a := r.artworks[i]
		if filter.Category != "" && a.Category != filter.Category {
			continue
		}
		if filter.ArtistID != "" && a.ArtistID != filter.ArtistID {
			continue
		}
		matched = append(matched, cloneArtwork(a))
	}

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return []*domain.Artwork{}, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *stubArtworkRepo) FindByArtist(_ context.Context, artistID string) ([]*domain.Artwork, error) {
	out := make([]*domain.Artwork, 0)
	for i := len(r.artworks) - 1; i >= 0; i-- {
		if r.artworks[i].ArtistID == artistID {
			out = append(out, cloneArtwork(r.artworks[i]))
		}
	}
	return out, nil
}

func (r *stubArtworkRepo) Update(_ context.Context, id string, update ports.ArtworkUpdate) (*domain.Artwork, error) {
	for _, a := range r.artworks {
		if a.ID != id {
			continue
		}
		if update.Title != nil {
			a.Title = *update.Title
		}
		if update.Description != nil {
			a.Description = *update.Description
		}
		if update.Category != nil {
			a.Category = *update.Category
		}
		if update.Tags != nil {
			a.Tags = append([]string(nil), update.Tags...)
		}
		return cloneArtwork(a), nil
	}
	return nil, domain.ErrArtworkNotFound
}

func (r *stubArtworkRepo) Delete(_ context.Context, id string) error {
	for i, a := range r.artworks {
		if a.ID == id {
			r.artworks = append(r.artworks[:i], r.artworks[i+1:]...)
			return nil
		}
	}
	return domain.ErrArtworkNotFound
}

type stubEnquiryRepo struct {
	enquiries []*domain.Enquiry
	seq       int
}

func newStubEnquiryRepo() *stubEnquiryRepo {
	return &stubEnquiryRepo{}
}

func cloneEnquiry(e *domain.Enquiry) *domain.Enquiry {
	clone := *e
	return &clone
}

func (r *stubEnquiryRepo) Create(_ context.Context, enquiry *domain.Enquiry) (*domain.Enquiry, error) {
	r.seq++
	copy := cloneEnquiry(enquiry)
	copy.ID = fmt.Sprintf("enq-%d", r.seq)
	r.enquiries = append(r.enquiries, cloneEnquiry(copy))
	return copy, nil
}

func (r *stubEnquiryRepo) FindByID(_ context.Context, id string) (*domain.Enquiry, error) {
	for _, e := range r.enquiries {
		if e.ID == id {
			return cloneEnquiry(e), nil
		}
	}
	return nil, domain.ErrEnquiryNotFound
}

func (r *stubEnquiryRepo) FindByArtist(_ context.Context, artistID string) ([]*domain.Enquiry, error) {
	out := make([]*domain.Enquiry, 0)
	for i := len(r.enquiries) - 1; i >= 0; i-- {
		if r.enquiries[i].ArtistID == artistID {
			out = append(out, cloneEnquiry(r.enquiries[i]))
		}
	}
	return out, nil
}

func (r *stubEnquiryRepo) UpdateStatus(_ context.Context, id string, status domain.EnquiryStatus) (*domain.Enquiry, error) {
	for _, e := range r.enquiries {
		if e.ID == id {
			e.Status = status
			return cloneEnquiry(e), nil
		}
	}
	return nil, domain.ErrEnquiryNotFound
}

type stubMediaStore struct {
	stored []ports.MediaUpload
	err    error
}

func (s *stubMediaStore) Store(_ context.Context, upload ports.MediaUpload, kind string) (*ports.StoredMedia, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.stored = append(s.stored, upload)
	name := fmt.Sprintf("%s-%d.jpg", kind, len(s.stored))
	return &ports.StoredMedia{
		Original:  name,
		Thumbnail: "thumb-" + name,
		Medium:    "medium-" + name,
	}, nil
}

type stubDeduper struct {
	seen map[string]bool
}

func newStubDeduper() *stubDeduper {
	return &stubDeduper{seen: make(map[string]bool)}
}

func (d *stubDeduper) key(artistID, email, message string) string {
	return artistID + "|" + email + "|" + message
}

func (d *stubDeduper) IsDuplicate(_ context.Context, artistID, email, message string) (bool, error) {
	return d.seen[d.key(artistID, email, message)], nil
}

func (d *stubDeduper) Mark(_ context.Context, artistID, email, message string) error {
	d.seen[d.key(artistID, email, message)] = true
	return nil
}
