package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/artfoliopro/portfolio-api/internal/core/domain"
	"github.com/artfoliopro/portfolio-api/internal/core/ports"
)

func newArtworkFixture() (*ArtworkService, *stubArtworkRepo, *stubUserRepo, *stubMediaStore) {
	artworks := newStubArtworkRepo()
	users := newStubUserRepo()
	media := &stubMediaStore{}
	svc := NewArtworkService(artworks, users, media, zerolog.Nop())
	return svc, artworks, users, media
}

func uploadFixture() *ports.MediaUpload {
	return &ports.MediaUpload{
		Filename:    "piece.jpg",
		ContentType: "image/jpeg",
		Size:        1024,
		Content:     strings.NewReader("not a real image"),
	}
}

func TestArtworkService_Create_Success(t *testing.T) {
	svc, _, users, media := newArtworkFixture()
	artist := users.mustAddUser(&domain.User{Email: "a@b.com", Role: domain.RoleArtist, DisplayName: "Ana"})

	created, err := svc.Create(context.Background(), ports.Identity{UserID: artist.ID, Role: domain.RoleArtist}, ports.CreateArtworkInput{
		Title:    "Dusk",
		Category: "painting",
		Tags:     []string{"oil", "landscape"},
		Image:    uploadFixture(),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" || created.ArtistID != artist.ID {
		t.Fatalf("unexpected artwork: %+v", created)
	}
	if created.Image.Original == "" || created.Image.Thumbnail == "" || created.Image.Medium == "" {
		t.Fatalf("expected all image variants, got %+v", created.Image)
	}
	if len(media.stored) != 1 {
		t.Fatalf("expected one stored upload, got %d", len(media.stored))
	}
}

func TestArtworkService_Create_RequiresArtistRole(t *testing.T) {
	svc, _, _, _ := newArtworkFixture()

	_, err := svc.Create(context.Background(), ports.Identity{UserID: "u1", Role: domain.RoleClient}, ports.CreateArtworkInput{
		Title: "Dusk", Category: "painting", Image: uploadFixture(),
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestArtworkService_Create_MissingFields(t *testing.T) {
	svc, _, _, _ := newArtworkFixture()
	identity := ports.Identity{UserID: "u1", Role: domain.RoleArtist}

	cases := []ports.CreateArtworkInput{
		{Category: "painting", Image: uploadFixture()},
		{Title: "Dusk", Image: uploadFixture()},
		{Title: "Dusk", Category: "painting"},
	}
	for _, input := range cases {
		if _, err := svc.Create(context.Background(), identity, input); !errors.Is(err, domain.ErrArtworkInvalid) {
			t.Fatalf("input %+v: expected ErrArtworkInvalid, got %v", input, err)
		}
	}
}

func TestArtworkService_List_Pagination(t *testing.T) {
	svc, artworks, users, _ := newArtworkFixture()
	artist := users.mustAddUser(&domain.User{Email: "a@b.com", Role: domain.RoleArtist, DisplayName: "Ana"})

	for i := 1; i <= 5; i++ {
		_, err := artworks.Create(context.Background(), &domain.Artwork{
			Title:     "Piece",
			Category:  "painting",
			ArtistID:  artist.ID,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	result, err := svc.List(context.Background(), ports.ListArtworksInput{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Total != 5 || result.Page != 2 || result.Limit != 2 || result.Pages != 3 {
		t.Fatalf("unexpected pagination: %+v", result)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	// Newest first: page 2 holds the third and fourth most recent pieces.
	if result.Items[0].Artwork.ID != "art-3" || result.Items[1].Artwork.ID != "art-2" {
		t.Fatalf("unexpected page contents: %s, %s", result.Items[0].Artwork.ID, result.Items[1].Artwork.ID)
	}
	if result.Items[0].Artist.DisplayName != "Ana" {
		t.Fatalf("expected joined artist summary, got %+v", result.Items[0].Artist)
	}
}

func TestArtworkService_List_Defaults(t *testing.T) {
	svc, _, _, _ := newArtworkFixture()

	result, err := svc.List(context.Background(), ports.ListArtworksInput{Page: -1, Limit: 500})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Page != 1 {
		t.Fatalf("expected page clamped to 1, got %d", result.Page)
	}
	if result.Limit != maxPageLimit {
		t.Fatalf("expected limit capped at %d, got %d", maxPageLimit, result.Limit)
	}
}

func TestArtworkService_Get_JoinsPublicArtist(t *testing.T) {
	svc, artworks, users, _ := newArtworkFixture()
	artist := users.mustAddUser(&domain.User{
		Email: "a@b.com", PasswordHash: "hash", Role: domain.RoleArtist, DisplayName: "Ana",
	})
	created, _ := artworks.Create(context.Background(), &domain.Artwork{Title: "Dusk", Category: "painting", ArtistID: artist.ID})

	detail, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if detail.Artist.Email != "" || detail.Artist.PasswordHash != "" {
		t.Fatalf("expected public artist projection, got %+v", detail.Artist)
	}
}

func TestArtworkService_Update_OwnershipEnforced(t *testing.T) {
	svc, artworks, _, _ := newArtworkFixture()
	created, _ := artworks.Create(context.Background(), &domain.Artwork{Title: "Dusk", Category: "painting", ArtistID: "owner"})

	newTitle := "Dawn"
	intruder := ports.Identity{UserID: "other", Role: domain.RoleArtist}
	if _, err := svc.Update(context.Background(), intruder, created.ID, ports.ArtworkUpdate{Title: &newTitle}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	owner := ports.Identity{UserID: "owner", Role: domain.RoleArtist}
	updated, err := svc.Update(context.Background(), owner, created.ID, ports.ArtworkUpdate{Title: &newTitle})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Dawn" || updated.Category != "painting" {
		t.Fatalf("expected partial update, got %+v", updated)
	}
}

func TestArtworkService_Delete_OwnershipEnforced(t *testing.T) {
	svc, artworks, _, _ := newArtworkFixture()
	created, _ := artworks.Create(context.Background(), &domain.Artwork{Title: "Dusk", Category: "painting", ArtistID: "owner"})

	if err := svc.Delete(context.Background(), ports.Identity{UserID: "other", Role: domain.RoleArtist}, created.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if err := svc.Delete(context.Background(), ports.Identity{UserID: "owner", Role: domain.RoleArtist}, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := artworks.FindByID(context.Background(), created.ID); !errors.Is(err, domain.ErrArtworkNotFound) {
		t.Fatalf("expected artwork gone, got %v", err)
	}
}

func TestArtworkService_NotFound(t *testing.T) {
	svc, _, _, _ := newArtworkFixture()
	identity := ports.Identity{UserID: "u1", Role: domain.RoleArtist}

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrArtworkNotFound) {
		t.Fatalf("expected ErrArtworkNotFound, got %v", err)
	}
	if _, err := svc.Update(context.Background(), identity, "missing", ports.ArtworkUpdate{}); !errors.Is(err, domain.ErrArtworkNotFound) {
		t.Fatalf("expected ErrArtworkNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), identity, "missing"); !errors.Is(err, domain.ErrArtworkNotFound) {
		t.Fatalf("expected ErrArtworkNotFound, got %v", err)
	}
}
