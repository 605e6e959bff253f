package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/artfoliopro/portfolio-api/internal/core/domain"
	"github.com/artfoliopro/portfolio-api/internal/core/ports"
)

type stubCategoryRepo struct {
	categories []*domain.Category
	seq        int
}

func (r *stubCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.Name == category.Name {
			return nil, domain.ErrCategoryExists
		}
	}
	r.seq++
	copy := *category
	copy.ID = fmt.Sprintf("cat-%d", r.seq)
	r.categories = append(r.categories, &copy)
	return &copy, nil
}

func (r *stubCategoryRepo) FindAll(_ context.Context) ([]*domain.Category, error) {
	return append([]*domain.Category(nil), r.categories...), nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func TestCategoryService_Create(t *testing.T) {
	repo := &stubCategoryRepo{}
	svc := NewCategoryService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateCategoryInput{Name: "  Painting  ", Description: "Oil and acrylic."})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Name != "Painting" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}

	if _, err := svc.Create(context.Background(), ports.CreateCategoryInput{Name: "Painting"}); !errors.Is(err, domain.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
}

func TestCategoryService_Get(t *testing.T) {
	repo := &stubCategoryRepo{}
	svc := NewCategoryService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateCategoryInput{Name: "Sculpture"})

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Sculpture" {
		t.Fatalf("unexpected category: %+v", got)
	}

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
