package ports

import (
	"context"

	"github.com/artfoliopro/portfolio-api/internal/core/domain"
)

// CreateCategoryInput carries the fields for a new category.
type CreateCategoryInput struct {
	Name        string
	Description string
	Image       string
}

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
}
