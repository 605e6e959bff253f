package ports

import (
	"context"

	"github.com/artfoliopro/portfolio-api/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	// FindAll returns all categories sorted by name.
	FindAll(ctx context.Context) ([]*domain.Category, error)
}
