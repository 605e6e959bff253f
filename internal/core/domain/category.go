package domain

import (
	"errors"
	"time"
)

var ErrCategoryExists = errors.New("category already exists")
var ErrCategoryNotFound = errors.New("category not found")

// Category is a curated tag artworks are filed under. Names are unique.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
