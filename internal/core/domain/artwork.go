package domain

import (
	"errors"
	"time"
)

var ErrArtworkNotFound = errors.New("artwork not found")
var ErrArtworkInvalid = errors.New("title, category and image are required")

// ImageSet references the stored variants of an uploaded artwork image.
// Filenames are relative to the uploads directory served at /uploads.
type ImageSet struct {
	Original  string `json:"original"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Medium    string `json:"medium,omitempty"`
}

// Artwork is a published piece owned by exactly one artist.
type Artwork struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Image       ImageSet  `json:"image"`
	Tags        []string  `json:"tags,omitempty"`
	ArtistID    string    `json:"artist_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// OwnedBy reports whether userID is the publishing artist.
func (a *Artwork) OwnedBy(userID string) bool {
	return a.ArtistID == userID
}
