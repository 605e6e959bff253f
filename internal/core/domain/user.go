package domain

import (
	"errors"
	"time"
)

const (
	RoleArtist = "artist"
	RoleClient = "client"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrArtistNotFound = errors.New("artist not found")
var ErrArtistAlreadySaved = errors.New("artist already saved")
var ErrForbidden = errors.New("access forbidden")

// SocialLinks holds the optional social profile URLs shown on a public profile.
type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// User models a registered account. Artists publish artworks and receive
// enquiries; clients browse the directory and save artists.
type User struct {
	ID                string      `json:"id"`
	Email             string      `json:"email,omitempty"`
	PasswordHash      string      `json:"-"`
	Role              string      `json:"role"`
	DisplayName       string      `json:"display_name"`
	ProfileImage      string      `json:"profile_image,omitempty"`
	Location          string      `json:"location,omitempty"`
	Bio               string      `json:"bio,omitempty"`
	ProfessionalTitle string      `json:"professional_title,omitempty"`
	Website           string      `json:"website,omitempty"`
	SocialLinks       SocialLinks `json:"social_links"`
	Categories        []string    `json:"categories,omitempty"`
	SavedArtists      []string    `json:"saved_artists,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	LastLogin         time.Time   `json:"last_login"`
}

// Public returns a copy safe to expose on public endpoints: the email and
// password hash are stripped and the saved-artist list stays private.
func (u User) Public() *User {
	u.Email = ""
	u.PasswordHash = ""
	u.SavedArtists = nil
	return &u
}

// IsArtist reports whether the user can own artworks and receive enquiries.
func (u *User) IsArtist() bool {
	return u.Role == RoleArtist
}
