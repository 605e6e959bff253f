package domain

import (
	"errors"
	"time"
)

// EnquiryStatus represents the lifecycle state of an enquiry.
type EnquiryStatus string

const (
	EnquiryPending  EnquiryStatus = "pending"
	EnquiryRead     EnquiryStatus = "read"
	EnquiryReplied  EnquiryStatus = "replied"
	EnquiryArchived EnquiryStatus = "archived"
)

var ErrEnquiryNotFound = errors.New("enquiry not found")
var ErrInvalidStatus = errors.New("invalid enquiry status")
var ErrDuplicateEnquiry = errors.New("duplicate enquiry")

// Valid reports whether s is one of the enumerated enquiry states. The target
// artist may move an enquiry between any of them, so validity is membership;
// the pending→read transition additionally fires automatically on first read.
func (s EnquiryStatus) Valid() bool {
	switch s {
	case EnquiryPending, EnquiryRead, EnquiryReplied, EnquiryArchived:
		return true
	}
	return false
}

// Enquiry is a message from a (possibly anonymous) sender to an artist.
// ClientID is set when the sender was authenticated with role client.
type Enquiry struct {
	ID        string        `json:"id"`
	ArtistID  string        `json:"artist_id"`
	ClientID  string        `json:"client_id,omitempty"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Email     string        `json:"email"`
	Message   string        `json:"message"`
	Status    EnquiryStatus `json:"status"`
	SentAt    time.Time     `json:"sent_at"`
}
