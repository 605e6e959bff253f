package ports

import (
	"context"
	"io"
)

// MediaKind selects the validation ceiling and derived variants for an upload.
const (
	MediaKindProfile = "profile"
	MediaKindArtwork = "artwork"
)

// MediaUpload is an inbound image file as received by the transport layer.
type MediaUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// StoredMedia is the set of filenames produced for one upload. Thumbnail is
// always present; Medium only for artwork uploads.
type StoredMedia struct {
	Original  string
	Thumbnail string
	Medium    string
}

// MediaStore validates an uploaded image, derives resized variants, and
// persists all of them under the uploads directory.
type MediaStore interface {
	Store(ctx context.Context, upload MediaUpload, kind string) (*StoredMedia, error)
}
