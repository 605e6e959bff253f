// Package media validates uploaded images and derives resized variants on
// local disk. Resizing is delegated to disintegration/imaging; no bespoke
// image processing happens here.
package media

import (
	"bytes"
	"context"
	"crypto/rand"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"github.com/artfoliopro/portfolio-api/internal/api/metrics"
	"github.com/artfoliopro/portfolio-api/internal/core/domain"
	"github.com/artfoliopro/portfolio-api/internal/core/ports"
)

const (
	maxProfileBytes = 5 << 20  // 5 MB
	maxArtworkBytes = 10 << 20 // 10 MB

	profileThumbSize = 300  // square crop
	artworkThumbBox  = 400  // bounded box, aspect preserved
	artworkMediumBox = 1200 // bounded box, aspect preserved

	profileSubdir = "profiles"
	artworkSubdir = "artworks"
)

// Store persists uploads and their variants under a base directory that the
// router serves at /uploads.
type Store struct {
	baseDir string
	log     zerolog.Logger
}

// NewStore creates the upload subdirectories and returns a Store.
func NewStore(baseDir string, log zerolog.Logger) (*Store, error) {
	for _, sub := range []string{profileSubdir, artworkSubdir} {
		if err := os.MkdirAll(filepath.Join(baseDir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create uploads dir: %w", err)
		}
	}
	return &Store{baseDir: baseDir, log: log}, nil
}

// Store validates the upload against its kind's ceiling, writes the original,
// and derives the resized variants: one square thumbnail for profile images,
// a thumbnail plus a medium variant for artworks. Returned filenames are
// relative to the uploads directory.
func (s *Store) Store(ctx context.Context, upload ports.MediaUpload, kind string) (*ports.StoredMedia, error) {
	limit, subdir, err := kindLimits(kind)
	if err != nil {
		return nil, err
	}

	if !strings.HasPrefix(upload.ContentType, "image/") {
		metrics.MediaUploadErrorsTotal.WithLabelValues("unsupported_type").Inc()
		return nil, domain.ErrUnsupportedMedia
	}
	if upload.Size > limit {
		metrics.MediaUploadErrorsTotal.WithLabelValues("too_large").Inc()
		return nil, domain.ErrFileTooLarge
	}

	// The declared size is client-controlled; the read is capped regardless.
	data, err := io.ReadAll(io.LimitReader(upload.Content, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > limit {
		metrics.MediaUploadErrorsTotal.WithLabelValues("too_large").Inc()
		return nil, domain.ErrFileTooLarge
	}

	start := time.Now()
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		metrics.MediaUploadErrorsTotal.WithLabelValues("decode_failed").Inc()
		return nil, domain.ErrUnsupportedMedia
	}

	name := uniqueName(kind)
	stored := &ports.StoredMedia{Original: filepath.Join(subdir, name)}

	if err := os.WriteFile(filepath.Join(s.baseDir, stored.Original), data, 0o644); err != nil {
		metrics.MediaUploadErrorsTotal.WithLabelValues("store_failed").Inc()
		return nil, fmt.Errorf("write original: %w", err)
	}

	switch kind {
	case ports.MediaKindProfile:
		thumb := imaging.Fill(img, profileThumbSize, profileThumbSize, imaging.Center, imaging.Lanczos)
		stored.Thumbnail = filepath.Join(subdir, "thumb-"+name)
		if err := s.save(thumb, stored.Thumbnail, 90); err != nil {
			return nil, err
		}
	case ports.MediaKindArtwork:
		thumb := imaging.Fit(img, artworkThumbBox, artworkThumbBox, imaging.Lanczos)
		stored.Thumbnail = filepath.Join(subdir, "thumb-"+name)
		if err := s.save(thumb, stored.Thumbnail, 85); err != nil {
			return nil, err
		}

		medium := imaging.Fit(img, artworkMediumBox, artworkMediumBox, imaging.Lanczos)
		stored.Medium = filepath.Join(subdir, "medium-"+name)
		if err := s.save(medium, stored.Medium, 90); err != nil {
			return nil, err
		}
	}

	metrics.MediaProcessingDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	metrics.MediaUploadsTotal.WithLabelValues(kind).Inc()
	s.log.Debug().Str("kind", kind).Str("file", stored.Original).Int("bytes", len(data)).Msg("upload stored")

	return stored, nil
}

func (s *Store) save(img image.Image, rel string, quality int) error {
	err := imaging.Save(img, filepath.Join(s.baseDir, rel), imaging.JPEGQuality(quality))
	if err != nil {
		metrics.MediaUploadErrorsTotal.WithLabelValues("store_failed").Inc()
		return fmt.Errorf("write variant: %w", err)
	}
	return nil
}

func kindLimits(kind string) (int64, string, error) {
	switch kind {
	case ports.MediaKindProfile:
		return maxProfileBytes, profileSubdir, nil
	case ports.MediaKindArtwork:
		return maxArtworkBytes, artworkSubdir, nil
	default:
		return 0, "", fmt.Errorf("unknown media kind %q", kind)
	}
}

// uniqueName returns a collision-resistant filename. Variants are always
// re-encoded as JPEG, so the extension is fixed.
func uniqueName(kind string) string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%s-%d.jpg", kind, time.Now().UnixNano())
	}
	return fmt.Sprintf("%s-%x.jpg", kind, b)
}
