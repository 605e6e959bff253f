package redis

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/redis/go-redis/v9"
)

const guardTTL = time.Hour

// EnquiryGuard suppresses duplicate enquiry submissions backed by Redis.
// Key format: enquiry:<artist_id>:<sender_email>:<fnv32a(message)>
type EnquiryGuard struct {
	client *redis.Client
}

// NewEnquiryGuard creates an EnquiryGuard wrapping the given Redis client.
func NewEnquiryGuard(client *redis.Client) *EnquiryGuard {
	return &EnquiryGuard{client: client}
}

// IsDuplicate reports whether this exact submission was already accepted
// within the guard window.
func (g *EnquiryGuard) IsDuplicate(ctx context.Context, artistID, email, message string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(artistID, email, message)).Result()
	if err != nil {
		return false, fmt.Errorf("enquiry guard check: %w", err)
	}
	return n > 0, nil
}

// Mark records an accepted submission (expires after guardTTL).
func (g *EnquiryGuard) Mark(ctx context.Context, artistID, email, message string) error {
	return g.client.Set(ctx, g.key(artistID, email, message), "1", guardTTL).Err()
}

func (g *EnquiryGuard) key(artistID, email, message string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(message))
	return fmt.Sprintf("enquiry:%s:%s:%08x", artistID, email, h.Sum32())
}
