package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const throttleTTL = 10 * time.Minute

// ContactThrottle suppresses repeat contact-form submissions, backed by
// Redis. Key format: contact:<email>
type ContactThrottle struct {
	client *redis.Client
}

// NewContactThrottle creates a ContactThrottle wrapping the given Redis client.
func NewContactThrottle(client *redis.Client) *ContactThrottle {
	return &ContactThrottle{client: client}
}

// IsRecent reports whether this address submitted within the throttle window.
func (t *ContactThrottle) IsRecent(ctx context.Context, email string) (bool, error) {
	n, err := t.client.Exists(ctx, t.key(email)).Result()
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n > 0, nil
}

// Mark records a submission from this address (expires after throttleTTL).
func (t *ContactThrottle) Mark(ctx context.Context, email string) error {
	return t.client.Set(ctx, t.key(email), "1", throttleTTL).Err()
}

func (t *ContactThrottle) key(email string) string {
	return fmt.Sprintf("contact:%s", email)
}
