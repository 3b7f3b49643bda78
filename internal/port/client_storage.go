package port

import (
	"context"
	"time"
)

// ClientStorage is durable key/value storage owned by the client, the
// equivalent of browser cookies.
type ClientStorage interface {
	// Set stores value under key. A zero ttl never expires.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Get returns the value and false if the key is absent or expired
	Get(ctx context.Context, key string) (string, bool, error)
}
