package port

import "context"

// KeyValueStore is durable device-local storage.
type KeyValueStore interface {
	// Get reports false when the key is not set.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes the keys, missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}
