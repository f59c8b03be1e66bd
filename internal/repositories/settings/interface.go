package settings

import "context"

// Repository describes key/value storage for small application settings
// such as the last chosen directory and the bias slider value.
// Implementations are typically backed by a local SQLite database.
type Repository interface {
	// Get returns the value for key, or "" when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores the value for key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
