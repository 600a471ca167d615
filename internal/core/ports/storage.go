package ports

import "context"

// SessionStorage is the durable mirror behind the session store: one key
// holding a JSON-serialized Identity.
type SessionStorage interface {
	// Read returns the stored value, or (nil, nil) when no value exists.
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the stored value.
	Write(ctx context.Context, data []byte) error
	// Erase removes the stored value. Erasing a missing value is not an error.
	Erase(ctx context.Context) error
}
