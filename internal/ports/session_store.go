package ports

import "context"

// SessionStore is the session-scoped key-value store panel state is persisted in
type SessionStore interface {
	// Get returns the value stored under key, or domain.ErrStateNotFound
	Get(ctx context.Context, sessionID, key string) ([]byte, error)
	Put(ctx context.Context, sessionID, key string, value []byte) error
	Delete(ctx context.Context, sessionID, key string) error
	// Keys lists the keys stored for a session, sorted
	Keys(ctx context.Context, sessionID string) ([]string, error)
	Close() error
}
