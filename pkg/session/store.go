package session

import "context"

// Store is the key/value view of a single browser session. It is what the
// authentication layer talks to: all operations apply to the one session
// bound to the current request.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound. An absent
	// key is a normal outcome, not a fault.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value under key.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Invalidate destroys the whole session, server-side state and client
	// cookie both. The store must not be used afterwards.
	Invalidate(ctx context.Context) error
}

// Backend persists session data keyed by session id. Implementations own
// their concurrency control; the Manager never caches across requests.
type Backend interface {
	// Get returns the value under key for the given session, or
	// ErrKeyNotFound.
	Get(ctx context.Context, sid, key string) (string, error)

	// Set stores a value and refreshes the session TTL where the backend
	// supports one.
	Set(ctx context.Context, sid, key, value string) error

	// Delete removes a single key from the session.
	Delete(ctx context.Context, sid, key string) error

	// Destroy removes the session and all its keys.
	Destroy(ctx context.Context, sid string) error
}
