package session

import "errors"

var (
	// ErrKeyNotFound indicates the session has no value under the requested key
	ErrKeyNotFound = errors.New("session.key_not_found")

	// ErrNoBackend indicates the manager was constructed without a backend
	ErrNoBackend = errors.New("session.no_backend")

	// ErrNoCookieManager indicates the manager was constructed without a cookie manager
	ErrNoCookieManager = errors.New("session.no_cookie_manager")

	// ErrInvalidated indicates an operation on a store after Invalidate
	ErrInvalidated = errors.New("session.invalidated")
)
