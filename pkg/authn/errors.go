package authn

import "errors"

// Setup errors: misconfiguration, raised synchronously.
var (
	// ErrMissingUserIDFunc indicates Config.UserID was not supplied
	ErrMissingUserIDFunc = errors.New("authn.missing_user_id_func")

	// ErrMissingFindUserFunc indicates Config.FindUserByID was not supplied
	ErrMissingFindUserFunc = errors.New("authn.missing_find_user_func")

	// ErrNoCookieManager indicates the service was constructed without a cookie manager
	ErrNoCookieManager = errors.New("authn.no_cookie_manager")

	// ErrNoSessionManager indicates the service was constructed without a session manager
	ErrNoSessionManager = errors.New("authn.no_session_manager")

	// ErrPersistenceNotConfigured indicates a remember-me operation was
	// called without a token store. This is a usage error, not a runtime
	// condition.
	ErrPersistenceNotConfigured = errors.New("authn.persistence_not_configured")
)

// Runtime errors.
var (
	// ErrUserNotFound is returned by Config.FindUserByID when no principal
	// exists for an id. The resolution pipeline treats it as a normal
	// negative outcome, never as a fault.
	ErrUserNotFound = errors.New("authn.user_not_found")

	// ErrTokenGeneration indicates the random source failed
	ErrTokenGeneration = errors.New("authn.token_generation_failed")

	// ErrNotInContext indicates no authentication context was attached to
	// the request context (missing middleware).
	ErrNotInContext = errors.New("authn.not_in_context")
)
