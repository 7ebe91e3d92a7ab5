package authn

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authkit/pkg/cookie"
	"github.com/dmitrymomot/authkit/pkg/session"
)

// ErrorHandler reports a runtime resolution failure to the client.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Service holds the immutable authentication configuration and its
// collaborators. One Service serves all requests; per-request state lives
// in Context.
type Service[T any] struct {
	config       Config[T]
	cookies      *cookie.Manager
	sessions     *session.Manager
	tokens       TokenStore[T]
	logger       *slog.Logger
	errorHandler ErrorHandler
}

// Option is a functional option for configuring the Service
type Option[T any] func(*Service[T])

// WithTokenStore enables remember-me logins backed by the given store.
func WithTokenStore[T any](store TokenStore[T]) Option[T] {
	return func(s *Service[T]) { s.tokens = store }
}

// WithLogger sets the logger used for resolution diagnostics
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(s *Service[T]) { s.logger = logger }
}

// WithErrorHandler overrides how the middleware reports resolution faults
func WithErrorHandler[T any](h ErrorHandler) Option[T] {
	return func(s *Service[T]) { s.errorHandler = h }
}

// New creates the authentication service. Missing identity functions or
// collaborators fail construction outright; the remember-me cookie
// descriptor is completed with defaults where unset.
func New[T any](cfg Config[T], cookies *cookie.Manager, sessions *session.Manager, opts ...Option[T]) (*Service[T], error) {
	if cfg.UserID == nil {
		return nil, ErrMissingUserIDFunc
	}
	if cfg.FindUserByID == nil {
		return nil, ErrMissingFindUserFunc
	}
	if cookies == nil {
		return nil, ErrNoCookieManager
	}
	if sessions == nil {
		return nil, ErrNoSessionManager
	}

	cfg.Cookie = cfg.Cookie.withDefaults()
	if cfg.DefaultLocation == "" {
		cfg.DefaultLocation = defaultLocation
	}

	s := &Service[T]{
		config:   cfg,
		cookies:  cookies,
		sessions: sessions,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.errorHandler == nil {
		s.errorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}

	return s, nil
}

// NewContext builds the per-request authentication context. Most callers
// get one from the middleware via FromContext instead.
func (s *Service[T]) NewContext(w http.ResponseWriter, r *http.Request, sess session.Store) *Context[T] {
	return &Context[T]{svc: s, w: w, r: r, sess: sess}
}
