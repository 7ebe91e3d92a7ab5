package session

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/pkg/cookie"
)

// Manager binds a signed session-id cookie to a Backend and hands out a
// request-scoped Store view.
type Manager struct {
	backend       Backend
	cookieManager *cookie.Manager
	cookieOptions []cookie.Option
	config        Config
}

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithBackend sets a custom session backend
func WithBackend(backend Backend) Option {
	return func(m *Manager) { m.backend = backend }
}

// WithConfig sets custom configuration
func WithConfig(config Config) Option {
	return func(m *Manager) { m.config = config }
}

// WithCookieOptions appends cookie attributes applied when the sid cookie
// is written
func WithCookieOptions(opts ...cookie.Option) Option {
	return func(m *Manager) { m.cookieOptions = append(m.cookieOptions, opts...) }
}

// New creates a session manager. A cookie manager is required; the backend
// defaults to an in-memory one.
func New(cookieManager *cookie.Manager, opts ...Option) (*Manager, error) {
	if cookieManager == nil {
		return nil, ErrNoCookieManager
	}

	m := &Manager{
		cookieManager: cookieManager,
		config:        DefaultConfig(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.backend == nil {
		m.backend = NewMemoryBackend(m.config.TTL)
	}

	return m, nil
}

// Load returns the Store for the request's session, creating a fresh
// session (and setting the sid cookie) when none exists or the cookie fails
// verification.
func (m *Manager) Load(w http.ResponseWriter, r *http.Request) (Store, error) {
	sid, err := m.cookieManager.GetSigned(r, m.config.CookieName)
	if err != nil || sid == "" {
		sid = uuid.NewString()
		if err := m.setCookie(w, sid); err != nil {
			return nil, err
		}
	}

	return &boundStore{manager: m, sid: sid, w: w}, nil
}

func (m *Manager) setCookie(w http.ResponseWriter, sid string) error {
	opts := []cookie.Option{
		cookie.WithMaxAge(int(m.config.TTL.Seconds())),
		cookie.WithHTTPOnly(true),
	}
	if m.config.SecureCookies {
		opts = append(opts, cookie.WithSecure(true))
	}
	opts = append(opts, m.cookieOptions...)

	return m.cookieManager.SetSigned(w, m.config.CookieName, sid, opts...)
}

// boundStore is the per-request view over one session id.
type boundStore struct {
	manager     *Manager
	sid         string
	w           http.ResponseWriter
	invalidated bool
}

func (s *boundStore) Get(ctx context.Context, key string) (string, error) {
	if s.invalidated {
		return "", ErrInvalidated
	}
	return s.manager.backend.Get(ctx, s.sid, key)
}

func (s *boundStore) Set(ctx context.Context, key, value string) error {
	if s.invalidated {
		return ErrInvalidated
	}
	return s.manager.backend.Set(ctx, s.sid, key, value)
}

func (s *boundStore) Delete(ctx context.Context, key string) error {
	if s.invalidated {
		return ErrInvalidated
	}
	return s.manager.backend.Delete(ctx, s.sid, key)
}

func (s *boundStore) Invalidate(ctx context.Context) error {
	if s.invalidated {
		return nil
	}
	if err := s.manager.backend.Destroy(ctx, s.sid); err != nil {
		return err
	}
	s.manager.cookieManager.Delete(s.w, s.manager.config.CookieName)
	s.invalidated = true
	return nil
}
