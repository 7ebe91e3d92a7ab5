package authn

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/authkit/pkg/cookie"
	"github.com/dmitrymomot/authkit/pkg/session"
)

// Session keys owned by this layer. Nothing else is ever written to the
// session.
const (
	sessionKeyPrincipalID   = "authkit:principal_id"
	sessionKeyRememberToken = "authkit:remember_token"
)

// locationCookieName holds the pre-login URL; unsigned on purpose, the
// worst a tampered value buys is a redirect the client chose itself.
const locationCookieName = "ll"

// Context is the per-request authentication context. It is created once per
// request, carries the resolved principal (if any), and exposes the login,
// logout and location-memory operations to handlers.
type Context[T any] struct {
	svc       *Service[T]
	w         http.ResponseWriter
	r         *http.Request
	sess      session.Store
	principal *T
}

// Principal returns the resolved principal for this request. The second
// return is false for unauthenticated requests.
func (c *Context[T]) Principal() (T, bool) {
	if c.principal == nil {
		var zero T
		return zero, false
	}
	return *c.principal, true
}

// IsAuthenticated reports whether a principal was resolved.
func (c *Context[T]) IsAuthenticated() bool {
	return c.principal != nil
}

// Session exposes the request's session store to callers that keep their
// own keys next to the authentication state.
func (c *Context[T]) Session() session.Store {
	return c.sess
}

// Login binds the principal to the session. The principal becomes visible
// to Principal only after the next resolution pass (normally the next
// request), mirroring a plain session hit.
func (c *Context[T]) Login(ctx context.Context, principal T) error {
	return c.sess.Set(ctx, sessionKeyPrincipalID, c.svc.config.UserID(principal))
}

// PersistLogin issues a remember-me token for the principal: the token is
// saved to the token store, written to the remember-me cookie as
// "<id>:<token>", and kept in the session so Logout can drop it later. The
// issued token is returned.
//
// Calling PersistLogin without a configured token store is a usage error
// and fails immediately with ErrPersistenceNotConfigured.
func (c *Context[T]) PersistLogin(ctx context.Context, principal T) (string, error) {
	if c.svc.tokens == nil {
		return "", ErrPersistenceNotConfigured
	}

	token, err := generateToken()
	if err != nil {
		return "", err
	}

	if err := c.svc.tokens.SaveToken(ctx, principal, token); err != nil {
		return "", err
	}

	if err := c.writeRememberCookie(c.svc.config.UserID(principal) + ":" + token); err != nil {
		return "", err
	}

	// A session write failing here leaves the cookie already set; the next
	// request heals through persistent resolution since the token is valid
	// in the store.
	if err := c.sess.Set(ctx, sessionKeyRememberToken, token); err != nil {
		return "", err
	}

	return token, nil
}

// Logout ends the authenticated state: the remember-me cookie is cleared,
// the current token (when one is known and a principal was resolved) is
// dropped from the token store, and the session is invalidated. Without a
// token store it is a plain session invalidation.
func (c *Context[T]) Logout(ctx context.Context) error {
	if c.svc.tokens == nil {
		return c.invalidate(ctx)
	}

	c.svc.cookies.Delete(c.w, c.svc.config.Cookie.Name)

	token, err := c.sess.Get(ctx, sessionKeyRememberToken)
	if err != nil && !errors.Is(err, session.ErrKeyNotFound) {
		return err
	}

	if c.principal != nil && token != "" {
		if err := c.svc.tokens.DropToken(ctx, *c.principal, token); err != nil {
			return err
		}
	}

	return c.invalidate(ctx)
}

func (c *Context[T]) invalidate(ctx context.Context) error {
	if err := c.sess.Invalidate(ctx); err != nil {
		return err
	}
	c.principal = nil
	return nil
}

// TrySessionLogin resolves the principal from the session. An absent id is
// a normal outcome; an id that no longer maps to a principal is purged from
// the session rather than surfaced.
func (c *Context[T]) TrySessionLogin(ctx context.Context) error {
	id, err := c.sess.Get(ctx, sessionKeyPrincipalID)
	if err != nil {
		if errors.Is(err, session.ErrKeyNotFound) {
			return nil
		}
		return err
	}

	principal, err := c.svc.config.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Stale id, e.g. a deleted user with a live session.
			c.svc.logger.DebugContext(ctx, "purging stale principal id from session", slog.String("principal_id", id))
			return c.sess.Delete(ctx, sessionKeyPrincipalID)
		}
		return err
	}

	c.principal = &principal
	return nil
}

// TryPersistentLogin resolves the principal from the remember-me cookie.
// It is a no-op when a principal is already attached. A missing cookie
// yields no principal; a cookie that is malformed, names an unknown user,
// or carries a token the user does not own is cleared and likewise yields
// no principal. On success the principal is logged into the session and
// resolution re-runs through TrySessionLogin so both paths converge.
func (c *Context[T]) TryPersistentLogin(ctx context.Context) error {
	if c.svc.tokens == nil {
		return ErrPersistenceNotConfigured
	}
	if c.principal != nil {
		return nil
	}

	value, err := c.readRememberCookie()
	if err != nil {
		switch {
		case errors.Is(err, cookie.ErrCookieNotFound):
			return nil
		case errors.Is(err, cookie.ErrInvalidSignature), errors.Is(err, cookie.ErrInvalidFormat):
			c.clearRememberCookie(ctx)
			return nil
		}
		return err
	}

	id, token, _ := strings.Cut(value, ":")
	if id == "" {
		c.clearRememberCookie(ctx)
		return nil
	}

	principal, err := c.svc.config.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			c.clearRememberCookie(ctx)
			return nil
		}
		return err
	}

	owns, err := c.svc.tokens.HasToken(ctx, principal, token)
	if err != nil {
		return err
	}
	if !owns {
		c.clearRememberCookie(ctx)
		return nil
	}

	if err := c.Login(ctx, principal); err != nil {
		return err
	}
	return c.TrySessionLogin(ctx)
}

// RememberLocation stores the current absolute URL for a post-login
// redirect. Only plain (non-XHR) GET requests are remembered; API calls
// make poor redirect targets.
func (c *Context[T]) RememberLocation() {
	if c.r.Method != http.MethodGet {
		return
	}
	if c.r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		return
	}

	scheme := "http"
	if c.r.TLS != nil {
		scheme = "https"
	}

	_ = c.svc.cookies.Set(c.w, locationCookieName, scheme+"://"+c.r.Host+c.r.URL.RequestURI())
}

// LastLocation returns the URL stored by RememberLocation, or the
// configured default location when nothing was remembered.
func (c *Context[T]) LastLocation() string {
	value, err := c.svc.cookies.Get(c.r, locationCookieName)
	if err != nil || value == "" {
		return c.svc.config.DefaultLocation
	}
	return value
}

func (c *Context[T]) writeRememberCookie(value string) error {
	opts := []cookie.Option{cookie.WithMaxAge(int(c.svc.config.Cookie.MaxAge.Seconds()))}
	if c.svc.config.Cookie.signed() {
		return c.svc.cookies.SetSigned(c.w, c.svc.config.Cookie.Name, value, opts...)
	}
	return c.svc.cookies.Set(c.w, c.svc.config.Cookie.Name, value, opts...)
}

func (c *Context[T]) readRememberCookie() (string, error) {
	if c.svc.config.Cookie.signed() {
		return c.svc.cookies.GetSigned(c.r, c.svc.config.Cookie.Name)
	}
	return c.svc.cookies.Get(c.r, c.svc.config.Cookie.Name)
}

func (c *Context[T]) clearRememberCookie(ctx context.Context) {
	c.svc.logger.DebugContext(ctx, "clearing invalid remember-me cookie")
	c.svc.cookies.Delete(c.w, c.svc.config.Cookie.Name)
}
