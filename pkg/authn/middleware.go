package authn

import (
	"context"
	"log/slog"
	"net/http"
)

type authContextKey struct{}

// WithContext attaches an authentication context to ctx.
func WithContext[T any](ctx context.Context, authCtx *Context[T]) context.Context {
	return context.WithValue(ctx, authContextKey{}, authCtx)
}

// FromContext retrieves the request's authentication context.
func FromContext[T any](ctx context.Context) (*Context[T], bool) {
	authCtx, ok := ctx.Value(authContextKey{}).(*Context[T])
	return authCtx, ok
}

// MustFromContext retrieves the authentication context or panics. Use only
// behind the middleware.
func MustFromContext[T any](ctx context.Context) *Context[T] {
	authCtx, ok := FromContext[T](ctx)
	if !ok {
		panic(ErrNotInContext)
	}
	return authCtx
}

// PrincipalFromContext returns the resolved principal for the request, if
// any.
func PrincipalFromContext[T any](ctx context.Context) (T, bool) {
	authCtx, ok := FromContext[T](ctx)
	if !ok {
		var zero T
		return zero, false
	}
	return authCtx.Principal()
}

// Middleware runs the resolution pipeline once per request: session-based
// resolution first, then persistent-token resolution when a token store is
// configured and the session did not resolve. The request proceeds whether
// or not a principal was found; only a collaborator fault stops it, through
// the service's error handler.
func (s *Service[T]) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := s.sessions.Load(w, r)
			if err != nil {
				s.logger.ErrorContext(r.Context(), "loading session failed", slog.Any("error", err))
				s.errorHandler(w, r, err)
				return
			}

			authCtx := s.NewContext(w, r, sess)

			if err := authCtx.TrySessionLogin(r.Context()); err != nil {
				s.logger.ErrorContext(r.Context(), "session resolution failed", slog.Any("error", err))
				s.errorHandler(w, r, err)
				return
			}

			if s.tokens != nil && !authCtx.IsAuthenticated() {
				if err := authCtx.TryPersistentLogin(r.Context()); err != nil {
					s.logger.ErrorContext(r.Context(), "persistent resolution failed", slog.Any("error", err))
					s.errorHandler(w, r, err)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), authCtx)))
		})
	}
}
