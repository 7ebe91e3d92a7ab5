package authn_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/authn"
	"github.com/dmitrymomot/authkit/pkg/cookie"
	"github.com/dmitrymomot/authkit/pkg/session"
)

const testSecret = "test-secret-key-that-is-long-enough"

// fixture bundles a service with its collaborators and a mutable user
// registry, so tests can delete users mid-flight.
type fixture struct {
	svc     *authn.Service[testUser]
	cookies *cookie.Manager
	store   authn.TokenStore[testUser]
	users   map[string]testUser
}

type fixtureOption func(*fixtureConfig)

type fixtureConfig struct {
	tokens  authn.TokenStore[testUser]
	cfg     func(*authn.Config[testUser])
	svcOpts []authn.Option[testUser]
}

// withTokens enables remember-me with the given store; nil means the
// default in-memory store.
func withTokens(store authn.TokenStore[testUser]) fixtureOption {
	return func(fc *fixtureConfig) {
		if store == nil {
			store = authn.NewMemoryTokenStore(testUserID)
		}
		fc.tokens = store
	}
}

func withConfig(fn func(*authn.Config[testUser])) fixtureOption {
	return func(fc *fixtureConfig) { fc.cfg = fn }
}

func withServiceOptions(opts ...authn.Option[testUser]) fixtureOption {
	return func(fc *fixtureConfig) { fc.svcOpts = append(fc.svcOpts, opts...) }
}

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()

	var fc fixtureConfig
	for _, opt := range opts {
		opt(&fc)
	}

	cookieMgr, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	sessions, err := session.New(cookieMgr, session.WithConfig(session.Config{
		CookieName: "sid",
		TTL:        time.Hour,
	}))
	require.NoError(t, err)

	f := &fixture{
		cookies: cookieMgr,
		store:   fc.tokens,
		users:   map[string]testUser{"42": {ID: "42", Name: "alice"}},
	}

	cfg := authn.Config[testUser]{
		UserID: testUserID,
		FindUserByID: func(ctx context.Context, id string) (testUser, error) {
			u, ok := f.users[id]
			if !ok {
				return testUser{}, authn.ErrUserNotFound
			}
			return u, nil
		},
	}
	if fc.cfg != nil {
		fc.cfg(&cfg)
	}

	var svcOpts []authn.Option[testUser]
	if fc.tokens != nil {
		svcOpts = append(svcOpts, authn.WithTokenStore[testUser](fc.tokens))
	}
	svcOpts = append(svcOpts, fc.svcOpts...)

	f.svc, err = authn.New(cfg, cookieMgr, sessions, svcOpts...)
	require.NoError(t, err)
	return f
}

// do runs a request through the resolution middleware into fn.
func (f *fixture) do(r *http.Request, fn http.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.svc.Middleware()(fn).ServeHTTP(w, r)
	return w
}

// replay copies the client-visible cookie state from earlier responses onto
// a request, honoring deletions.
func replay(r *http.Request, ws ...*httptest.ResponseRecorder) *http.Request {
	jar := map[string]*http.Cookie{}
	for _, w := range ws {
		for _, c := range w.Result().Cookies() {
			if c.MaxAge < 0 {
				delete(jar, c.Name)
				continue
			}
			jar[c.Name] = c
		}
	}
	for _, c := range jar {
		r.AddCookie(c)
	}
	return r
}

// loginAndPersist logs the fixture's canonical user in and issues a
// remember-me token.
func loginAndPersist(t *testing.T, f *fixture) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		auth := authn.MustFromContext[testUser](r.Context())
		require.NoError(t, auth.Login(r.Context(), f.users["42"]))
		_, err := auth.PersistLogin(r.Context(), f.users["42"])
		require.NoError(t, err)
	}
}

// cookieByName returns the last cookie with the given name written to w.
func cookieByName(w *httptest.ResponseRecorder, name string) *http.Cookie {
	var found *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			found = c
		}
	}
	return found
}
