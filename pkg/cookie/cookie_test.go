package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/cookie"
)

const testSecret = "test-secret-key-that-is-long-enough"

func newManager(t *testing.T, opts ...cookie.Option) *cookie.Manager {
	t.Helper()

	m, err := cookie.New([]string{testSecret}, opts...)
	require.NoError(t, err)
	return m
}

// requestWithCookies replays the cookies written to w onto a fresh request.
func requestWithCookies(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNew(t *testing.T) {
	t.Run("rejects empty secrets", func(t *testing.T) {
		_, err := cookie.New(nil)
		assert.ErrorIs(t, err, cookie.ErrNoSecret)

		_, err = cookie.New([]string{"", ""})
		assert.ErrorIs(t, err, cookie.ErrNoSecret)
	})

	t.Run("rejects short secret", func(t *testing.T) {
		_, err := cookie.New([]string{"too-short"})
		assert.ErrorIs(t, err, cookie.ErrSecretTooShort)
	})
}

func TestPlainCookies(t *testing.T) {
	m := newManager(t)

	t.Run("set and get", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, "name", "value"))

		v, err := m.Get(requestWithCookies(w), "name")
		require.NoError(t, err)
		assert.Equal(t, "value", v)
	})

	t.Run("missing cookie", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		_, err := m.Get(r, "nope")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})

	t.Run("delete expires cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		m.Delete(w, "name")

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "name", cookies[0].Name)
		assert.Equal(t, -1, cookies[0].MaxAge)
		assert.Empty(t, cookies[0].Value)
	})

	t.Run("write options applied", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, "name", "value",
			cookie.WithMaxAge(60),
			cookie.WithSecure(true),
		))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, 60, cookies[0].MaxAge)
		assert.True(t, cookies[0].Secure)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, "/", cookies[0].Path)
	})
}

func TestSignedCookies(t *testing.T) {
	m := newManager(t)

	t.Run("roundtrip", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(w, "at", "42:sometoken"))

		v, err := m.GetSigned(requestWithCookies(w), "at")
		require.NoError(t, err)
		assert.Equal(t, "42:sometoken", v)
	})

	t.Run("tampered value rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(w, "at", "42:sometoken"))

		c := w.Result().Cookies()[0]
		// Replace the payload, keep the original signature.
		_, sig, ok := strings.Cut(c.Value, "|")
		require.True(t, ok)
		c.Value = "Zm9yZ2Vk|" + sig

		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(c)

		_, err := m.GetSigned(r, "at")
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})

	t.Run("malformed value rejected", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: "at", Value: "no-separator"})

		_, err := m.GetSigned(r, "at")
		assert.ErrorIs(t, err, cookie.ErrInvalidFormat)
	})

	t.Run("key rotation verifies old cookies", func(t *testing.T) {
		old := newManager(t)
		w := httptest.NewRecorder()
		require.NoError(t, old.SetSigned(w, "at", "42:sometoken"))

		rotated, err := cookie.New([]string{"new-secret-key-that-is-long-enough!", testSecret})
		require.NoError(t, err)

		v, err := rotated.GetSigned(requestWithCookies(w), "at")
		require.NoError(t, err)
		assert.Equal(t, "42:sometoken", v)
	})
}
