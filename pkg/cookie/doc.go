// Package cookie provides a small HTTP cookie manager with optional
// HMAC-SHA256 signing.
//
// The Manager is initialised with one or more secret keys and a set of
// default cookie Options. The first secret signs newly written cookies; the
// remaining secrets are tried during verification so keys can be rotated
// without invalidating cookies already in the wild.
//
// # Usage
//
//	import "github.com/dmitrymomot/authkit/pkg/cookie"
//
//	// secrets must be at least 32 bytes
//	man, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	http.HandleFunc("/set", func(w http.ResponseWriter, r *http.Request) {
//	    _ = man.SetSigned(w, "at", "user-id:token")
//	})
//
//	http.HandleFunc("/get", func(w http.ResponseWriter, r *http.Request) {
//	    v, err := man.GetSigned(r, "at")
//	    _, _ = v, err
//	})
//
// # Error Handling
//
// Sentinel errors (ErrCookieNotFound, ErrInvalidSignature, ErrInvalidFormat)
// are returned for the common failure cases so callers can use errors.Is.
// A tampered signed cookie is indistinguishable from a forged one: both
// yield ErrInvalidSignature.
package cookie
