// Package authn resolves the authenticated principal behind each request
// from either the server-side session or a long-lived "remember me" cookie,
// and gives handlers primitives to log in, log out and recall the
// pre-authentication URL.
//
// The package is generic over the application's own user type: two
// caller-supplied functions (UserID, FindUserByID) map principals to and
// from identifiers, and the package never looks inside them.
//
// # Architecture
//
// A Service holds the immutable configuration and three collaborators: a
// cookie.Manager (remember-me and location cookies), a session.Manager
// (principal id and current token), and an optional TokenStore (valid
// remember-me tokens per principal). Per request, the middleware builds a
// Context and runs the resolution pipeline:
//
//  1. session-based resolution — the principal id stored in the session is
//     looked up; a stale id is purged silently.
//  2. persistent-token resolution — only when stage 1 resolved nothing and
//     a TokenStore is configured: the signed remember-me cookie
//     ("<id>:<token>") is validated against the store; on success the
//     session is re-established and stage 1 re-runs.
//
// Absence of a principal is a normal outcome; the wrapped handler always
// runs. Only a collaborator fault (session store, token store) stops the
// request through the service's error handler.
//
// # Usage
//
//	cookies, _ := cookie.New([]string{secret})
//	sessions, _ := session.New(cookies)
//
//	svc, err := authn.New(authn.Config[User]{
//	    UserID:       func(u User) string { return u.ID },
//	    FindUserByID: lookupUser,
//	}, cookies, sessions,
//	    authn.WithTokenStore[User](authn.NewRedisTokenStore(client, userID, 30*24*time.Hour)),
//	)
//
//	mux.Handle("/", svc.Middleware()(appHandler))
//
//	func loginHandler(w http.ResponseWriter, r *http.Request) {
//	    auth := authn.MustFromContext[User](r.Context())
//	    _ = auth.Login(r.Context(), user)
//	    if rememberMe {
//	        _, _ = auth.PersistLogin(r.Context(), user)
//	    }
//	    http.Redirect(w, r, auth.LastLocation(), http.StatusSeeOther)
//	}
//
// # Token stores
//
// TokenStore implementations ship for memory, Redis (a set per principal)
// and Postgres (one table, composite key). Any type satisfying the four
// operations can be plugged in; compile-time interface satisfaction is the
// contract check.
//
// # Error Handling
//
// Misconfiguration (missing identity functions, PersistLogin without a
// token store) fails synchronously with a sentinel error. Collaborator
// faults propagate to the caller. Negative outcomes — no session principal,
// stale id, absent or invalid remember-me cookie, unowned token — are not
// errors: they resolve to "no principal" with silent cleanup.
package authn
