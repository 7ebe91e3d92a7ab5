// Package session provides a server-side key/value session scoped to one
// browser, addressed by a signed session-id cookie.
//
// A Manager pairs a cookie.Manager (for the sid cookie) with a Backend (for
// the stored values). Per request, Manager.Load returns a Store view bound
// to that request's session: four operations — Get, Set, Delete,
// Invalidate — and nothing else. Higher layers such as pkg/authn only ever
// see the Store interface, so any backend satisfying it can be plugged in.
//
//	┌────────┐  signed sid  ┌─────────┐
//	│ Client │ ───────────► │ Manager │
//	└────────┘              └─────────┘
//	                             │ Get/Set/Delete/Destroy
//	                             ▼
//	                        ┌─────────┐
//	                        │ Backend │ (memory, redis)
//	                        └─────────┘
//
// # Usage
//
//	cookieMgr, _ := cookie.New([]string{secret})
//	manager, _ := session.New(cookieMgr,
//	    session.WithBackend(session.NewRedisBackend(client, 30*24*time.Hour)),
//	)
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    sess, _ := manager.Load(w, r)
//	    _ = sess.Set(r.Context(), "theme", "dark")
//	}
//
// An in-memory backend ships out of the box and is the default. The Redis
// backend stores each session as a hash with the configured TTL.
//
// Absent keys return ErrKeyNotFound; callers decide whether that is a
// negative outcome or a fault.
package session
