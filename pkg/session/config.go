package session

import "time"

// Config holds session manager configuration
type Config struct {
	// CookieName is the name of the session id cookie (default: "sid")
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	// TTL is how long an idle session survives in the backend
	TTL time.Duration `env:"SESSION_TTL" envDefault:"720h"`

	// SecureCookies enables the Secure flag on the session cookie
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		CookieName:    "sid",
		TTL:           30 * 24 * time.Hour,
		SecureCookies: false,
	}
}
