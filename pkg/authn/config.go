package authn

import (
	"context"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultCookieName = "at"
	defaultMaxAge     = 30 * 24 * time.Hour
	defaultLocation   = "/"
)

// Config wires the caller-supplied identity functions into the service.
// UserID and FindUserByID are required; everything else has defaults.
type Config[T any] struct {
	// UserID maps a principal to its stable identifier.
	UserID func(principal T) string

	// FindUserByID resolves an identifier back to a principal. It returns
	// ErrUserNotFound when no principal exists; any other error is treated
	// as a fault and propagated.
	FindUserByID func(ctx context.Context, id string) (T, error)

	// DefaultLocation is the fallback for LastLocation (default "/").
	DefaultLocation string

	// Cookie describes the remember-me cookie. Zero fields are completed
	// with defaults at construction.
	Cookie CookieConfig
}

// CookieConfig is the remember-me cookie descriptor.
type CookieConfig struct {
	// Name of the remember-me cookie (default: "at")
	Name string `env:"AUTH_REMEMBER_COOKIE_NAME" envDefault:"at"`

	// MaxAge of the remember-me cookie (default: 30 days)
	MaxAge time.Duration `env:"AUTH_REMEMBER_COOKIE_MAX_AGE" envDefault:"720h"`

	// Signed controls HMAC signing of the cookie value. Nil means signed.
	Signed *bool `env:"AUTH_REMEMBER_COOKIE_SIGNED" envDefault:"true"`
}

// signed reports the effective signed flag.
func (c CookieConfig) signed() bool {
	return c.Signed == nil || *c.Signed
}

// withDefaults completes zero fields without touching set ones.
func (c CookieConfig) withDefaults() CookieConfig {
	if c.Name == "" {
		c.Name = defaultCookieName
	}
	if c.MaxAge == 0 {
		c.MaxAge = defaultMaxAge
	}
	return c
}

var loadEnvOnce sync.Once

// LoadCookieConfig populates a CookieConfig from environment variables,
// reading a .env file first when one exists.
func LoadCookieConfig() (CookieConfig, error) {
	loadEnvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg CookieConfig
	if err := env.Parse(&cfg); err != nil {
		return CookieConfig{}, err
	}
	return cfg, nil
}
