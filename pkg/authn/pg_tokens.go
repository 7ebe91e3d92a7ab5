package authn

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGTokenStoreSchema creates the backing table. Run it once at deploy time
// (or from PGTokenStore.Migrate).
const PGTokenStoreSchema = `
CREATE TABLE IF NOT EXISTS remember_tokens (
	user_id    TEXT        NOT NULL,
	token      TEXT        NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (user_id, token)
)`

// PGTokenStore implements TokenStore on a single Postgres table with a
// composite (user_id, token) key, so SaveToken is idempotent per pair.
type PGTokenStore[T any] struct {
	db     *pgxpool.Pool
	userID func(T) string
}

// NewPGTokenStore creates a Postgres-backed token store.
func NewPGTokenStore[T any](db *pgxpool.Pool, userID func(T) string) *PGTokenStore[T] {
	return &PGTokenStore[T]{db: db, userID: userID}
}

// Migrate applies PGTokenStoreSchema.
func (s *PGTokenStore[T]) Migrate(ctx context.Context) error {
	_, err := s.db.Exec(ctx, PGTokenStoreSchema)
	return err
}

func (s *PGTokenStore[T]) SaveToken(ctx context.Context, principal T, token string) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO remember_tokens (user_id, token) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		s.userID(principal), token)
	return err
}

func (s *PGTokenStore[T]) HasToken(ctx context.Context, principal T, token string) (bool, error) {
	var owns bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM remember_tokens WHERE user_id = $1 AND token = $2)`,
		s.userID(principal), token).Scan(&owns)
	return owns, err
}

func (s *PGTokenStore[T]) DropToken(ctx context.Context, principal T, token string) error {
	_, err := s.db.Exec(ctx,
		`DELETE FROM remember_tokens WHERE user_id = $1 AND token = $2`,
		s.userID(principal), token)
	return err
}

func (s *PGTokenStore[T]) ClearTokens(ctx context.Context, principal T) error {
	_, err := s.db.Exec(ctx,
		`DELETE FROM remember_tokens WHERE user_id = $1`,
		s.userID(principal))
	return err
}
