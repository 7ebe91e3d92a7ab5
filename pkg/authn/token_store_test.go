package authn_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/authn"
)

// runTokenStoreContract exercises the four-operation adapter contract the
// authentication layer relies on, against any implementation.
func runTokenStoreContract(t *testing.T, store authn.TokenStore[testUser]) {
	t.Helper()

	ctx := context.Background()
	alice := testUser{ID: "42", Name: "alice"}
	bob := testUser{ID: "7", Name: "bob"}

	t.Run("save then has", func(t *testing.T) {
		require.NoError(t, store.SaveToken(ctx, alice, "tok-1"))

		owns, err := store.HasToken(ctx, alice, "tok-1")
		require.NoError(t, err)
		assert.True(t, owns)
	})

	t.Run("ownership is per principal and per token", func(t *testing.T) {
		owns, err := store.HasToken(ctx, bob, "tok-1")
		require.NoError(t, err)
		assert.False(t, owns)

		owns, err = store.HasToken(ctx, alice, "tok-other")
		require.NoError(t, err)
		assert.False(t, owns)
	})

	t.Run("save is idempotent", func(t *testing.T) {
		require.NoError(t, store.SaveToken(ctx, alice, "tok-1"))

		owns, err := store.HasToken(ctx, alice, "tok-1")
		require.NoError(t, err)
		assert.True(t, owns)
	})

	t.Run("drop removes a single token", func(t *testing.T) {
		require.NoError(t, store.SaveToken(ctx, alice, "tok-2"))
		require.NoError(t, store.DropToken(ctx, alice, "tok-1"))

		owns, err := store.HasToken(ctx, alice, "tok-1")
		require.NoError(t, err)
		assert.False(t, owns)

		owns, err = store.HasToken(ctx, alice, "tok-2")
		require.NoError(t, err)
		assert.True(t, owns)
	})

	t.Run("drop of unknown token is not an error", func(t *testing.T) {
		assert.NoError(t, store.DropToken(ctx, alice, "never-issued"))
		assert.NoError(t, store.DropToken(ctx, testUser{ID: "ghost"}, "tok"))
	})

	t.Run("clear removes every token", func(t *testing.T) {
		require.NoError(t, store.SaveToken(ctx, alice, "tok-3"))
		require.NoError(t, store.ClearTokens(ctx, alice))

		for _, tok := range []string{"tok-2", "tok-3"} {
			owns, err := store.HasToken(ctx, alice, tok)
			require.NoError(t, err)
			assert.False(t, owns)
		}
	})
}

func TestMemoryTokenStore(t *testing.T) {
	runTokenStoreContract(t, authn.NewMemoryTokenStore(testUserID))
}

func TestRedisTokenStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	runTokenStoreContract(t, authn.NewRedisTokenStore(client, testUserID, time.Hour))

	t.Run("ttl bounds unused tokens", func(t *testing.T) {
		store := authn.NewRedisTokenStore(client, testUserID, time.Minute)
		ctx := context.Background()
		u := testUser{ID: "ttl-user"}

		require.NoError(t, store.SaveToken(ctx, u, "tok"))
		assert.Greater(t, mr.TTL("authkit:remember:ttl-user"), time.Duration(0))

		mr.FastForward(2 * time.Minute)

		owns, err := store.HasToken(ctx, u, "tok")
		require.NoError(t, err)
		assert.False(t, owns)
	})
}
