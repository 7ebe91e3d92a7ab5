package authn

import (
	"crypto/rand"
	"errors"
)

// tokenLength is the length of a remember-me token in characters.
const tokenLength = 32

// tokenAlphabet has 64 chars so mapping random bytes onto it is unbiased.
const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// generateToken returns an opaque remember-me credential. Tokens are URL-
// and cookie-safe; uniqueness comes from the entropy, not from coordination
// with the store.
func generateToken() (string, error) {
	b := make([]byte, tokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}

	for i, c := range b {
		b[i] = tokenAlphabet[c%64]
	}
	return string(b), nil
}
