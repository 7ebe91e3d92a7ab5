package authn

import (
	"context"
	"sync"
)

// TokenStore persists the association between a principal and its valid
// remember-me tokens. A principal may hold several tokens at once (one per
// device). Implementations own their storage and concurrency; the service
// never inspects stored state beyond these four operations.
type TokenStore[T any] interface {
	// SaveToken records a token for the principal.
	SaveToken(ctx context.Context, principal T, token string) error

	// HasToken reports whether the principal owns exactly this token.
	HasToken(ctx context.Context, principal T, token string) (bool, error)

	// DropToken removes a single token from the principal.
	DropToken(ctx context.Context, principal T, token string) error

	// ClearTokens removes every token the principal holds.
	ClearTokens(ctx context.Context, principal T) error
}

// MemoryTokenStore implements TokenStore in memory. Suitable for tests and
// single-process deployments.
type MemoryTokenStore[T any] struct {
	mu     sync.RWMutex
	tokens map[string]map[string]struct{}
	userID func(T) string
}

// NewMemoryTokenStore creates an in-memory token store. userID maps a
// principal to the key its tokens are filed under; normally the same
// function as Config.UserID.
func NewMemoryTokenStore[T any](userID func(T) string) *MemoryTokenStore[T] {
	return &MemoryTokenStore[T]{
		tokens: make(map[string]map[string]struct{}),
		userID: userID,
	}
}

func (s *MemoryTokenStore[T]) SaveToken(ctx context.Context, principal T, token string) error {
	id := s.userID(principal)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tokens[id] == nil {
		s.tokens[id] = make(map[string]struct{})
	}
	s.tokens[id][token] = struct{}{}
	return nil
}

func (s *MemoryTokenStore[T]) HasToken(ctx context.Context, principal T, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.tokens[s.userID(principal)][token]
	return ok, nil
}

func (s *MemoryTokenStore[T]) DropToken(ctx context.Context, principal T, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens[s.userID(principal)], token)
	return nil
}

func (s *MemoryTokenStore[T]) ClearTokens(ctx context.Context, principal T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, s.userID(principal))
	return nil
}
