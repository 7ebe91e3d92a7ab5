package authn_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// testUser is the application-owned principal type used across the tests.
type testUser struct {
	ID   string
	Name string
}

func testUserID(u testUser) string { return u.ID }

// MockTokenStore is a mock implementation of authn.TokenStore[testUser].
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) SaveToken(ctx context.Context, principal testUser, token string) error {
	args := m.Called(ctx, principal, token)
	return args.Error(0)
}

func (m *MockTokenStore) HasToken(ctx context.Context, principal testUser, token string) (bool, error) {
	args := m.Called(ctx, principal, token)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenStore) DropToken(ctx context.Context, principal testUser, token string) error {
	args := m.Called(ctx, principal, token)
	return args.Error(0)
}

func (m *MockTokenStore) ClearTokens(ctx context.Context, principal testUser) error {
	args := m.Called(ctx, principal)
	return args.Error(0)
}
