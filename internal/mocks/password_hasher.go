package mocks

import (
	"github.com/stretchr/testify/mock"
)

// PasswordHasher is a mock implementation of model.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Compare(hashed, plaintext string) error {
	args := m.Called(hashed, plaintext)
	return args.Error(0)
}
