package hasher

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/condor-cl/users-api/internal/model"
)

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt hashes passwords with the bcrypt adaptive hash. The zero cost
// falls back to bcrypt.DefaultCost. Stateless and safe for concurrent use.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a Bcrypt hasher with the given cost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash returns the salted bcrypt hash of plaintext.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare verifies plaintext against a stored hash. bcrypt compares in
// constant time regardless of where the mismatch occurs.
func (b *Bcrypt) Compare(hashed, plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
}
