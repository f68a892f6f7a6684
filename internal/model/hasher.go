package model

// PasswordHasher performs one-way password hashing and verification.
// Implementations must be safe for concurrent use and must compare in
// constant time.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hashed, plaintext string) error
}
