// Package service defines interfaces for stateless domain logic that does
// not belong to a single entity: credential hashing, token issuance, media
// storage and share codes. Implementations live under internal/infra.
package service

// PasswordHasher abstracts the password hashing algorithm (bcrypt in the
// default implementation), keeping the domain layer free of crypto imports.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool
}
