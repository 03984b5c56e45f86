// Package service defines the ports the use cases call for work that lives
// outside the domain: hashing, token signing and media storage.
package service

// PasswordHasher hashes account passwords on register and change-password and
// verifies them on login.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
