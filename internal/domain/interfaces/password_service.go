// File: internal/domain/interfaces/password_service.go
package interfaces

// PasswordService abstracts password hashing and verification.
type PasswordService interface {
	// HashPassword returns an encoded hash embedding its own parameters
	// and salt.
	HashPassword(password string) (string, error)
	// CheckPasswordHash verifies password against an encoded hash. A
	// mismatch is (false, nil); errors are reserved for malformed hashes.
	CheckPasswordHash(password, encodedHash string) (bool, error)
}
