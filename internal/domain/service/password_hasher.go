package service

// PasswordHasher defines the interface for password hashing.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether the plaintext password matches the stored hash.
	Compare(hashedPassword, password string) error
}
