package helpers

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the rest of the platform uses.
const bcryptCost = 12

// HashPassword hashes the plain text password using bcrypt. The output embeds
// the algorithm parameters and salt, so verification is self-contained.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password in
// constant time. A mismatch is a false return, never an error.
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
