// Package credential provides one-way password hashing and verification.
package credential

import "golang.org/x/crypto/bcrypt"

// MaxInputBytes is bcrypt's input limit. GenerateFromPassword rejects
// anything longer, so callers must validate length before hashing.
const MaxInputBytes = 72

// Hash derives a salted one-way hash from a plaintext password
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches hash.
// The comparison is constant-time within bcrypt, and a malformed hash
// verifies as false rather than erroring.
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// DummyHash is a well-formed bcrypt hash whose digest corresponds to no
// password. Login flows verify against it when the username does not exist so
// that unknown usernames cost the same as wrong passwords.
const DummyHash = "$2a$10$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
