package accounts

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 work factor. Deliberately high so an
	// offline attacker pays for every guess.
	DefaultIterations = 100_000

	// DefaultSaltLength is the number of random salt bytes per credential.
	DefaultSaltLength = 16

	keyLength = 32 // Derived verifier length in bytes (SHA-256 output size)
)

// Hasher derives and verifies salted password hashes using
// PBKDF2-HMAC-SHA256. The zero value is not usable; construct with NewHasher.
type Hasher struct {
	iterations int
	saltLength int
}

// NewHasher creates a Hasher. Non-positive parameters fall back to the
// package defaults.
func NewHasher(iterations, saltLength int) Hasher {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	if saltLength <= 0 {
		saltLength = DefaultSaltLength
	}
	return Hasher{iterations: iterations, saltLength: saltLength}
}

// Hash derives a password verifier. When salt is nil a fresh random salt is
// generated, so two hashes of the same password never collide. Passing an
// existing salt recomputes the stored verifier (used on login and on
// password change).
func (h Hasher) Hash(password string, salt []byte) (hash, usedSalt []byte, err error) {
	if salt == nil {
		salt = make([]byte, h.saltLength)
		if _, err := rand.Read(salt); err != nil {
			return nil, nil, errors.Wrap(err, "[Hasher.Hash] rand.Read")
		}
	}
	hash = pbkdf2.Key([]byte(password), salt, h.iterations, keyLength, sha256.New)
	return hash, salt, nil
}

// Verify recomputes the verifier with the stored salt and compares it to the
// stored hash in constant time. Malformed stored credentials (missing hash
// or salt) fail verification rather than erroring.
func (h Hasher) Verify(password string, storedHash, salt []byte) bool {
	if len(storedHash) == 0 || len(salt) == 0 {
		return false
	}
	computed := pbkdf2.Key([]byte(password), salt, h.iterations, keyLength, sha256.New)
	return subtle.ConstantTimeCompare(computed, storedHash) == 1
}
