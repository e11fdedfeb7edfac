package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// DeriveVerifier computes the salted hash stored (and re-derived on login)
// for a password. It is a pure function of (password, salt): identical
// inputs always yield identical output, which is what makes verification by
// recomputation possible without storing the plaintext.
func DeriveVerifier(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// CheckVerifier compares a stored verifier against a candidate in constant
// time.
func CheckVerifier(stored, candidate []byte) bool {
	return subtle.ConstantTimeCompare(stored, candidate) == 1
}
