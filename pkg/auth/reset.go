package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// ResetTokenTTL is how long a password-reset link remains valid.
const ResetTokenTTL = 10 * time.Minute

// NewResetToken returns a random reset token and the sha256 digest that gets
// persisted. Only the digest is stored; the raw token travels in the email
// link and is hashed again on verification.
func NewResetToken() (token, digest string, err error) {
	b := make([]byte, 32)
	if _, err = rand.Read(b); err != nil {
		return "", "", err
	}
	token = hex.EncodeToString(b)
	return token, HashResetToken(token), nil
}

// HashResetToken returns the hex sha256 digest of a raw reset token.
func HashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
