package credstore

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// DefaultPasswordLength is 160 bits of entropy in base32.
const DefaultPasswordLength = 32

var passwordEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewPassword returns n random base32 characters (lowercase). n <= 0 selects
// DefaultPasswordLength.
func NewPassword(n int) (string, error) {
	if n <= 0 {
		n = DefaultPasswordLength
	}
	buf := make([]byte, (n*5+7)/8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("credstore: generate password: %w", err)
	}
	return strings.ToLower(passwordEncoding.EncodeToString(buf))[:n], nil
}
