package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// SecureHex returns lengthInBytes random bytes from crypto/rand, hex encoded.
// lengthInBytes=4 gives an 8 character string.
func SecureHex(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// SecureDigits returns a uniformly random decimal string of exactly n digits,
// leading zeros included.
func SecureDigits(n int) (string, error) {
	if n <= 0 || n > 18 {
		return "", fmt.Errorf("digit count must be between 1 and 18, got %d", n)
	}
	space := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	v, err := rand.Int(rand.Reader, space)
	if err != nil {
		return "", fmt.Errorf("failed to read random number: %w", err)
	}
	s := v.String()
	return strings.Repeat("0", n-len(s)) + s, nil
}
