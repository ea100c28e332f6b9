// Package token generates the short random identifiers used for note and
// tracking links. Collisions are not checked; the token space is assumed
// large enough for the records' short lifetimes.
package token

import (
	"crypto/rand"
	"fmt"
	"io"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// ShortLength is the length of note and tracking identifiers.
const ShortLength = 6

// Short returns a fresh identifier of ShortLength characters.
func Short() (string, error) {
	return Generate(ShortLength)
}

// Generate returns a random lowercase base36 string of the given length.
func Generate(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	for i, b := range bytes {
		bytes[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(bytes), nil
}
