package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Token returns a hex-encoded token of 2*numBytes characters drawn from the
// operating system's CSPRNG. A failing entropy source leaves nothing sensible
// to do, so Token panics instead of returning an error.
func Token(numBytes uint32) string {
	b := make([]byte, numBytes)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("security: read random bytes: %v", err))
	}
	return hex.EncodeToString(b)
}

// GenerateRandomBytes returns length bytes from the CSPRNG.
func GenerateRandomBytes(length uint32) ([]byte, error) {
	key := make([]byte, length)

	_, err := rand.Read(key)
	if err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}

	return key, nil
}
