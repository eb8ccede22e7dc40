package security_test

import (
	"encoding/hex"
	"testing"

	"github.com/ferdiebergado/inkwell/internal/pkg/security"
)

func TestToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		numBytes uint32
		wantLen  int
	}{
		{"32 bytes yields 64 hex chars", 32, 64},
		{"16 bytes yields 32 hex chars", 16, 32},
		{"1 byte yields 2 hex chars", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			token := security.Token(tt.numBytes)
			if len(token) != tt.wantLen {
				t.Errorf("Token(%d) length = %d, want %d", tt.numBytes, len(token), tt.wantLen)
			}
			if _, err := hex.DecodeString(token); err != nil {
				t.Errorf("Token(%d) = %q is not valid hex: %v", tt.numBytes, token, err)
			}
		})
	}
}

func TestToken_Unique(t *testing.T) {
	t.Parallel()

	const rounds = 100
	seen := make(map[string]struct{}, rounds)
	for range rounds {
		token := security.Token(32)
		if _, ok := seen[token]; ok {
			t.Fatalf("duplicate token generated: %q", token)
		}
		seen[token] = struct{}{}
	}
}

func TestGenerateRandomBytes(t *testing.T) {
	t.Parallel()

	b, err := security.GenerateRandomBytes(16)
	if err != nil {
		t.Fatalf("GenerateRandomBytes(16) error = %v", err)
	}
	if len(b) != 16 {
		t.Errorf("GenerateRandomBytes(16) length = %d, want 16", len(b))
	}
}
