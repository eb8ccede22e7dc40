package hash_test

import (
	"strings"
	"testing"

	"github.com/ferdiebergado/inkwell/internal/config"
	"github.com/ferdiebergado/inkwell/internal/platform/hash"
)

func testArgon2Cfg() *config.Argon2 {
	// Small parameters keep the test fast; production values live in config.json.
	return &config.Argon2{
		Memory:     1024,
		Iterations: 1,
		Threads:    1,
		SaltLength: 16,
		KeyLength:  32,
	}
}

func TestArgon2Hasher_Roundtrip(t *testing.T) {
	t.Parallel()

	hasher := hash.NewArgon2Hasher(testArgon2Cfg(), "pepper")
	hashed, err := hasher.Hash("hunter2A")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if !strings.HasPrefix(hashed, "$argon2id$") {
		t.Errorf("Hash() = %q, want argon2id encoding", hashed)
	}

	ok, err := hasher.Verify("hunter2A", hashed)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if !ok {
		t.Error("Verify() = false for the original password")
	}

	ok, err = hasher.Verify("wrong", hashed)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if ok {
		t.Error("Verify() = true for a wrong password")
	}
}

func TestArgon2Hasher_DistinctSalts(t *testing.T) {
	t.Parallel()

	hasher := hash.NewArgon2Hasher(testArgon2Cfg(), "pepper")
	first, err := hasher.Hash("hunter2A")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := hasher.Hash("hunter2A")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if first == second {
		t.Error("hashing the same password twice produced identical output")
	}
}

func TestArgon2Hasher_PepperMatters(t *testing.T) {
	t.Parallel()

	hashed, err := hash.NewArgon2Hasher(testArgon2Cfg(), "pepper").Hash("hunter2A")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	ok, err := hash.NewArgon2Hasher(testArgon2Cfg(), "other-pepper").Verify("hunter2A", hashed)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if ok {
		t.Error("Verify() = true with a different pepper")
	}
}
