package service

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// =============================================================================
// Hash Tests
// =============================================================================

func TestHash_RoundTrip(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	tests := []struct {
		name     string
		password string
	}{
		{
			name:     "simple password",
			password: "s3cret",
		},
		{
			name:     "long password",
			password: "a-fairly-long-password-with-punctuation!@#",
		},
		{
			name:     "unicode password",
			password: "пароль-密码",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(tt.password)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}
			if hash == "" {
				t.Fatal("Hash() returned empty string")
			}
			if hash == tt.password {
				t.Fatal("Hash() returned the plaintext password")
			}

			if !hasher.Verify(tt.password, hash) {
				t.Error("Verify() = false for the original password")
			}
			if hasher.Verify(tt.password+"x", hash) {
				t.Error("Verify() = true for a different password")
			}
		})
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash1, err := hasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	hash2, err := hasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if hash1 == hash2 {
		t.Error("two hashes of the same password are identical, salt is missing")
	}
}

func TestHash_BcryptFormat(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("hash %q does not look like a bcrypt hash", hash)
	}
}

// =============================================================================
// Verify Tests
// =============================================================================

func TestVerify_MalformedHashFailsClosed(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	tests := []struct {
		name string
		hash string
	}{
		{
			name: "empty hash",
			hash: "",
		},
		{
			name: "plaintext stored as hash",
			hash: "s3cret",
		},
		{
			name: "truncated bcrypt hash",
			hash: "$2a$10$abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hasher.Verify("s3cret", tt.hash) {
				t.Error("Verify() = true for malformed hash")
			}
		})
	}
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MaxCost + 1).(*bcryptHasher)

	if hasher.cost != bcrypt.DefaultCost {
		t.Errorf("cost = %d, want fallback to %d", hasher.cost, bcrypt.DefaultCost)
	}
}
