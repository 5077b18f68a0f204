package bcrypt

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	b := NewWithCost(bcrypt.MinCost)

	hash, err := b.HashPassword("dizimo-fiel")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if err := b.ComparePassword(hash, "dizimo-fiel"); err != nil {
		t.Errorf("ComparePassword(correct) error = %v", err)
	}
	if err := b.ComparePassword(hash, "outra-senha"); err == nil {
		t.Error("ComparePassword(wrong) error = nil")
	}
}

func TestHashPasswordTooLong(t *testing.T) {
	b := NewWithCost(bcrypt.MinCost)

	if _, err := b.HashPassword(strings.Repeat("a", 73)); err != ErrPasswordTooLong {
		t.Errorf("HashPassword(73 bytes) error = %v, want %v", err, ErrPasswordTooLong)
	}
}
