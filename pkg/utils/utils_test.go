package utils

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()
	at := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	id, err := u.NewULIDFromTimestamp(at)
	if err != nil {
		t.Fatalf("NewULIDFromTimestamp() error = %v", err)
	}

	parsed, err := ulid.Parse(id)
	if err != nil {
		t.Fatalf("ulid.Parse(%q) error = %v", id, err)
	}
	if got := ulid.Time(parsed.Time()); !got.Equal(at) {
		t.Errorf("timestamp = %v, want %v", got, at)
	}
}

func TestNewWithClock(t *testing.T) {
	fixed := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	u := NewWithClock(func() time.Time { return fixed })

	if !u.Now().Equal(fixed) {
		t.Errorf("Now() = %v, want %v", u.Now(), fixed)
	}
}
