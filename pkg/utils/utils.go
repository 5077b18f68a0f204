package utils

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	Now() time.Time
}

type utils struct {
	clock func() time.Time
}

func New() IUtils {
	return &utils{
		clock: time.Now,
	}
}

// NewWithClock pins the clock used for "today" in metric calculations.
func NewWithClock(clock func() time.Time) IUtils {
	return &utils{
		clock: clock,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

func (u *utils) Now() time.Time {
	return u.clock()
}
