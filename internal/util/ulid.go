package util

import (
	"crypto/rand"
	"regexp"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)

	ulidPattern = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
)

// NewULID generates a new ULID string stamped with the current time.
func NewULID() string {
	return NewULIDAt(time.Now())
}

// NewULIDAt generates a ULID for the given time. IDs generated within the
// same millisecond are monotonically increasing.
func NewULIDAt(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// IsValidULID reports whether s is a canonical 26-character ULID.
func IsValidULID(s string) bool {
	return ulidPattern.MatchString(s)
}
