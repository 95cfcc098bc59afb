package utils

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	Now() time.Time
}

type utils struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func New() IUtils {
	return &utils{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// NewULIDFromTimestamp returns a ULID for t. Ids minted within the same
// millisecond stay strictly increasing, which keeps insertion order sortable.
func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(t), u.entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

func (u *utils) Now() time.Time {
	return time.Now().UTC()
}
