package utils

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestampIsMonotonic(t *testing.T) {
	u := New()
	at := time.Now()

	prev := ""
	for i := 0; i < 100; i++ {
		id, err := u.NewULIDFromTimestamp(at)
		require.NoError(t, err)

		parsed, err := ulid.ParseStrict(id)
		require.NoError(t, err)
		assert.Equal(t, ulid.Timestamp(at), parsed.Time())

		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestNowIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, New().Now().Location())
}
