package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeForDB(t *testing.T) {
	ts := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-15T09:30:00Z", FormatTimeForDB(ts))
}

func TestParseTimeFromDB(t *testing.T) {
	parsed, err := ParseTimeFromDB("2024-03-15T09:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC), parsed)

	_, err = ParseTimeFromDB("not a time")
	assert.Error(t, err)
}

func TestRoundTripPreservesInstant(t *testing.T) {
	now := time.Now()
	parsed, err := ParseTimeFromDB(FormatTimeForDB(now))
	require.NoError(t, err)
	assert.Equal(t, now.Unix(), parsed.Unix())
}

func TestFormatBoolForDB(t *testing.T) {
	assert.Equal(t, 1, FormatBoolForDB(true))
	assert.Equal(t, 0, FormatBoolForDB(false))
}
