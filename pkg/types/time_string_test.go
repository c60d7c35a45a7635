package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("08:30")
	require.NoError(t, err)
	assert.Equal(t, "08:30", ts.String())

	_, err = NewTimeStringFromString("8.30")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Compare(t *testing.T) {
	open := TimeString("08:00")
	closeTime := TimeString("17:00")

	assert.True(t, open.IsBefore(closeTime))
	assert.True(t, closeTime.IsAfter(open))
	assert.False(t, open.IsBefore(open))
}

func TestTimeString_OnDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, loc)

	got, err := TimeString("17:45").OnDate(date)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 10, 15, 17, 45, 0, 0, loc)))
	assert.Equal(t, loc, got.Location())
}
