package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	// Postgres TIME columns come back with seconds
	ts, err = NewTimeStringFromString("18:00:00")
	require.NoError(t, err)
	assert.Equal(t, "18:00:00", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("nove e meia")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_MinutesOfDay(t *testing.T) {
	tests := []struct {
		value   TimeString
		minutes int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"09:30", 570},
		{"18:00", 1080},
		{"23:30", 1410},
		{"24:00", 1440}, // exclusive end of day
		{"12:15:45", 735},
	}

	for _, tt := range tests {
		got, err := tt.value.MinutesOfDay()
		require.NoError(t, err, "value %q", tt.value)
		assert.Equal(t, tt.minutes, got, "value %q", tt.value)
	}

	_, err := TimeString("bogus").MinutesOfDay()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Ordering(t *testing.T) {
	opening := TimeString("09:00")
	closing := TimeString("18:00")

	assert.True(t, opening.IsBefore(closing))
	assert.False(t, closing.IsBefore(opening))
	assert.True(t, closing.IsAfter(opening))
	assert.False(t, opening.IsBefore(opening))

	// invalid values compare as neither before nor after
	assert.False(t, TimeString("bogus").IsBefore(closing))
	assert.False(t, TimeString("bogus").IsAfter(opening))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:00").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	ts, err = TimeString("17:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:00"), ts)

	// exclusive end of day is a valid closing bound
	ts, err = TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), ts)

	// a slot never wraps to the next day
	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("00:15").AddMinutes(-30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_At(t *testing.T) {
	brt := time.FixedZone("BRT", -3*60*60)
	day := time.Date(2025, time.October, 13, 0, 0, 0, 0, brt)

	got, err := TimeString("09:30").At(day)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.October, 13, 9, 30, 0, 0, brt), got)
	assert.Equal(t, brt, got.Location())

	_, err = TimeString("bogus").At(day)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:00:00"))
	assert.Equal(t, TimeString("09:00:00"), ts)

	require.NoError(t, ts.Scan([]byte("18:30")))
	assert.Equal(t, TimeString("18:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, time.October, 13, 14, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bogus").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
