package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	valid := map[string]int{
		"00:00": 0,
		"09:00": 540,
		"17:30": 1050,
		"23:59": 1439,
	}
	for in, want := range valid {
		got, err := ParseClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "24:00", "12:60", "9am", "12", "ab:cd"} {
		_, err := ParseClock(in)
		assert.Error(t, err, in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "17:00", FormatClock(1020))
}

func TestClockRoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 1, 540, 1020, 1439} {
		parsed, err := ParseClock(FormatClock(minutes))
		require.NoError(t, err)
		assert.Equal(t, minutes, parsed)
	}
}
