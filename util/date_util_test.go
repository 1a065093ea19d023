package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDay(t *testing.T) {
	// 2024-03-10 20:30 UTC is 2024-03-11 02:00 IST.
	late := time.Date(2024, 3, 10, 20, 30, 0, 0, time.UTC)
	day := NormalizeDay(late)

	assert.Equal(t, 2024, day.Year())
	assert.Equal(t, time.March, day.Month())
	assert.Equal(t, 11, day.Day())
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, IST, day.Location())
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, 3, 11, 1, 0, 0, 0, IST)
	evening := time.Date(2024, 3, 11, 23, 59, 0, 0, IST)
	next := time.Date(2024, 3, 12, 0, 0, 0, 0, IST)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(evening, next))

	// The same instant expressed in UTC still matches.
	assert.True(t, SameDay(morning, morning.UTC()))
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-03-11")
	require.NoError(t, err)
	assert.Equal(t, 11, day.Day())
	assert.Equal(t, IST, day.Location())

	_, err = ParseDay("11/03/2024")
	assert.Error(t, err)
}

func TestFormatReportTime(t *testing.T) {
	ts := time.Date(2024, 3, 11, 15, 4, 5, 0, IST)
	assert.Equal(t, "11/03/2024\n15:04", FormatReportTime(ts))
	assert.Equal(t, "11/03/2024 15:04:05", FormatDisplayTime(ts))

	assert.Equal(t, "", FormatReportTime(time.Time{}))
	assert.Equal(t, "", FormatDisplayTime(time.Time{}))
}
