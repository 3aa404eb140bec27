package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHM(t *testing.T) {
	tod, err := ParseHM(" 9:05 ")
	require.NoError(t, err)
	assert.Equal(t, "09:05", tod.String())

	tod, err = ParseHM("12:40:00")
	require.NoError(t, err)
	assert.Equal(t, Tod(760), tod)

	for _, bad := range []string{"", "24:00", "12:60", "noon", "12:5", "1:2:3:4"} {
		_, err := ParseHM(bad)
		assert.Error(t, err, bad)
	}
}

func TestDetermineShift(t *testing.T) {
	cases := map[string]int{
		"08:00": 1,
		"09:45": 1,
		"12:30": 1,
		"12:35": 0,
		"12:40": 2,
		"17:00": 2,
		"17:01": 0,
		"07:59": 0,
		"bogus": 0,
	}
	for in, want := range cases {
		assert.Equal(t, want, DetermineShift(in), in)
	}
}

func TestISOWeekdayAndParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-12T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 3, ISOWeekday(d))

	d, err = ParseDate("2024-06-16")
	require.NoError(t, err)
	assert.Equal(t, 7, ISOWeekday(d))

	_, err = ParseDate("12.06.2024")
	assert.Error(t, err)

	local := time.Date(2024, 6, 12, 23, 30, 0, 0, time.FixedZone("ALMT", 5*3600))
	assert.Equal(t, "2024-06-12", DateOnly(local).Format("2006-01-02"))
}
