package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 13, 15, 4, 0, 0, time.UTC)

func TestToFilterDefaultsToLastThirtyDays(t *testing.T) {
	f, err := StatisticsQuery{}.ToFilter(now)
	require.NoError(t, err)
	assert.True(t, f.OnlyInstances)

	p := NewPeriod(f)
	assert.Equal(t, "2024-05-14", p.StartDate)
	assert.Equal(t, "2024-06-13", p.EndDate)
}

func TestToFilterRejectsInvertedRange(t *testing.T) {
	_, err := StatisticsQuery{StartDate: "2024-06-20", EndDate: "2024-06-10"}.ToFilter(now)
	assert.Error(t, err)

	_, err = StatisticsQuery{GroupID: "x"}.ToFilter(now)
	assert.EqualError(t, err, "invalid group_id")
}

func TestEmptyByDayAndFileName(t *testing.T) {
	m := EmptyByDay()
	assert.Len(t, m, 7)
	assert.Zero(t, m["Sunday"])

	assert.Equal(t, "lessons_20240601_20240630.xlsx",
		ExportFileName(Period{StartDate: "2024-06-01", EndDate: "2024-06-30"}))
}
