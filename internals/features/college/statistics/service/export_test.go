package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collegeschedule_backend/internals/constants"
	groupDTO "collegeschedule_backend/internals/features/college/groups/dto"
	lessonDTO "collegeschedule_backend/internals/features/college/lessons/dto"
	"collegeschedule_backend/internals/features/college/statistics/dto"
)

func strp(s string) *string { return &s }

func TestBuildLessonWorkbook(t *testing.T) {
	shift := 1
	lessons := []lessonDTO.LessonResponse{
		{
			Room: "101", Date: strp("2024-06-12"), StartTime: strp("09:00"), EndTime: strp("09:45"), Shift: &shift,
			Group: &groupDTO.GroupResponse{Name: "SE-31"},
		},
	}
	stats := &dto.LessonStatistics{
		Period:       dto.Period{StartDate: "2024-06-01", EndDate: "2024-06-30"},
		TotalLessons: 1,
		ByShift:      dto.ByShift{FirstShift: 1},
		ByDayOfWeek:  map[string]int64{"Wednesday": 1},
	}

	f, err := BuildLessonWorkbook(stats, lessons)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{lessonsSheet, summarySheet}, f.GetSheetList())

	rows, err := f.GetRows(lessonsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "Wednesday", rows[1][1])
	assert.Equal(t, "SE-31", rows[1][5])
	assert.Equal(t, constants.UnknownTeacher, rows[1][6])

	total, err := f.GetCellValue(summarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "1", total)
}

func TestBuildLessonWorkbookWithoutStats(t *testing.T) {
	f, err := BuildLessonWorkbook(nil, nil)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{lessonsSheet}, f.GetSheetList())
}
