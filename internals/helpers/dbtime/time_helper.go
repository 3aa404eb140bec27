// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"strings"
	"sync"
	"time"

	"collegeschedule_backend/internals/configs"
)

var (
	locOnce sync.Once
	loc     *time.Location
)

// CollegeLocation resolves COLLEGE_TIMEZONE once.
// Fallback: Asia/Almaty, then UTC.
func CollegeLocation() *time.Location {
	locOnce.Do(func() {
		for _, name := range []string{strings.TrimSpace(configs.CollegeTimezone), "Asia/Almaty"} {
			if name == "" {
				continue
			}
			if l, err := time.LoadLocation(name); err == nil {
				loc = l
				return
			}
		}
		loc = time.UTC
	})
	return loc
}

func NowInCollege() time.Time {
	return time.Now().In(CollegeLocation())
}

// ToCollegeTime converts DB time (UTC) into the college timezone. Zero stays zero.
func ToCollegeTime(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(CollegeLocation())
}

// DateOnly drops the clock, keeping the calendar date of t in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ISOWeekday: Monday=1 ... Sunday=7.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// ParseDate accepts "YYYY-MM-DD" or an RFC3339 timestamp and keeps only the calendar date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > 10 && s[10] == 'T' {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// WeekStart is the Monday (date only) of t's Monday-start week.
func WeekStart(t time.Time) time.Time {
	return DateOnly(t).AddDate(0, 0, -(ISOWeekday(t) - 1))
}
