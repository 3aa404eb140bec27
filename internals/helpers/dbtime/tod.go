// file: internals/helpers/dbtime/tod.go
package dbtime

import (
	"fmt"
	"strconv"
	"strings"
)

// Tod is a time of day in minutes after midnight.
type Tod int

// ParseHM parses "HH:MM" (a trailing ":SS" is tolerated and dropped).
func ParseHM(s string) (Tod, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time %q (want HH:MM)", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 || len(parts[0]) > 2 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return Tod(h*60 + m), nil
}

func (t Tod) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// NormalizeHM returns s as zero-padded "HH:MM", or s unchanged when it does not parse.
func NormalizeHM(s string) string {
	t, err := ParseHM(s)
	if err != nil {
		return s
	}
	return t.String()
}

// Shift windows: first 08:00–12:30, second 12:40–17:00 (inclusive).
const (
	firstShiftFrom  Tod = 8 * 60
	firstShiftTo    Tod = 12*60 + 30
	secondShiftFrom Tod = 12*60 + 40
	secondShiftTo   Tod = 17 * 60
)

// DetermineShift derives the shift from a lesson start time; 0 when it falls
// outside both windows or does not parse.
func DetermineShift(startTime string) int {
	t, err := ParseHM(startTime)
	if err != nil {
		return 0
	}
	switch {
	case t >= firstShiftFrom && t <= firstShiftTo:
		return 1
	case t >= secondShiftFrom && t <= secondShiftTo:
		return 2
	}
	return 0
}
