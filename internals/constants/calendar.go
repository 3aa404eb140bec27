package constants

// ISO weekdays: Monday=1 ... Sunday=7.
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

const (
	FirstShift  = 1
	SecondShift = 2
)

const DateLayout = "2006-01-02"

var weekdayNames = [...]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// BoardWeekdays are the board columns (Monday..Friday).
var BoardWeekdays = []int{Monday, Tuesday, Wednesday, Thursday, Friday}

var Shifts = []int{FirstShift, SecondShift}

func WeekdayName(d int) string {
	if d < Monday || d > Sunday {
		return ""
	}
	return weekdayNames[d]
}

func ShiftName(s int) string {
	switch s {
	case FirstShift:
		return "First shift"
	case SecondShift:
		return "Second shift"
	}
	return ""
}

func IsValidShift(s int) bool { return s == FirstShift || s == SecondShift }

func IsValidWeekday(d int) bool { return d >= Monday && d <= Sunday }
