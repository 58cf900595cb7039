package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Sentinel errors for user-supplied date and duration strings
var (
	ErrInvalidDate     = goerr.New("invalid date, expected DD/MM/YYYY")
	ErrInvalidDuration = goerr.New("invalid duration, expected HH:MM")
)

var (
	dmyRe = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	// Hours are unbounded, minutes must be exactly two digits 00-59
	hhmmRe = regexp.MustCompile(`^(\d+):([0-5]\d)$`)
)

// Day returns the UTC midnight time for the given calendar day.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Midnight truncates t to UTC midnight of the same calendar day.
func Midnight(t time.Time) time.Time {
	return Day(t.Year(), t.Month(), t.Day())
}

// AddDays returns the calendar day n days after t.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween returns the number of calendar days from a to b.
// Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(Midnight(b).Sub(Midnight(a)).Hours() / 24)
}

// ParseDate parses a strict "DD/MM/YYYY" string into a UTC midnight time.
// Calendar-invalid dates such as 31/02/2024 are rejected.
func ParseDate(s string) (time.Time, error) {
	m := dmyRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return time.Time{}, goerr.Wrap(ErrInvalidDate, "malformed date string", goerr.V("input", s))
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	d := Day(year, time.Month(month), day)
	// time.Date normalizes out-of-range components, so a round-trip
	// mismatch means the calendar date does not exist.
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, goerr.Wrap(ErrInvalidDate, "no such calendar date", goerr.V("input", s))
	}
	return d, nil
}

// FormatDate formats d as zero-padded "DD/MM/YYYY".
func FormatDate(d time.Time) string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day(), int(d.Month()), d.Year())
}

// ParseDuration converts "H:MM" or "HH:MM" into total minutes. The minutes
// component must be exactly two digits in 00-59; hours have no upper bound.
func ParseDuration(s string) (int, error) {
	m := hhmmRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, goerr.Wrap(ErrInvalidDuration, "malformed duration string", goerr.V("input", s))
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, goerr.Wrap(ErrInvalidDuration, "hours out of range", goerr.V("input", s))
	}
	mins, _ := strconv.Atoi(m[2])
	return hours*60 + mins, nil
}

// FormatDuration formats total minutes as zero-padded "HH:MM".
// Negative input is treated as zero.
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// WeekBounds returns the Monday and Sunday of the ISO week containing d.
func WeekBounds(d time.Time) (time.Time, time.Time) {
	day := Midnight(d)
	offset := (int(day.Weekday()) + 6) % 7 // Monday as 0
	monday := AddDays(day, -offset)
	return monday, AddDays(monday, 6)
}

// MonthBounds returns the first and last day of the calendar month containing d.
func MonthBounds(d time.Time) (time.Time, time.Time) {
	first := Day(d.Year(), d.Month(), 1)
	last := AddDays(first.AddDate(0, 1, 0), -1)
	return first, last
}

// YearBounds returns January 1st and December 31st of the year containing d.
func YearBounds(d time.Time) (time.Time, time.Time) {
	return Day(d.Year(), time.January, 1), Day(d.Year(), time.December, 31)
}
