package dates_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/focuspoint-lab/focuspoint/pkg/utils/dates"
)

func TestParseDate(t *testing.T) {
	t.Run("valid dates", func(t *testing.T) {
		d, err := dates.ParseDate("29/02/2024")
		gt.NoError(t, err).Required()
		gt.Value(t, d).Equal(dates.Day(2024, time.February, 29))

		d, err = dates.ParseDate("01/01/2000")
		gt.NoError(t, err).Required()
		gt.Value(t, d).Equal(dates.Day(2000, time.January, 1))
	})

	t.Run("calendar-invalid dates rejected", func(t *testing.T) {
		for _, s := range []string{"31/02/2024", "29/02/2023", "31/04/2025", "00/01/2024", "01/13/2024", "01/00/2024"} {
			_, err := dates.ParseDate(s)
			gt.Error(t, err).Is(dates.ErrInvalidDate)
		}
	})

	t.Run("malformed strings rejected", func(t *testing.T) {
		for _, s := range []string{"", "2024-01-01", "1/1/2024", "01/01/24", "aa/bb/cccc", "01/01/2024x"} {
			_, err := dates.ParseDate(s)
			gt.Error(t, err).Is(dates.ErrInvalidDate)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		for _, d := range []time.Time{
			dates.Day(2024, time.February, 29),
			dates.Day(1999, time.December, 31),
			dates.Day(2025, time.June, 5),
		} {
			parsed, err := dates.ParseDate(dates.FormatDate(d))
			gt.NoError(t, err).Required()
			gt.Value(t, parsed).Equal(d)
		}
	})
}

func TestFormatDate(t *testing.T) {
	gt.Value(t, dates.FormatDate(dates.Day(2025, time.June, 5))).Equal("05/06/2025")
	gt.Value(t, dates.FormatDate(dates.Day(999, time.January, 1))).Equal("01/01/0999")
}

func TestParseDuration(t *testing.T) {
	t.Run("valid durations", func(t *testing.T) {
		cases := map[string]int{
			"0:00":   0,
			"1:05":   65,
			"01:05":  65,
			"12:30":  750,
			"99:59":  99*60 + 59,
			"100:00": 6000,
		}
		for in, want := range cases {
			m, err := dates.ParseDuration(in)
			gt.NoError(t, err).Required()
			gt.Value(t, m).Equal(want)
		}
	})

	t.Run("invalid durations rejected", func(t *testing.T) {
		for _, s := range []string{"", "12:60", "1:5", "1:555", ":30", "12", "12:", "-1:30", "1h30m"} {
			_, err := dates.ParseDuration(s)
			gt.Error(t, err).Is(dates.ErrInvalidDuration)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		for _, m := range []int{0, 1, 59, 60, 61, 750, 5999, 6000, 123456} {
			parsed, err := dates.ParseDuration(dates.FormatDuration(m))
			gt.NoError(t, err).Required()
			gt.Value(t, parsed).Equal(m)
		}
	})
}

func TestFormatDuration(t *testing.T) {
	gt.Value(t, dates.FormatDuration(65)).Equal("01:05")
	gt.Value(t, dates.FormatDuration(0)).Equal("00:00")
	gt.Value(t, dates.FormatDuration(-30)).Equal("00:00")
	gt.Value(t, dates.FormatDuration(6000)).Equal("100:00")
}

func TestWeekBounds(t *testing.T) {
	// 2025-06-05 is a Thursday
	mon, sun := dates.WeekBounds(dates.Day(2025, time.June, 5))
	gt.Value(t, mon).Equal(dates.Day(2025, time.June, 2))
	gt.Value(t, sun).Equal(dates.Day(2025, time.June, 8))

	// Monday maps to itself
	mon, sun = dates.WeekBounds(dates.Day(2025, time.June, 2))
	gt.Value(t, mon).Equal(dates.Day(2025, time.June, 2))
	gt.Value(t, sun).Equal(dates.Day(2025, time.June, 8))

	// Sunday stays in the same ISO week
	mon, sun = dates.WeekBounds(dates.Day(2025, time.June, 8))
	gt.Value(t, mon).Equal(dates.Day(2025, time.June, 2))
	gt.Value(t, sun).Equal(dates.Day(2025, time.June, 8))
}

func TestMonthBounds(t *testing.T) {
	first, last := dates.MonthBounds(dates.Day(2024, time.February, 15))
	gt.Value(t, first).Equal(dates.Day(2024, time.February, 1))
	gt.Value(t, last).Equal(dates.Day(2024, time.February, 29))

	first, last = dates.MonthBounds(dates.Day(2025, time.December, 31))
	gt.Value(t, first).Equal(dates.Day(2025, time.December, 1))
	gt.Value(t, last).Equal(dates.Day(2025, time.December, 31))
}

func TestYearBounds(t *testing.T) {
	first, last := dates.YearBounds(dates.Day(2025, time.July, 20))
	gt.Value(t, first).Equal(dates.Day(2025, time.January, 1))
	gt.Value(t, last).Equal(dates.Day(2025, time.December, 31))
}

func TestDaysBetween(t *testing.T) {
	gt.Value(t, dates.DaysBetween(dates.Day(2025, time.June, 1), dates.Day(2025, time.June, 4))).Equal(3)
	gt.Value(t, dates.DaysBetween(dates.Day(2025, time.June, 4), dates.Day(2025, time.June, 1))).Equal(-3)
	gt.Value(t, dates.DaysBetween(dates.Day(2025, time.June, 1), dates.Day(2025, time.June, 1))).Equal(0)
}
