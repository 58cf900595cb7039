package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/dates"
)

// MinutesByDay returns a dense daily series for the closed range
// [start, end]. Days without logged actions appear with zero minutes.
func (uc *UseCases) MinutesByDay(ctx context.Context, start, end time.Time) ([]model.DayBucket, error) {
	start = dates.Midnight(start)
	end = dates.Midnight(end)
	if end.Before(start) {
		return nil, goerr.Wrap(ErrInvalidInput, "end date before start date")
	}

	sparse, err := uc.repo.Actions().MinutesByDate(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]model.DayBucket, 0, dates.DaysBetween(start, end)+1)
	for d := start; !d.After(end); d = dates.AddDays(d, 1) {
		out = append(out, model.DayBucket{Date: d, Minutes: sparse[d]})
	}
	return out, nil
}

// ActiveDaysAndStreak counts days with activity and the longest run of
// consecutive calendar days with activity. Zero-minute days break a
// streak but gaps between non-adjacent dates do too.
func ActiveDaysAndStreak(buckets []model.DayBucket) (activeDays, longestStreak int) {
	var current int
	var prev time.Time

	for _, b := range buckets {
		if b.Minutes <= 0 {
			prev = time.Time{}
			current = 0
			continue
		}

		activeDays++
		if !prev.IsZero() && dates.DaysBetween(prev, b.Date) == 1 {
			current++
		} else {
			current = 1
		}
		if current > longestStreak {
			longestStreak = current
		}
		prev = b.Date
	}
	return activeDays, longestStreak
}

// TopShares returns the percentage of total minutes carried by the top
// project and by the top three projects. The input must already be
// sorted descending by minutes. Both shares are zero when no time is
// logged at all.
func TopShares(projects []model.ProjectMinutes) (top1, top3 float64) {
	var total int
	for _, p := range projects {
		total += p.Minutes
	}
	if total <= 0 {
		return 0, 0
	}

	top1 = 100 * float64(projects[0].Minutes) / float64(total)

	n := len(projects)
	if n > 3 {
		n = 3
	}
	var sum3 int
	for _, p := range projects[:n] {
		sum3 += p.Minutes
	}
	top3 = 100 * float64(sum3) / float64(total)
	return top1, top3
}
