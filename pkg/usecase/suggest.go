package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/types"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/dates"
)

// Suggestion thresholds. Progress percentages are project averages from
// the milestone progress overview.
const (
	suggestLowProgress  = 60
	suggestFocusShare   = 60
	suggestSpreadShare  = 50
	suggestLaggingAvg   = 50
	suggestScanUpcoming = 5
	suggestScanOverdue  = 5
	suggestPrepareScan  = 6
	suggestResolveScan  = 6
	suggestYearOverdue  = 8
	suggestHotProjects  = 5
)

type suggestionInput struct {
	start    time.Time
	end      time.Time
	top1     float64
	top3     float64
	top      []model.ProjectMinutes
	upcoming []model.UpcomingMilestone
	overdue  []model.OverdueMilestone
}

// buildSuggestions produces the period-specific heuristic nudges shown
// at the bottom of a report. The caller truncates to the period cap.
func (uc *UseCases) buildSuggestions(ctx context.Context, kind types.PeriodKind, in suggestionInput) ([]string, error) {
	progress, err := uc.repo.Milestones().ProgressOverview(ctx)
	if err != nil {
		return nil, err
	}

	switch kind {
	case types.PeriodWeekly:
		return uc.weeklySuggestions(ctx, in, progress)
	case types.PeriodMonthly:
		return monthlySuggestions(in, progress), nil
	case types.PeriodYearly:
		return yearlySuggestions(in, progress), nil
	default:
		return nil, nil
	}
}

func (uc *UseCases) weeklySuggestions(ctx context.Context, in suggestionInput, progress map[int64]model.ProjectProgress) ([]string, error) {
	out := make([]string, 0)

	for _, u := range head(in.upcoming, suggestScanUpcoming) {
		p, ok := progress[u.ProjectID]
		if ok && p.AvgPercent < suggestLowProgress {
			out = append(out, fmt.Sprintf("Focus '%s' -> '%s' due %s (progress %d%%).",
				u.Project, u.Milestone, dates.FormatDate(u.EndDate), int(p.AvgPercent)))
		}
	}

	for _, o := range head(in.overdue, suggestScanOverdue) {
		out = append(out, fmt.Sprintf("Overdue '%s' -> '%s' by %d day(s).",
			o.Project, o.Milestone, o.DaysLate))
	}

	// one nudge for the first upcoming project without any time this week
	byProject, err := uc.repo.Actions().MinutesByProject(ctx, in.start, in.end, 0)
	if err != nil {
		return nil, err
	}
	withTime := make(map[int64]bool, len(byProject))
	for _, p := range byProject {
		if p.Minutes > 0 {
			withTime[p.ProjectID] = true
		}
	}
	for _, u := range in.upcoming {
		if !withTime[u.ProjectID] {
			out = append(out, fmt.Sprintf("Start '%s': next milestone %s and no time logged this week.",
				u.Project, dates.FormatDate(u.EndDate)))
			break
		}
	}

	return out, nil
}

func monthlySuggestions(in suggestionInput, progress map[int64]model.ProjectProgress) []string {
	out := make([]string, 0)

	if in.top1 >= suggestFocusShare {
		out = append(out, "Strong focus detected. Consider checking balance across categories.")
	}

	for _, u := range head(in.upcoming, suggestPrepareScan) {
		p, ok := progress[u.ProjectID]
		if ok && p.AvgPercent < suggestLowProgress {
			out = append(out, fmt.Sprintf("Prepare '%s' -> '%s' (due %s, progress %d%%).",
				u.Project, u.Milestone, dates.FormatDate(u.EndDate), int(p.AvgPercent)))
		}
	}

	for _, o := range head(in.overdue, suggestResolveScan) {
		out = append(out, fmt.Sprintf("Resolve overdue '%s' -> '%s' (%d day(s) late).",
			o.Project, o.Milestone, o.DaysLate))
	}

	return out
}

func yearlySuggestions(in suggestionInput, progress map[int64]model.ProjectProgress) []string {
	out := make([]string, 0)

	if in.top3 < suggestSpreadShare {
		out = append(out, "Attention spread across many projects. Consider limiting WIP for deeper focus.")
	}

	for _, p := range head(in.top, suggestHotProjects) {
		prog, ok := progress[p.ProjectID]
		if ok && prog.AvgPercent < suggestLaggingAvg {
			out = append(out, fmt.Sprintf("Raise progress on '%s' (only %d%%).",
				p.Name, int(prog.AvgPercent)))
		}
	}

	for _, o := range head(in.overdue, suggestYearOverdue) {
		out = append(out, fmt.Sprintf("Overdue '%s' -> '%s' (%d day(s) late).",
			o.Project, o.Milestone, o.DaysLate))
	}

	return out
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
