package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/interfaces"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/types"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/dates"
)

// Per-period report parameters
type periodSpec struct {
	title          string
	templateName   string
	topProjects    int
	lookaheadDays  int
	windowDays     int
	listLimit      int
	maxSuggestions int
}

var periodSpecs = map[types.PeriodKind]periodSpec{
	types.PeriodWeekly: {
		title:          "Week at a glance",
		templateName:   "report_week.html",
		topProjects:    12,
		lookaheadDays:  7,
		windowDays:     7,
		listLimit:      10,
		maxSuggestions: 8,
	},
	types.PeriodMonthly: {
		title:          "Weekly totals (inside month)",
		templateName:   "report_month.html",
		topProjects:    15,
		lookaheadDays:  14,
		windowDays:     14,
		listLimit:      20,
		maxSuggestions: 10,
	},
	types.PeriodYearly: {
		title:          "Monthly totals",
		templateName:   "report_year.html",
		topProjects:    20,
		lookaheadDays:  30,
		windowDays:     30,
		listLimit:      30,
		maxSuggestions: 12,
	},
}

// BuildReportContext assembles the full presentation context of the
// period report containing ref, without rendering or persisting
// anything.
func (uc *UseCases) BuildReportContext(ctx context.Context, kind types.PeriodKind, ref time.Time) (*model.ReportContext, error) {
	spec, ok := periodSpecs[kind]
	if !ok {
		return nil, goerr.Wrap(ErrUnknownReportType, "unsupported period", goerr.V("kind", kind))
	}

	start, end, err := periodBounds(kind, ref)
	if err != nil {
		return nil, err
	}

	labels, values, err := uc.buildSeries(ctx, kind, start, end)
	if err != nil {
		return nil, err
	}
	busiestLabel, busiestValue := busiest(labels, values)

	buckets, err := uc.MinutesByDay(ctx, start, end)
	if err != nil {
		return nil, err
	}
	var total int
	for _, b := range buckets {
		total += b.Minutes
	}
	activeDays, longestStreak := ActiveDaysAndStreak(buckets)
	var avgActive int
	if activeDays > 0 {
		avgActive = total / activeDays
	}

	categories, err := uc.repo.Actions().MinutesByCategory(ctx, start, end)
	if err != nil {
		return nil, err
	}

	topProjects, err := uc.repo.Actions().MinutesByProject(ctx, start, end, spec.topProjects)
	if err != nil {
		return nil, err
	}
	top1, top3 := TopShares(topProjects)

	health, err := uc.repo.Milestones().HealthCounts(ctx, end, spec.lookaheadDays)
	if err != nil {
		return nil, err
	}
	rows := make([]model.ProjectReportRow, 0, len(topProjects))
	for _, p := range topProjects {
		h := health[p.ProjectID]
		rows = append(rows, model.ProjectReportRow{
			ProjectID: p.ProjectID,
			Name:      p.Name,
			Minutes:   p.Minutes,
			Overdue:   h.Overdue,
			Risk:      h.Risk,
		})
	}

	dayAfter := dates.AddDays(end, 1)
	upcoming, err := uc.repo.Milestones().Upcoming(ctx, dayAfter, dates.AddDays(end, spec.windowDays), spec.listLimit)
	if err != nil {
		return nil, err
	}
	overdue, err := uc.repo.Milestones().Overdue(ctx, dayAfter, spec.listLimit)
	if err != nil {
		return nil, err
	}

	suggestions, err := uc.buildSuggestions(ctx, kind, suggestionInput{
		start:    start,
		end:      end,
		top1:     top1,
		top3:     top3,
		top:      topProjects,
		upcoming: upcoming,
		overdue:  overdue,
	})
	if err != nil {
		return nil, err
	}
	if len(suggestions) > spec.maxSuggestions {
		suggestions = suggestions[:spec.maxSuggestions]
	}

	return &model.ReportContext{
		AppName:           uc.appName,
		Kind:              kind,
		Generated:         uc.now(),
		Start:             start,
		End:               end,
		SeriesTitle:       spec.title,
		SeriesLabels:      labels,
		SeriesValues:      values,
		SeriesMax:         maxValue(values),
		BusiestLabel:      busiestLabel,
		BusiestValue:      dates.FormatDuration(busiestValue),
		Categories:        categories,
		Projects:          rows,
		TotalMinutes:      total,
		TotalHHMM:         dates.FormatDuration(total),
		ActiveDays:        activeDays,
		AvgActiveHHMM:     dates.FormatDuration(avgActive),
		LongestStreak:     longestStreak,
		Top1Share:         fmt.Sprintf("%.1f%%", top1),
		Top3Share:         fmt.Sprintf("%.1f%%", top3),
		Upcoming:          upcoming,
		Overdue:           overdue,
		Suggestions:       suggestions,
		TemplateName:      spec.templateName,
		SuggestedFilename: baseFilename(kind, start, end),
	}, nil
}

// GenerateReport renders the period report containing ref, writes it to
// the reports directory and records it in the registry.
func (uc *UseCases) GenerateReport(ctx context.Context, kind types.PeriodKind, ref time.Time) (*model.ReportFile, error) {
	if uc.renderer == nil {
		return nil, goerr.New("no renderer configured")
	}

	rc, err := uc.BuildReportContext(ctx, kind, ref)
	if err != nil {
		return nil, err
	}
	rc.SuggestedFilename += "." + uc.renderer.Ext()

	body, err := uc.renderer.Render(ctx, rc)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(uc.reportsDir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create reports directory", goerr.V("dir", uc.reportsDir))
	}

	path := filepath.Join(uc.reportsDir, rc.SuggestedFilename)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return nil, goerr.Wrap(err, "failed to write report file", goerr.V("path", path))
	}

	return uc.repo.Reports().Create(ctx, &model.ReportFile{
		PeriodType:  kind,
		PeriodStart: rc.Start,
		PeriodEnd:   rc.End,
		FilePath:    path,
		CreatedAt:   uc.now().UTC(),
	})
}

// ListReports returns the report registry, newest first
func (uc *UseCases) ListReports(ctx context.Context) ([]*model.ReportFile, error) {
	return uc.repo.Reports().List(ctx)
}

// GetReport retrieves one registry entry
func (uc *UseCases) GetReport(ctx context.Context, id int64) (*model.ReportFile, error) {
	file, err := uc.repo.Reports().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrRecordNotFound) {
			return nil, goerr.Wrap(ErrReportNotFound, "no such report", goerr.V("id", id))
		}
		return nil, err
	}
	return file, nil
}

func periodBounds(kind types.PeriodKind, ref time.Time) (time.Time, time.Time, error) {
	switch kind {
	case types.PeriodWeekly:
		s, e := dates.WeekBounds(ref)
		return s, e, nil
	case types.PeriodMonthly:
		s, e := dates.MonthBounds(ref)
		return s, e, nil
	case types.PeriodYearly:
		s, e := dates.YearBounds(ref)
		return s, e, nil
	default:
		return time.Time{}, time.Time{}, goerr.Wrap(ErrUnknownReportType, "unsupported period", goerr.V("kind", kind))
	}
}

// buildSeries produces the headline series of the report: per-day totals
// for a week, 7-day chunk totals for a month, per-month totals for a
// year.
func (uc *UseCases) buildSeries(ctx context.Context, kind types.PeriodKind, start, end time.Time) ([]string, []int, error) {
	switch kind {
	case types.PeriodWeekly:
		buckets, err := uc.MinutesByDay(ctx, start, end)
		if err != nil {
			return nil, nil, err
		}
		labels := make([]string, 0, len(buckets))
		values := make([]int, 0, len(buckets))
		for _, b := range buckets {
			labels = append(labels, b.Date.Format("Mon"))
			values = append(values, b.Minutes)
		}
		return labels, values, nil

	case types.PeriodMonthly:
		var labels []string
		var values []int
		idx := 1
		for cur := start; !cur.After(end); {
			chunkEnd := dates.AddDays(cur, 6)
			if chunkEnd.After(end) {
				chunkEnd = end
			}
			total, err := uc.repo.Actions().TotalMinutes(ctx, cur, chunkEnd)
			if err != nil {
				return nil, nil, err
			}
			labels = append(labels, fmt.Sprintf("W%d", idx))
			values = append(values, total)
			cur = dates.AddDays(chunkEnd, 1)
			idx++
		}
		return labels, values, nil

	case types.PeriodYearly:
		labels := make([]string, 0, 12)
		values := make([]int, 0, 12)
		for month := time.January; month <= time.December; month++ {
			ms := dates.Day(start.Year(), month, 1)
			me := dates.AddDays(dates.Day(start.Year(), month, 1).AddDate(0, 1, 0), -1)
			total, err := uc.repo.Actions().TotalMinutes(ctx, ms, me)
			if err != nil {
				return nil, nil, err
			}
			labels = append(labels, ms.Format("Jan"))
			values = append(values, total)
		}
		return labels, values, nil

	default:
		return nil, nil, goerr.Wrap(ErrUnknownReportType, "unsupported period", goerr.V("kind", kind))
	}
}

// busiest returns the first label holding the maximum value
func busiest(labels []string, values []int) (string, int) {
	if len(values) == 0 {
		return "-", 0
	}

	maxIdx := 0
	for i, v := range values {
		if v > values[maxIdx] {
			maxIdx = i
		}
	}
	return labels[maxIdx], values[maxIdx]
}

func maxValue(values []int) int {
	var out int
	for _, v := range values {
		if v > out {
			out = v
		}
	}
	return out
}

func baseFilename(kind types.PeriodKind, start, end time.Time) string {
	switch kind {
	case types.PeriodMonthly:
		return fmt.Sprintf("monthly_%s", start.Format("2006-01"))
	case types.PeriodYearly:
		return fmt.Sprintf("yearly_%d", start.Year())
	default:
		return fmt.Sprintf("weekly_%s_to_%s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
}
