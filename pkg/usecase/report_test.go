package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/types"
	"github.com/focuspoint-lab/focuspoint/pkg/repository/memory"
	"github.com/focuspoint-lab/focuspoint/pkg/service/render"
	"github.com/focuspoint-lab/focuspoint/pkg/usecase"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/dates"
)

// seedWeek logs 30 and 90 minutes inside the week of 2 June 2025
func seedWeek(t *testing.T, repo *memory.Memory) *model.Project {
	t.Helper()
	ctx := context.Background()

	p, err := repo.Projects().Create(ctx, &model.Project{
		Name:    "Alpha",
		EndDate: dates.Day(2025, time.December, 31),
		Status:  types.StatusActive,
	})
	gt.NoError(t, err).Required()

	for _, a := range []*model.Action{
		{ProjectID: p.ID, Date: dates.Day(2025, time.June, 3), Minutes: 30},
		{ProjectID: p.ID, Date: dates.Day(2025, time.June, 5), Minutes: 90},
	} {
		_, err := repo.Actions().Create(ctx, a)
		gt.NoError(t, err).Required()
	}
	return p
}

func TestWeeklyReportContext(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)
	ctx := context.Background()
	seedWeek(t, repo)

	rc, err := uc.BuildReportContext(ctx, types.PeriodWeekly, dates.Day(2025, time.June, 4))
	gt.NoError(t, err).Required()

	gt.Value(t, rc.Start).Equal(dates.Day(2025, time.June, 2))
	gt.Value(t, rc.End).Equal(dates.Day(2025, time.June, 8))
	gt.Value(t, rc.TotalMinutes).Equal(120)
	gt.Value(t, rc.TotalHHMM).Equal("02:00")

	gt.Number(t, len(rc.SeriesLabels)).Equal(7)
	gt.Value(t, rc.SeriesLabels[0]).Equal("Mon")
	gt.Value(t, rc.SeriesLabels[6]).Equal("Sun")
	gt.Value(t, rc.SeriesValues[1]).Equal(30)
	gt.Value(t, rc.SeriesValues[3]).Equal(90)
	gt.Value(t, rc.SeriesMax).Equal(90)

	gt.Value(t, rc.BusiestLabel).Equal("Thu")
	gt.Value(t, rc.BusiestValue).Equal("01:30")

	gt.Value(t, rc.ActiveDays).Equal(2)
	gt.Value(t, rc.AvgActiveHHMM).Equal("01:00")
	gt.Value(t, rc.LongestStreak).Equal(1)
	gt.Value(t, rc.Top1Share).Equal("100.0%")
	gt.Value(t, rc.Top3Share).Equal("100.0%")

	gt.Value(t, rc.TemplateName).Equal("report_week.html")
	gt.Value(t, rc.SuggestedFilename).Equal("weekly_2025-06-02_to_2025-06-08")
	gt.Number(t, len(rc.Projects)).Equal(1)
	gt.Value(t, rc.Projects[0].Name).Equal("Alpha")
}

func TestMonthlyReportContext(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)
	ctx := context.Background()
	seedWeek(t, repo)

	rc, err := uc.BuildReportContext(ctx, types.PeriodMonthly, dates.Day(2025, time.June, 15))
	gt.NoError(t, err).Required()

	gt.Value(t, rc.Start).Equal(dates.Day(2025, time.June, 1))
	gt.Value(t, rc.End).Equal(dates.Day(2025, time.June, 30))

	// June 2025 splits into chunks 1-7, 8-14, 15-21, 22-28, 29-30
	gt.Number(t, len(rc.SeriesLabels)).Equal(5)
	gt.Value(t, rc.SeriesLabels[0]).Equal("W1")
	gt.Value(t, rc.SeriesLabels[4]).Equal("W5")
	gt.Value(t, rc.SeriesValues[0]).Equal(120)
	gt.Value(t, rc.BusiestLabel).Equal("W1")

	gt.Value(t, rc.TemplateName).Equal("report_month.html")
	gt.Value(t, rc.SuggestedFilename).Equal("monthly_2025-06")
}

func TestYearlyReportContext(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)
	ctx := context.Background()
	seedWeek(t, repo)

	rc, err := uc.BuildReportContext(ctx, types.PeriodYearly, dates.Day(2025, time.March, 10))
	gt.NoError(t, err).Required()

	gt.Value(t, rc.Start).Equal(dates.Day(2025, time.January, 1))
	gt.Value(t, rc.End).Equal(dates.Day(2025, time.December, 31))

	gt.Number(t, len(rc.SeriesLabels)).Equal(12)
	gt.Value(t, rc.SeriesLabels[0]).Equal("Jan")
	gt.Value(t, rc.SeriesLabels[11]).Equal("Dec")
	gt.Value(t, rc.SeriesValues[5]).Equal(120) // June
	gt.Value(t, rc.BusiestLabel).Equal("Jun")

	gt.Value(t, rc.TemplateName).Equal("report_year.html")
	gt.Value(t, rc.SuggestedFilename).Equal("yearly_2025")
}

func TestGenerateReportWritesFileAndRegistry(t *testing.T) {
	repo := memory.New()
	renderer, err := render.NewHTML()
	gt.NoError(t, err).Required()

	dir := t.TempDir()
	uc := usecase.New(repo,
		usecase.WithRenderer(renderer),
		usecase.WithReportsDir(dir),
		usecase.WithAppName("FocusPoint"),
	)
	ctx := context.Background()
	seedWeek(t, repo)

	file, err := uc.GenerateReport(ctx, types.PeriodWeekly, dates.Day(2025, time.June, 4))
	gt.NoError(t, err).Required()
	gt.Value(t, file.PeriodType).Equal(types.PeriodWeekly)
	gt.Value(t, file.FilePath).Equal(filepath.Join(dir, "weekly_2025-06-02_to_2025-06-08.html"))

	body, err := os.ReadFile(file.FilePath)
	gt.NoError(t, err).Required()
	gt.Value(t, strings.Contains(string(body), "FocusPoint")).Equal(true)
	gt.Value(t, strings.Contains(string(body), "02:00")).Equal(true)

	files, err := uc.ListReports(ctx)
	gt.NoError(t, err).Required()
	gt.Number(t, len(files)).Equal(1)

	got, err := uc.GetReport(ctx, file.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.FilePath).Equal(file.FilePath)

	_, err = uc.GetReport(ctx, 999)
	gt.Error(t, err).Is(usecase.ErrReportNotFound)
}

func TestUnknownReportType(t *testing.T) {
	uc := usecase.New(memory.New())

	_, err := uc.BuildReportContext(context.Background(), types.PeriodKind("daily"), time.Now())
	gt.Error(t, err).Is(usecase.ErrUnknownReportType)
}
