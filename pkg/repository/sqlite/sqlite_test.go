package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/types"
	"github.com/focuspoint-lab/focuspoint/pkg/repository/sqlite"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/dates"
)

func newTestDB(t *testing.T) *sqlite.SQLite {
	t.Helper()

	repo, err := sqlite.New(filepath.Join(t.TempDir(), "focuspoint.db"))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		_ = repo.Close()
	})
	return repo
}

func int64ptr(v int64) *int64 { return &v }

func TestProjectRoundTrip(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	cat, err := repo.Categories().Create(ctx, &model.Category{Name: "Research"})
	gt.NoError(t, err).Required()

	p, err := repo.Projects().Create(ctx, &model.Project{
		CategoryID: int64ptr(cat.ID),
		Name:       "Thesis",
		Objective:  "finish chapter 3",
		EndDate:    dates.Day(2025, time.December, 31),
		Status:     types.StatusActive,
	})
	gt.NoError(t, err).Required()
	gt.Number(t, p.ID).NotEqual(0)
	gt.Value(t, p.CategoryName).Equal("Research")

	got, err := repo.Projects().Get(ctx, p.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.Name).Equal("Thesis")
	gt.Value(t, got.EndDate).Equal(dates.Day(2025, time.December, 31))

	got.Status = types.StatusDone
	updated, err := repo.Projects().Update(ctx, got)
	gt.NoError(t, err).Required()
	gt.Value(t, updated.Status).Equal(types.StatusDone)

	_, err = repo.Projects().Get(ctx, 999)
	gt.Error(t, err).Is(sqlite.ErrNotFound)
}

func TestActionAggregations(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	cat, err := repo.Categories().Create(ctx, &model.Category{Name: "Work"})
	gt.NoError(t, err).Required()

	p1, err := repo.Projects().Create(ctx, &model.Project{
		CategoryID: int64ptr(cat.ID),
		Name:       "Alpha",
		EndDate:    dates.Day(2025, time.December, 31),
		Status:     types.StatusActive,
	})
	gt.NoError(t, err).Required()

	p2, err := repo.Projects().Create(ctx, &model.Project{
		Name:    "Beta",
		EndDate: dates.Day(2025, time.December, 31),
		Status:  types.StatusActive,
	})
	gt.NoError(t, err).Required()

	d1 := dates.Day(2025, time.June, 2)
	d2 := dates.Day(2025, time.June, 3)
	for _, a := range []*model.Action{
		{ProjectID: p1.ID, Date: d1, Minutes: 30},
		{ProjectID: p1.ID, Date: d1, Minutes: 15},
		{ProjectID: p2.ID, Date: d2, Minutes: 90},
		{ProjectID: p1.ID, Date: dates.Day(2025, time.July, 1), Minutes: 500},
	} {
		_, err := repo.Actions().Create(ctx, a)
		gt.NoError(t, err).Required()
	}

	start, end := dates.Day(2025, time.June, 1), dates.Day(2025, time.June, 30)

	total, err := repo.Actions().TotalMinutes(ctx, start, end)
	gt.NoError(t, err).Required()
	gt.Value(t, total).Equal(135)

	byDate, err := repo.Actions().MinutesByDate(ctx, start, end)
	gt.NoError(t, err).Required()
	gt.Value(t, byDate[d1]).Equal(45)
	gt.Value(t, byDate[d2]).Equal(90)
	gt.Number(t, len(byDate)).Equal(2)

	byProject, err := repo.Actions().MinutesByProject(ctx, start, end, 0)
	gt.NoError(t, err).Required()
	gt.Number(t, len(byProject)).Equal(2)
	gt.Value(t, byProject[0].Name).Equal("Beta")
	gt.Value(t, byProject[0].Minutes).Equal(90)

	byCategory, err := repo.Actions().MinutesByCategory(ctx, start, end)
	gt.NoError(t, err).Required()
	gt.Number(t, len(byCategory)).Equal(2)
	gt.Value(t, byCategory[0].Label).Equal(model.UncategorizedLabel)
	gt.Value(t, byCategory[1].Label).Equal("Work")

	detail, err := repo.Actions().ListByDate(ctx, d1)
	gt.NoError(t, err).Required()
	gt.Number(t, len(detail)).Equal(2)
	gt.Value(t, detail[0].ProjectName).Equal("Alpha")
}

func TestMilestoneAggregations(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	ref := dates.Day(2025, time.June, 15)

	p, err := repo.Projects().Create(ctx, &model.Project{
		Name:    "Gamma",
		EndDate: dates.Day(2025, time.December, 31),
		Status:  types.StatusActive,
	})
	gt.NoError(t, err).Required()

	mkMilestone := func(name string, end time.Time, percent int, status types.Status) {
		_, err := repo.Milestones().Create(ctx, &model.Milestone{
			ProjectID:       p.ID,
			Name:            name,
			EndDate:         end,
			PercentComplete: percent,
			Status:          status,
		})
		gt.NoError(t, err).Required()
	}

	mkMilestone("past-open", dates.AddDays(ref, -10), 40, types.StatusActive)
	mkMilestone("past-done", dates.AddDays(ref, -5), 100, types.StatusDone)
	mkMilestone("soon-low", dates.AddDays(ref, 3), 30, types.StatusActive)
	mkMilestone("soon-high", dates.AddDays(ref, 4), 90, types.StatusActive)
	mkMilestone("far", dates.AddDays(ref, 60), 0, types.StatusActive)

	counts, err := repo.Milestones().HealthCounts(ctx, ref, 7)
	gt.NoError(t, err).Required()
	gt.Value(t, counts[p.ID].Overdue).Equal(1)
	gt.Value(t, counts[p.ID].Risk).Equal(1)

	overdue, err := repo.Milestones().Overdue(ctx, ref, 0)
	gt.NoError(t, err).Required()
	gt.Number(t, len(overdue)).Equal(1)
	gt.Value(t, overdue[0].Milestone).Equal("past-open")
	gt.Value(t, overdue[0].DaysLate).Equal(10)
	gt.Value(t, overdue[0].Category).Equal(model.UncategorizedLabel)

	upcoming, err := repo.Milestones().Upcoming(ctx, ref, dates.AddDays(ref, 7), 0)
	gt.NoError(t, err).Required()
	gt.Number(t, len(upcoming)).Equal(2)
	gt.Value(t, upcoming[0].Milestone).Equal("soon-low")

	progress, err := repo.Milestones().ProgressOverview(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, progress[p.ID].TotalMilestones).Equal(5)
	gt.Value(t, progress[p.ID].DoneMilestones).Equal(1)
	gt.Value(t, progress[p.ID].AvgPercent).Equal(52.0)
}

func TestDependencyUniqueEdge(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	p, err := repo.Projects().Create(ctx, &model.Project{
		Name:    "Delta",
		EndDate: dates.Day(2025, time.December, 31),
		Status:  types.StatusActive,
	})
	gt.NoError(t, err).Required()

	m1, err := repo.Milestones().Create(ctx, &model.Milestone{
		ProjectID: p.ID, Name: "first",
		EndDate: dates.Day(2025, time.July, 1), Status: types.StatusActive,
	})
	gt.NoError(t, err).Required()
	m2, err := repo.Milestones().Create(ctx, &model.Milestone{
		ProjectID: p.ID, Name: "second",
		EndDate: dates.Day(2025, time.August, 1), Status: types.StatusActive,
	})
	gt.NoError(t, err).Required()

	found, err := repo.Dependencies().Find(ctx, p.ID, m1.ID, m2.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, found).Nil()

	dep, err := repo.Dependencies().Create(ctx, &model.Dependency{
		ProjectID: p.ID, FromMilestoneID: m1.ID, ToMilestoneID: m2.ID,
	})
	gt.NoError(t, err).Required()

	found, err = repo.Dependencies().Find(ctx, p.ID, m1.ID, m2.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, found.ID).Equal(dep.ID)

	// the schema rejects duplicate edges
	_, err = repo.Dependencies().Create(ctx, &model.Dependency{
		ProjectID: p.ID, FromMilestoneID: m1.ID, ToMilestoneID: m2.ID,
	})
	gt.Error(t, err)
}

func TestTokenStore(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	token := &model.SessionToken{
		ID:        "tok-1",
		ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}
	gt.NoError(t, repo.PutToken(ctx, token)).Required()

	got, err := repo.GetToken(ctx, "tok-1")
	gt.NoError(t, err).Required()
	gt.Value(t, got.ID).Equal("tok-1")
	gt.Value(t, got.IsExpired(time.Now())).Equal(false)

	gt.NoError(t, repo.DeleteToken(ctx, "tok-1")).Required()
	_, err = repo.GetToken(ctx, "tok-1")
	gt.Error(t, err).Is(sqlite.ErrNotFound)
}
