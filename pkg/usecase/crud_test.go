package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/types"
	"github.com/focuspoint-lab/focuspoint/pkg/repository/memory"
	"github.com/focuspoint-lab/focuspoint/pkg/usecase"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/dates"
)

func newFixture(t *testing.T) (*usecase.UseCases, *memory.Memory, *model.Project) {
	t.Helper()

	repo := memory.New()
	uc := usecase.New(repo)

	p, err := uc.CreateProject(context.Background(), &model.Project{
		Name:    "Alpha",
		EndDate: dates.Day(2025, time.December, 31),
	})
	gt.NoError(t, err).Required()
	gt.Value(t, p.Status).Equal(types.StatusActive) // default

	return uc, repo, p
}

func TestLogAction(t *testing.T) {
	uc, _, p := newFixture(t)
	ctx := context.Background()

	a, err := uc.LogAction(ctx, usecase.LogActionInput{
		ProjectID: p.ID,
		Date:      "03/06/2025",
		Duration:  "01:30",
		Comment:   "deep work",
	})
	gt.NoError(t, err).Required()
	gt.Value(t, a.Minutes).Equal(90)
	gt.Value(t, a.Date).Equal(dates.Day(2025, time.June, 3))

	detail, err := uc.ListActionsByDate(ctx, dates.Day(2025, time.June, 3))
	gt.NoError(t, err).Required()
	gt.Number(t, len(detail)).Equal(1)
	gt.Value(t, detail[0].ProjectName).Equal("Alpha")

	gt.NoError(t, uc.DeleteAction(ctx, a.ID)).Required()
	gt.Error(t, uc.DeleteAction(ctx, a.ID)).Is(usecase.ErrActionNotFound)
}

func TestLogActionRejectsBadInput(t *testing.T) {
	uc, repo, p := newFixture(t)
	ctx := context.Background()

	// invalid calendar date
	_, err := uc.LogAction(ctx, usecase.LogActionInput{
		ProjectID: p.ID, Date: "31/02/2024", Duration: "01:00",
	})
	gt.Error(t, err).Is(dates.ErrInvalidDate)

	// minutes out of range
	_, err = uc.LogAction(ctx, usecase.LogActionInput{
		ProjectID: p.ID, Date: "03/06/2025", Duration: "12:60",
	})
	gt.Error(t, err).Is(dates.ErrInvalidDuration)

	// single-digit minutes
	_, err = uc.LogAction(ctx, usecase.LogActionInput{
		ProjectID: p.ID, Date: "03/06/2025", Duration: "1:5",
	})
	gt.Error(t, err).Is(dates.ErrInvalidDuration)

	// unknown project
	_, err = uc.LogAction(ctx, usecase.LogActionInput{
		ProjectID: 999, Date: "03/06/2025", Duration: "01:00",
	})
	gt.Error(t, err).Is(usecase.ErrProjectNotFound)

	// milestone of another project
	other, err := uc.CreateProject(ctx, &model.Project{
		Name: "Beta", EndDate: dates.Day(2025, time.December, 31),
	})
	gt.NoError(t, err).Required()
	m, err := repo.Milestones().Create(ctx, &model.Milestone{
		ProjectID: other.ID, Name: "m", EndDate: dates.Day(2025, time.July, 1),
		Status: types.StatusActive,
	})
	gt.NoError(t, err).Required()

	_, err = uc.LogAction(ctx, usecase.LogActionInput{
		ProjectID: p.ID, MilestoneID: &m.ID, Date: "03/06/2025", Duration: "01:00",
	})
	gt.Error(t, err).Is(usecase.ErrMilestoneMismatch)
}

func TestUpsertMilestone(t *testing.T) {
	uc, _, p := newFixture(t)
	ctx := context.Background()

	// create clamps the percentage
	m, err := uc.UpsertMilestone(ctx, usecase.UpsertMilestoneInput{
		ProjectID:       p.ID,
		Name:            "draft",
		EndDate:         dates.Day(2025, time.July, 1),
		PercentComplete: 150,
	})
	gt.NoError(t, err).Required()
	gt.Value(t, m.PercentComplete).Equal(100)
	gt.Value(t, m.Status).Equal(types.StatusActive)

	// update with an inline dependency on the first milestone
	m2, err := uc.UpsertMilestone(ctx, usecase.UpsertMilestoneInput{
		ProjectID:       p.ID,
		Name:            "review",
		EndDate:         dates.Day(2025, time.August, 1),
		PercentComplete: -10,
		DependentToID:   &m.ID,
	})
	gt.NoError(t, err).Required()
	gt.Value(t, m2.PercentComplete).Equal(0)

	deps, err := uc.ListDependencies(ctx, p.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, len(deps)).Equal(1)
	gt.Value(t, deps[0].FromMilestoneID).Equal(m.ID)
	gt.Value(t, deps[0].ToMilestoneID).Equal(m2.ID)

	// update by ID keeps the record count
	updated, err := uc.UpsertMilestone(ctx, usecase.UpsertMilestoneInput{
		ID:              m2.ID,
		ProjectID:       p.ID,
		Name:            "review v2",
		EndDate:         dates.Day(2025, time.August, 15),
		PercentComplete: 40,
	})
	gt.NoError(t, err).Required()
	gt.Value(t, updated.ID).Equal(m2.ID)
	gt.Value(t, updated.Name).Equal("review v2")

	_, err = uc.UpsertMilestone(ctx, usecase.UpsertMilestoneInput{
		ID: 999, ProjectID: p.ID, Name: "x", EndDate: dates.Day(2025, time.July, 1),
	})
	gt.Error(t, err).Is(usecase.ErrMilestoneNotFound)
}

func TestSetMilestonePercentAndNote(t *testing.T) {
	uc, _, p := newFixture(t)
	ctx := context.Background()

	m, err := uc.UpsertMilestone(ctx, usecase.UpsertMilestoneInput{
		ProjectID: p.ID, Name: "draft", EndDate: dates.Day(2025, time.July, 1),
	})
	gt.NoError(t, err).Required()

	m, err = uc.SetMilestonePercent(ctx, m.ID, 120)
	gt.NoError(t, err).Required()
	gt.Value(t, m.PercentComplete).Equal(100)

	m, err = uc.SetMilestoneNote(ctx, m.ID, "needs figures")
	gt.NoError(t, err).Required()
	gt.Value(t, m.Note).Equal("needs figures")

	_, err = uc.SetMilestonePercent(ctx, 999, 50)
	gt.Error(t, err).Is(usecase.ErrMilestoneNotFound)
}

func TestAddDependency(t *testing.T) {
	uc, _, p := newFixture(t)
	ctx := context.Background()

	m1, err := uc.UpsertMilestone(ctx, usecase.UpsertMilestoneInput{
		ProjectID: p.ID, Name: "first", EndDate: dates.Day(2025, time.July, 1),
	})
	gt.NoError(t, err).Required()
	m2, err := uc.UpsertMilestone(ctx, usecase.UpsertMilestoneInput{
		ProjectID: p.ID, Name: "second", EndDate: dates.Day(2025, time.August, 1),
	})
	gt.NoError(t, err).Required()

	// self edges are rejected
	_, err = uc.AddDependency(ctx, p.ID, m1.ID, m1.ID)
	gt.Error(t, err).Is(usecase.ErrSelfDependency)

	dep, err := uc.AddDependency(ctx, p.ID, m1.ID, m2.ID)
	gt.NoError(t, err).Required()

	// adding the same edge again is a no-op returning the existing edge
	again, err := uc.AddDependency(ctx, p.ID, m1.ID, m2.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, again.ID).Equal(dep.ID)

	deps, err := uc.ListDependencies(ctx, p.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, len(deps)).Equal(1)

	gt.NoError(t, uc.RemoveDependency(ctx, dep.ID)).Required()
	gt.Error(t, uc.RemoveDependency(ctx, dep.ID)).Is(usecase.ErrDependencyNotFound)
}

func TestMilestoneGraph(t *testing.T) {
	uc, _, p := newFixture(t)
	ctx := context.Background()

	today := dates.Day(2025, time.June, 15)

	m1, err := uc.UpsertMilestone(ctx, usecase.UpsertMilestoneInput{
		ProjectID: p.ID, Name: "late", EndDate: dates.Day(2025, time.June, 1),
		PercentComplete: 50,
	})
	gt.NoError(t, err).Required()
	m2, err := uc.UpsertMilestone(ctx, usecase.UpsertMilestoneInput{
		ProjectID: p.ID, Name: "ok", EndDate: dates.Day(2025, time.December, 1),
		PercentComplete: 10, DependentToID: &m1.ID,
	})
	gt.NoError(t, err).Required()

	graph, err := uc.MilestoneGraph(ctx, p.ID, today)
	gt.NoError(t, err).Required()

	gt.Number(t, len(graph.Nodes)).Equal(2)
	gt.Value(t, graph.Nodes[0].Name).Equal("late")
	gt.Value(t, graph.Nodes[0].Health).Equal(types.HealthLate)
	gt.Value(t, graph.Nodes[1].Health).Equal(types.HealthOK)

	gt.Number(t, len(graph.Edges)).Equal(1)
	gt.Value(t, graph.Edges[0].From).Equal(m1.ID)
	gt.Value(t, graph.Edges[0].To).Equal(m2.ID)

	_, err = uc.MilestoneGraph(ctx, 999, today)
	gt.Error(t, err).Is(usecase.ErrProjectNotFound)
}

func TestCategoryCRUD(t *testing.T) {
	uc := usecase.New(memory.New())
	ctx := context.Background()

	_, err := uc.CreateCategory(ctx, "  ", "")
	gt.Error(t, err).Is(usecase.ErrInvalidInput)

	cat, err := uc.CreateCategory(ctx, "Research", "long term work")
	gt.NoError(t, err).Required()

	cat.Description = "updated"
	updated, err := uc.UpdateCategory(ctx, cat)
	gt.NoError(t, err).Required()
	gt.Value(t, updated.Description).Equal("updated")

	list, err := uc.ListCategories(ctx)
	gt.NoError(t, err).Required()
	gt.Number(t, len(list)).Equal(1)

	gt.NoError(t, uc.DeleteCategory(ctx, cat.ID)).Required()
	_, err = uc.GetCategory(ctx, cat.ID)
	gt.Error(t, err).Is(usecase.ErrCategoryNotFound)
}
