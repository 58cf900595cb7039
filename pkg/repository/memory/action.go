package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/dates"
)

type actionRepository struct {
	mu         sync.RWMutex
	actions    map[int64]*model.Action
	nextID     int64
	projects   *projectRepository
	categories *categoryRepository
	milestones *milestoneRepository
}

func newActionRepository(projects *projectRepository, categories *categoryRepository, milestones *milestoneRepository) *actionRepository {
	return &actionRepository{
		actions:    make(map[int64]*model.Action),
		nextID:     1,
		projects:   projects,
		categories: categories,
		milestones: milestones,
	}
}

func copyAction(a *model.Action) *model.Action {
	copied := *a
	if a.MilestoneID != nil {
		id := *a.MilestoneID
		copied.MilestoneID = &id
	}
	return &copied
}

func (r *actionRepository) Create(ctx context.Context, action *model.Action) (*model.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyAction(action)
	created.ID = r.nextID
	created.Date = dates.Midnight(created.Date)
	r.nextID++

	r.actions[created.ID] = created
	return copyAction(created), nil
}

func (r *actionRepository) ListByDate(ctx context.Context, day time.Time) ([]*model.ActionDetail, error) {
	r.mu.RLock()
	day = dates.Midnight(day)
	matched := make([]*model.Action, 0)
	for _, a := range r.actions {
		if a.Date.Equal(day) {
			matched = append(matched, copyAction(a))
		}
	}
	r.mu.RUnlock()

	// newest first
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID > matched[j].ID
	})

	out := make([]*model.ActionDetail, 0, len(matched))
	for _, a := range matched {
		detail := &model.ActionDetail{Action: *a}
		if project, exists := r.projects.get(a.ProjectID); exists {
			detail.ProjectName = project.Name
		}
		if a.MilestoneID != nil {
			if milestone, exists := r.milestones.get(*a.MilestoneID); exists {
				detail.MilestoneName = milestone.Name
			}
		}
		out = append(out, detail)
	}
	return out, nil
}

func (r *actionRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actions[id]; !exists {
		return goerr.Wrap(ErrNotFound, "action not found", goerr.V("id", id))
	}
	delete(r.actions, id)
	return nil
}

func (r *actionRepository) inRange(a *model.Action, start, end time.Time) bool {
	return !a.Date.Before(start) && !a.Date.After(end)
}

func (r *actionRepository) TotalMinutes(ctx context.Context, start, end time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start, end = dates.Midnight(start), dates.Midnight(end)
	total := 0
	for _, a := range r.actions {
		if r.inRange(a, start, end) {
			total += a.Minutes
		}
	}
	return total, nil
}

func (r *actionRepository) MinutesByDate(ctx context.Context, start, end time.Time) (map[time.Time]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start, end = dates.Midnight(start), dates.Midnight(end)
	sums := make(map[time.Time]int)
	for _, a := range r.actions {
		if r.inRange(a, start, end) {
			sums[a.Date] += a.Minutes
		}
	}
	return sums, nil
}

func (r *actionRepository) MinutesByProject(ctx context.Context, start, end time.Time, limit int) ([]model.ProjectMinutes, error) {
	r.mu.RLock()
	start, end = dates.Midnight(start), dates.Midnight(end)
	sums := make(map[int64]int)
	for _, a := range r.actions {
		if r.inRange(a, start, end) {
			sums[a.ProjectID] += a.Minutes
		}
	}
	r.mu.RUnlock()

	out := make([]model.ProjectMinutes, 0, len(sums))
	for projectID, minutes := range sums {
		name := ""
		if project, exists := r.projects.get(projectID); exists {
			name = project.Name
		}
		out = append(out, model.ProjectMinutes{ProjectID: projectID, Name: name, Minutes: minutes})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Minutes != out[j].Minutes {
			return out[i].Minutes > out[j].Minutes
		}
		return out[i].ProjectID < out[j].ProjectID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *actionRepository) MinutesByCategory(ctx context.Context, start, end time.Time) ([]model.CategoryMinutes, error) {
	r.mu.RLock()
	start, end = dates.Midnight(start), dates.Midnight(end)
	projectSums := make(map[int64]int)
	for _, a := range r.actions {
		if r.inRange(a, start, end) {
			projectSums[a.ProjectID] += a.Minutes
		}
	}
	r.mu.RUnlock()

	// uncategorized projects merge into one nil-ID bucket
	const uncategorized = int64(-1)
	sums := make(map[int64]int)
	for projectID, minutes := range projectSums {
		key := uncategorized
		if project, exists := r.projects.get(projectID); exists && project.CategoryID != nil {
			key = *project.CategoryID
		}
		sums[key] += minutes
	}

	out := make([]model.CategoryMinutes, 0, len(sums))
	for key, minutes := range sums {
		cm := model.CategoryMinutes{Label: model.UncategorizedLabel, Minutes: minutes}
		if key != uncategorized {
			id := key
			cm.CategoryID = &id
			cm.Label = r.categories.name(&id)
			if cm.Label == "" {
				cm.Label = model.UncategorizedLabel
			}
		}
		out = append(out, cm)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Minutes != out[j].Minutes {
			return out[i].Minutes > out[j].Minutes
		}
		// nil bucket sorts after real categories on ties
		if (out[i].CategoryID == nil) != (out[j].CategoryID == nil) {
			return out[j].CategoryID == nil
		}
		if out[i].CategoryID == nil {
			return false
		}
		return *out[i].CategoryID < *out[j].CategoryID
	})
	return out, nil
}
