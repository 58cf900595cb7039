package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/types"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/dates"
)

// riskPercentThreshold is the completion cutoff for the per-project risk
// count. Distinct from the single-milestone health classification rule.
const riskPercentThreshold = 60

type milestoneRepository struct {
	mu         sync.RWMutex
	milestones map[int64]*model.Milestone
	nextID     int64
	projects   *projectRepository
	categories *categoryRepository
}

func newMilestoneRepository(projects *projectRepository, categories *categoryRepository) *milestoneRepository {
	return &milestoneRepository{
		milestones: make(map[int64]*model.Milestone),
		nextID:     1,
		projects:   projects,
		categories: categories,
	}
}

func copyMilestone(m *model.Milestone) *model.Milestone {
	copied := *m
	return &copied
}

func (r *milestoneRepository) Create(ctx context.Context, milestone *model.Milestone) (*model.Milestone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyMilestone(milestone)
	created.ID = r.nextID
	r.nextID++

	r.milestones[created.ID] = created
	return copyMilestone(created), nil
}

func (r *milestoneRepository) Get(ctx context.Context, id int64) (*model.Milestone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	milestone, exists := r.milestones[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "milestone not found", goerr.V("id", id))
	}
	return copyMilestone(milestone), nil
}

func (r *milestoneRepository) ListByProject(ctx context.Context, projectID int64) ([]*model.Milestone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	milestones := make([]*model.Milestone, 0)
	for _, m := range r.milestones {
		if m.ProjectID == projectID {
			milestones = append(milestones, copyMilestone(m))
		}
	}

	sort.Slice(milestones, func(i, j int) bool {
		if !milestones[i].EndDate.Equal(milestones[j].EndDate) {
			return milestones[i].EndDate.Before(milestones[j].EndDate)
		}
		return milestones[i].Name < milestones[j].Name
	})
	return milestones, nil
}

func (r *milestoneRepository) Update(ctx context.Context, milestone *model.Milestone) (*model.Milestone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.milestones[milestone.ID]; !exists {
		return nil, goerr.Wrap(ErrNotFound, "milestone not found", goerr.V("id", milestone.ID))
	}

	updated := copyMilestone(milestone)
	r.milestones[updated.ID] = updated
	return copyMilestone(updated), nil
}

func (r *milestoneRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.milestones[id]; !exists {
		return goerr.Wrap(ErrNotFound, "milestone not found", goerr.V("id", id))
	}
	delete(r.milestones, id)
	return nil
}

func (r *milestoneRepository) HealthCounts(ctx context.Context, ref time.Time, lookaheadDays int) (map[int64]model.MilestoneHealthCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	horizon := dates.AddDays(dates.Midnight(ref), lookaheadDays)
	ref = dates.Midnight(ref)

	counts := make(map[int64]model.MilestoneHealthCount)
	for _, m := range r.milestones {
		// every project with milestones appears, even with zero counts
		if _, exists := counts[m.ProjectID]; !exists {
			counts[m.ProjectID] = model.MilestoneHealthCount{}
		}
		if m.Status == types.StatusDone {
			continue
		}

		c := counts[m.ProjectID]
		if m.EndDate.Before(ref) {
			c.Overdue++
		} else if !m.EndDate.After(horizon) && m.PercentComplete < riskPercentThreshold {
			c.Risk++
		}
		counts[m.ProjectID] = c
	}
	return counts, nil
}

func (r *milestoneRepository) Overdue(ctx context.Context, ref time.Time, limit int) ([]model.OverdueMilestone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ref = dates.Midnight(ref)

	out := make([]model.OverdueMilestone, 0)
	for _, m := range r.milestones {
		if m.Status == types.StatusDone || !m.EndDate.Before(ref) {
			continue
		}

		project, exists := r.projects.get(m.ProjectID)
		if !exists {
			continue
		}

		category := r.categories.name(project.CategoryID)
		if category == "" {
			category = model.UncategorizedLabel
		}

		out = append(out, model.OverdueMilestone{
			Category:    category,
			ProjectID:   project.ID,
			Project:     project.Name,
			MilestoneID: m.ID,
			Milestone:   m.Name,
			EndDate:     m.EndDate,
			DaysLate:    dates.DaysBetween(m.EndDate, ref),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].EndDate.Equal(out[j].EndDate) {
			return out[i].EndDate.Before(out[j].EndDate)
		}
		return out[i].MilestoneID < out[j].MilestoneID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *milestoneRepository) Upcoming(ctx context.Context, start, end time.Time, limit int) ([]model.UpcomingMilestone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start = dates.Midnight(start)
	end = dates.Midnight(end)

	out := make([]model.UpcomingMilestone, 0)
	for _, m := range r.milestones {
		if m.Status == types.StatusDone || m.EndDate.Before(start) || m.EndDate.After(end) {
			continue
		}

		project, exists := r.projects.get(m.ProjectID)
		if !exists {
			continue
		}

		category := r.categories.name(project.CategoryID)
		if category == "" {
			category = model.UncategorizedLabel
		}

		out = append(out, model.UpcomingMilestone{
			Category:        category,
			ProjectID:       project.ID,
			Project:         project.Name,
			MilestoneID:     m.ID,
			Milestone:       m.Name,
			EndDate:         m.EndDate,
			PercentComplete: m.PercentComplete,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].EndDate.Equal(out[j].EndDate) {
			return out[i].EndDate.Before(out[j].EndDate)
		}
		return out[i].MilestoneID < out[j].MilestoneID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// get returns the stored milestone without a copy, for internal joins
func (r *milestoneRepository) get(id int64) (*model.Milestone, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, exists := r.milestones[id]
	return m, exists
}

func (r *milestoneRepository) ProgressOverview(ctx context.Context) (map[int64]model.ProjectProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sums := make(map[int64]int)
	overview := make(map[int64]model.ProjectProgress)
	for _, m := range r.milestones {
		p := overview[m.ProjectID]
		p.TotalMilestones++
		if m.Status == types.StatusDone {
			p.DoneMilestones++
		}
		sums[m.ProjectID] += m.PercentComplete
		overview[m.ProjectID] = p
	}

	for projectID, p := range overview {
		if p.TotalMilestones > 0 {
			p.AvgPercent = float64(sums[projectID]) / float64(p.TotalMilestones)
			overview[projectID] = p
		}
	}
	return overview, nil
}
