package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
)

type dependencyRepository struct {
	mu           sync.RWMutex
	dependencies map[int64]*model.Dependency
	nextID       int64
}

func newDependencyRepository() *dependencyRepository {
	return &dependencyRepository{
		dependencies: make(map[int64]*model.Dependency),
		nextID:       1,
	}
}

func copyDependency(d *model.Dependency) *model.Dependency {
	copied := *d
	return &copied
}

func (r *dependencyRepository) Create(ctx context.Context, dep *model.Dependency) (*model.Dependency, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyDependency(dep)
	created.ID = r.nextID
	r.nextID++

	r.dependencies[created.ID] = created
	return copyDependency(created), nil
}

func (r *dependencyRepository) Find(ctx context.Context, projectID, fromID, toID int64) (*model.Dependency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.dependencies {
		if d.ProjectID == projectID && d.FromMilestoneID == fromID && d.ToMilestoneID == toID {
			return copyDependency(d), nil
		}
	}
	return nil, nil
}

func (r *dependencyRepository) ListByProject(ctx context.Context, projectID int64) ([]*model.Dependency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Dependency, 0)
	for _, d := range r.dependencies {
		if d.ProjectID == projectID {
			out = append(out, copyDependency(d))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *dependencyRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.dependencies[id]; !exists {
		return goerr.Wrap(ErrNotFound, "dependency not found", goerr.V("id", id))
	}
	delete(r.dependencies, id)
	return nil
}
