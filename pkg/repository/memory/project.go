package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
)

type projectRepository struct {
	mu         sync.RWMutex
	projects   map[int64]*model.Project
	nextID     int64
	categories *categoryRepository
}

func newProjectRepository(categories *categoryRepository) *projectRepository {
	return &projectRepository{
		projects:   make(map[int64]*model.Project),
		nextID:     1,
		categories: categories,
	}
}

func copyProject(p *model.Project) *model.Project {
	copied := *p
	if p.CategoryID != nil {
		id := *p.CategoryID
		copied.CategoryID = &id
	}
	return &copied
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) (*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyProject(project)
	created.ID = r.nextID
	r.nextID++

	r.projects[created.ID] = created

	out := copyProject(created)
	out.CategoryName = r.categories.name(out.CategoryID)
	return out, nil
}

func (r *projectRepository) Get(ctx context.Context, id int64) (*model.Project, error) {
	r.mu.RLock()
	project, exists := r.projects[id]
	if !exists {
		r.mu.RUnlock()
		return nil, goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", id))
	}
	out := copyProject(project)
	r.mu.RUnlock()

	out.CategoryName = r.categories.name(out.CategoryID)
	return out, nil
}

func (r *projectRepository) List(ctx context.Context, categoryID *int64) ([]*model.Project, error) {
	r.mu.RLock()
	projects := make([]*model.Project, 0, len(r.projects))
	for _, p := range r.projects {
		if categoryID != nil && (p.CategoryID == nil || *p.CategoryID != *categoryID) {
			continue
		}
		projects = append(projects, copyProject(p))
	}
	r.mu.RUnlock()

	for _, p := range projects {
		p.CategoryName = r.categories.name(p.CategoryID)
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})
	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, project *model.Project) (*model.Project, error) {
	r.mu.Lock()
	if _, exists := r.projects[project.ID]; !exists {
		r.mu.Unlock()
		return nil, goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", project.ID))
	}

	updated := copyProject(project)
	updated.CategoryName = ""
	r.projects[updated.ID] = updated
	out := copyProject(updated)
	r.mu.Unlock()

	out.CategoryName = r.categories.name(out.CategoryID)
	return out, nil
}

func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.projects[id]; !exists {
		return goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", id))
	}
	delete(r.projects, id)
	return nil
}

// get returns the stored project without a copy, for internal joins
func (r *projectRepository) get(id int64) (*model.Project, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.projects[id]
	return p, exists
}
