package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
)

type categoryRepository struct {
	mu         sync.RWMutex
	categories map[int64]*model.Category
	nextID     int64
}

func newCategoryRepository() *categoryRepository {
	return &categoryRepository{
		categories: make(map[int64]*model.Category),
		nextID:     1,
	}
}

func copyCategory(c *model.Category) *model.Category {
	copied := *c
	return &copied
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyCategory(category)
	created.ID = r.nextID
	r.nextID++

	r.categories[created.ID] = created
	return copyCategory(created), nil
}

func (r *categoryRepository) Get(ctx context.Context, id int64) (*model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, exists := r.categories[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "category not found", goerr.V("id", id))
	}
	return copyCategory(category), nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]*model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		categories = append(categories, copyCategory(c))
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.categories[category.ID]; !exists {
		return nil, goerr.Wrap(ErrNotFound, "category not found", goerr.V("id", category.ID))
	}

	updated := copyCategory(category)
	r.categories[updated.ID] = updated
	return copyCategory(updated), nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.categories[id]; !exists {
		return goerr.Wrap(ErrNotFound, "category not found", goerr.V("id", id))
	}
	delete(r.categories, id)
	return nil
}

// name returns the category name or the empty string, for joins
func (r *categoryRepository) name(id *int64) string {
	if id == nil {
		return ""
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, exists := r.categories[*id]; exists {
		return c.Name
	}
	return ""
}
