package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/interfaces"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = interfaces.ErrRecordNotFound

// Memory is an in-memory repository for development and tests
type Memory struct {
	categories   *categoryRepository
	projects     *projectRepository
	milestones   *milestoneRepository
	dependencies *dependencyRepository
	actions      *actionRepository
	reports      *reportFileRepository
	tokens       *tokenStore
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	categories := newCategoryRepository()
	projects := newProjectRepository(categories)
	milestones := newMilestoneRepository(projects, categories)
	dependencies := newDependencyRepository()
	actions := newActionRepository(projects, categories, milestones)

	return &Memory{
		categories:   categories,
		projects:     projects,
		milestones:   milestones,
		dependencies: dependencies,
		actions:      actions,
		reports:      newReportFileRepository(),
		tokens:       newTokenStore(),
	}
}

func (m *Memory) Categories() interfaces.CategoryRepository {
	return m.categories
}

func (m *Memory) Projects() interfaces.ProjectRepository {
	return m.projects
}

func (m *Memory) Milestones() interfaces.MilestoneRepository {
	return m.milestones
}

func (m *Memory) Dependencies() interfaces.DependencyRepository {
	return m.dependencies
}

func (m *Memory) Actions() interfaces.ActionRepository {
	return m.actions
}

func (m *Memory) Reports() interfaces.ReportFileRepository {
	return m.reports
}

func (m *Memory) Close() error {
	return nil
}

// tokenStore holds login session tokens
type tokenStore struct {
	mu     sync.RWMutex
	tokens map[string]*model.SessionToken
}

func newTokenStore() *tokenStore {
	return &tokenStore{tokens: make(map[string]*model.SessionToken)}
}

func copyToken(t *model.SessionToken) *model.SessionToken {
	copied := *t
	return &copied
}

func (m *Memory) PutToken(ctx context.Context, token *model.SessionToken) error {
	m.tokens.mu.Lock()
	defer m.tokens.mu.Unlock()

	stored := copyToken(token)
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	m.tokens.tokens[stored.ID] = stored
	return nil
}

func (m *Memory) GetToken(ctx context.Context, tokenID string) (*model.SessionToken, error) {
	m.tokens.mu.RLock()
	defer m.tokens.mu.RUnlock()

	token, exists := m.tokens.tokens[tokenID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "token not found")
	}
	return copyToken(token), nil
}

func (m *Memory) DeleteToken(ctx context.Context, tokenID string) error {
	m.tokens.mu.Lock()
	defer m.tokens.mu.Unlock()

	delete(m.tokens.tokens, tokenID)
	return nil
}
