package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/interfaces"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/types"
)

func validateProject(project *model.Project) error {
	if strings.TrimSpace(project.Name) == "" {
		return goerr.Wrap(ErrInvalidInput, "project name is required")
	}
	if project.EndDate.IsZero() {
		return goerr.Wrap(ErrInvalidInput, "project end date is required")
	}
	if project.Status == "" {
		project.Status = types.StatusActive
	}
	if !project.Status.IsValid() {
		return goerr.Wrap(ErrInvalidInput, "invalid project status", goerr.V("status", project.Status))
	}
	return nil
}

func (uc *UseCases) CreateProject(ctx context.Context, project *model.Project) (*model.Project, error) {
	if err := validateProject(project); err != nil {
		return nil, err
	}
	if project.CategoryID != nil {
		if _, err := uc.GetCategory(ctx, *project.CategoryID); err != nil {
			return nil, err
		}
	}

	return uc.repo.Projects().Create(ctx, project)
}

func (uc *UseCases) GetProject(ctx context.Context, id int64) (*model.Project, error) {
	project, err := uc.repo.Projects().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrRecordNotFound) {
			return nil, goerr.Wrap(ErrProjectNotFound, "no such project", goerr.V("id", id))
		}
		return nil, err
	}
	return project, nil
}

// ListProjects returns projects ordered by name. A nil categoryID
// returns all projects.
func (uc *UseCases) ListProjects(ctx context.Context, categoryID *int64) ([]*model.Project, error) {
	return uc.repo.Projects().List(ctx, categoryID)
}

func (uc *UseCases) UpdateProject(ctx context.Context, project *model.Project) (*model.Project, error) {
	if err := validateProject(project); err != nil {
		return nil, err
	}
	if project.CategoryID != nil {
		if _, err := uc.GetCategory(ctx, *project.CategoryID); err != nil {
			return nil, err
		}
	}

	updated, err := uc.repo.Projects().Update(ctx, project)
	if err != nil {
		if errors.Is(err, interfaces.ErrRecordNotFound) {
			return nil, goerr.Wrap(ErrProjectNotFound, "no such project", goerr.V("id", project.ID))
		}
		return nil, err
	}
	return updated, nil
}

func (uc *UseCases) DeleteProject(ctx context.Context, id int64) error {
	if err := uc.repo.Projects().Delete(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrRecordNotFound) {
			return goerr.Wrap(ErrProjectNotFound, "no such project", goerr.V("id", id))
		}
		return err
	}
	return nil
}
