package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/interfaces"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
)

func (uc *UseCases) CreateCategory(ctx context.Context, name, description string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "category name is required")
	}

	return uc.repo.Categories().Create(ctx, &model.Category{
		Name:        name,
		Description: description,
	})
}

func (uc *UseCases) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	category, err := uc.repo.Categories().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrRecordNotFound) {
			return nil, goerr.Wrap(ErrCategoryNotFound, "no such category", goerr.V("id", id))
		}
		return nil, err
	}
	return category, nil
}

func (uc *UseCases) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return uc.repo.Categories().List(ctx)
}

func (uc *UseCases) UpdateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if strings.TrimSpace(category.Name) == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "category name is required")
	}

	updated, err := uc.repo.Categories().Update(ctx, category)
	if err != nil {
		if errors.Is(err, interfaces.ErrRecordNotFound) {
			return nil, goerr.Wrap(ErrCategoryNotFound, "no such category", goerr.V("id", category.ID))
		}
		return nil, err
	}
	return updated, nil
}

func (uc *UseCases) DeleteCategory(ctx context.Context, id int64) error {
	if err := uc.repo.Categories().Delete(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrRecordNotFound) {
			return goerr.Wrap(ErrCategoryNotFound, "no such category", goerr.V("id", id))
		}
		return err
	}
	return nil
}
