package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/interfaces"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/types"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/dates"
)

// UpsertMilestoneInput creates a milestone when ID is zero and updates
// it otherwise. DependentToID optionally records that the milestone
// depends on another milestone of the same project.
type UpsertMilestoneInput struct {
	ID              int64
	ProjectID       int64
	Name            string
	EndDate         time.Time
	PercentComplete int
	Status          types.Status
	Note            string
	DependentToID   *int64
}

func (uc *UseCases) UpsertMilestone(ctx context.Context, input UpsertMilestoneInput) (*model.Milestone, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "milestone name is required")
	}
	if input.EndDate.IsZero() {
		return nil, goerr.Wrap(ErrInvalidInput, "milestone end date is required")
	}
	if input.Status == "" {
		input.Status = types.StatusActive
	}
	if !input.Status.IsValid() {
		return nil, goerr.Wrap(ErrInvalidInput, "invalid milestone status", goerr.V("status", input.Status))
	}
	if _, err := uc.GetProject(ctx, input.ProjectID); err != nil {
		return nil, err
	}

	milestone := &model.Milestone{
		ID:              input.ID,
		ProjectID:       input.ProjectID,
		Name:            input.Name,
		Note:            input.Note,
		EndDate:         dates.Midnight(input.EndDate),
		PercentComplete: model.ClampPercent(input.PercentComplete),
		Status:          input.Status,
	}

	var err error
	if input.ID == 0 {
		milestone, err = uc.repo.Milestones().Create(ctx, milestone)
	} else {
		milestone, err = uc.repo.Milestones().Update(ctx, milestone)
		if errors.Is(err, interfaces.ErrRecordNotFound) {
			return nil, goerr.Wrap(ErrMilestoneNotFound, "no such milestone", goerr.V("id", input.ID))
		}
	}
	if err != nil {
		return nil, err
	}

	if input.DependentToID != nil {
		if _, err := uc.AddDependency(ctx, input.ProjectID, *input.DependentToID, milestone.ID); err != nil {
			return nil, err
		}
	}
	return milestone, nil
}

func (uc *UseCases) GetMilestone(ctx context.Context, id int64) (*model.Milestone, error) {
	milestone, err := uc.repo.Milestones().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrRecordNotFound) {
			return nil, goerr.Wrap(ErrMilestoneNotFound, "no such milestone", goerr.V("id", id))
		}
		return nil, err
	}
	return milestone, nil
}

// SetMilestonePercent updates only the completion percentage, clamped
// to [0, 100].
func (uc *UseCases) SetMilestonePercent(ctx context.Context, id int64, value int) (*model.Milestone, error) {
	milestone, err := uc.GetMilestone(ctx, id)
	if err != nil {
		return nil, err
	}

	milestone.PercentComplete = model.ClampPercent(value)
	return uc.repo.Milestones().Update(ctx, milestone)
}

// SetMilestoneNote updates only the note
func (uc *UseCases) SetMilestoneNote(ctx context.Context, id int64, note string) (*model.Milestone, error) {
	milestone, err := uc.GetMilestone(ctx, id)
	if err != nil {
		return nil, err
	}

	milestone.Note = note
	return uc.repo.Milestones().Update(ctx, milestone)
}

func (uc *UseCases) DeleteMilestone(ctx context.Context, id int64) error {
	if err := uc.repo.Milestones().Delete(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrRecordNotFound) {
			return goerr.Wrap(ErrMilestoneNotFound, "no such milestone", goerr.V("id", id))
		}
		return err
	}
	return nil
}

// ListMilestoneHealth returns a project's milestones ordered by end date
// then name, each classified against today.
func (uc *UseCases) ListMilestoneHealth(ctx context.Context, projectID int64, today time.Time) ([]model.MilestoneNode, error) {
	if _, err := uc.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	milestones, err := uc.repo.Milestones().ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	today = dates.Midnight(today)
	out := make([]model.MilestoneNode, 0, len(milestones))
	for _, m := range milestones {
		out = append(out, model.MilestoneNode{
			ID:              m.ID,
			Name:            m.Name,
			EndDate:         m.EndDate,
			PercentComplete: m.PercentComplete,
			Status:          m.Status,
			Note:            m.Note,
			Health:          m.Health(today),
		})
	}
	return out, nil
}
