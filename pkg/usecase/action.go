package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/interfaces"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/dates"
)

// LogActionInput carries one time entry in wire format: the date as
// DD/MM/YYYY and the duration as HH:MM.
type LogActionInput struct {
	ProjectID   int64
	MilestoneID *int64
	Date        string
	Duration    string
	Comment     string
}

func (uc *UseCases) LogAction(ctx context.Context, input LogActionInput) (*model.Action, error) {
	day, err := dates.ParseDate(input.Date)
	if err != nil {
		return nil, err
	}
	minutes, err := dates.ParseDuration(input.Duration)
	if err != nil {
		return nil, err
	}

	if _, err := uc.GetProject(ctx, input.ProjectID); err != nil {
		return nil, err
	}
	if input.MilestoneID != nil {
		milestone, err := uc.GetMilestone(ctx, *input.MilestoneID)
		if err != nil {
			return nil, err
		}
		if milestone.ProjectID != input.ProjectID {
			return nil, goerr.Wrap(ErrMilestoneMismatch, "milestone not in project",
				goerr.V("milestoneID", *input.MilestoneID),
				goerr.V("projectID", input.ProjectID))
		}
	}

	return uc.repo.Actions().Create(ctx, &model.Action{
		ProjectID:   input.ProjectID,
		MilestoneID: input.MilestoneID,
		Date:        day,
		Minutes:     minutes,
		Comment:     input.Comment,
	})
}

// ListActionsByDate returns the actions logged on one calendar day with
// project and milestone names, newest first.
func (uc *UseCases) ListActionsByDate(ctx context.Context, day time.Time) ([]*model.ActionDetail, error) {
	return uc.repo.Actions().ListByDate(ctx, dates.Midnight(day))
}

func (uc *UseCases) DeleteAction(ctx context.Context, id int64) error {
	if err := uc.repo.Actions().Delete(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrRecordNotFound) {
			return goerr.Wrap(ErrActionNotFound, "no such action", goerr.V("id", id))
		}
		return err
	}
	return nil
}
