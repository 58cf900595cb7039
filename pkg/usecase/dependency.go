package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/interfaces"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
)

// AddDependency records that toID starts after fromID. Adding an edge
// that already exists returns the existing edge unchanged.
func (uc *UseCases) AddDependency(ctx context.Context, projectID, fromID, toID int64) (*model.Dependency, error) {
	if fromID == toID {
		return nil, goerr.Wrap(ErrSelfDependency, "rejecting self edge", goerr.V("milestoneID", fromID))
	}

	for _, id := range []int64{fromID, toID} {
		milestone, err := uc.GetMilestone(ctx, id)
		if err != nil {
			return nil, err
		}
		if milestone.ProjectID != projectID {
			return nil, goerr.Wrap(ErrMilestoneMismatch, "milestone not in project",
				goerr.V("milestoneID", id), goerr.V("projectID", projectID))
		}
	}

	existing, err := uc.repo.Dependencies().Find(ctx, projectID, fromID, toID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	return uc.repo.Dependencies().Create(ctx, &model.Dependency{
		ProjectID:       projectID,
		FromMilestoneID: fromID,
		ToMilestoneID:   toID,
	})
}

func (uc *UseCases) ListDependencies(ctx context.Context, projectID int64) ([]*model.Dependency, error) {
	return uc.repo.Dependencies().ListByProject(ctx, projectID)
}

func (uc *UseCases) RemoveDependency(ctx context.Context, id int64) error {
	if err := uc.repo.Dependencies().Delete(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrRecordNotFound) {
			return goerr.Wrap(ErrDependencyNotFound, "no such dependency", goerr.V("id", id))
		}
		return err
	}
	return nil
}

// MilestoneGraph returns the node and edge view of one project's
// milestones, with each node classified against today.
func (uc *UseCases) MilestoneGraph(ctx context.Context, projectID int64, today time.Time) (*model.MilestoneGraph, error) {
	nodes, err := uc.ListMilestoneHealth(ctx, projectID, today)
	if err != nil {
		return nil, err
	}

	deps, err := uc.repo.Dependencies().ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	edges := make([]model.MilestoneEdge, 0, len(deps))
	for _, d := range deps {
		edges = append(edges, model.MilestoneEdge{
			ID:   d.ID,
			From: d.FromMilestoneID,
			To:   d.ToMilestoneID,
		})
	}

	return &model.MilestoneGraph{Nodes: nodes, Edges: edges}, nil
}
