package model

import (
	"time"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/types"
)

// MilestoneNode is one milestone of a project dependency graph view
type MilestoneNode struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name"`
	EndDate         time.Time    `json:"end_date"`
	PercentComplete int          `json:"percent_complete"`
	Status          types.Status `json:"status"`
	Note            string       `json:"note,omitempty"`
	Health          types.Health `json:"health"`
}

// MilestoneEdge is one directed dependency edge of the graph view
type MilestoneEdge struct {
	ID   int64 `json:"id"`
	From int64 `json:"from"`
	To   int64 `json:"to"`
}

// MilestoneGraph is the node/edge view of one project's milestones and
// dependencies.
type MilestoneGraph struct {
	Nodes []MilestoneNode `json:"nodes"`
	Edges []MilestoneEdge `json:"edges"`
}
