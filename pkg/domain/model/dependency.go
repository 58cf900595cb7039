package model

// Dependency is a directed edge between two milestones of one project.
// The To milestone depends on (starts after) the From milestone.
type Dependency struct {
	ID              int64 `json:"id"`
	ProjectID       int64 `json:"project_id"`
	FromMilestoneID int64 `json:"from_milestone_id"`
	ToMilestoneID   int64 `json:"to_milestone_id"`
}
