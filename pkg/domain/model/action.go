package model

import "time"

// Action records one logged time entry against a project
type Action struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id"`
	MilestoneID *int64    `json:"milestone_id,omitempty"`
	Date        time.Time `json:"date"`
	Minutes     int       `json:"minutes"`
	Comment     string    `json:"comment,omitempty"`
}

// ActionDetail is an action joined with its project and milestone names
// for listing views.
type ActionDetail struct {
	Action
	ProjectName   string `json:"project_name"`
	MilestoneName string `json:"milestone_name,omitempty"`
}
