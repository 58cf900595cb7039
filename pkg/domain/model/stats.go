package model

import "time"

// DayBucket is one (date, minutes) aggregation unit of a dense,
// zero-filled daily series.
type DayBucket struct {
	Date    time.Time `json:"date"`
	Minutes int       `json:"minutes"`
}

// ProjectMinutes is the per-project total for a date range
type ProjectMinutes struct {
	ProjectID int64  `json:"project_id"`
	Name      string `json:"name"`
	Minutes   int    `json:"minutes"`
}

// CategoryMinutes is the per-category total for a date range.
// A nil CategoryID is the synthetic bucket for uncategorized projects.
type CategoryMinutes struct {
	CategoryID *int64 `json:"category_id"`
	Label      string `json:"label"`
	Minutes    int    `json:"minutes"`
}

// MilestoneHealthCount holds per-project counts of overdue and at-risk
// milestones relative to a reference date.
type MilestoneHealthCount struct {
	Overdue int `json:"overdue"`
	Risk    int `json:"risk"`
}

// ProjectProgress summarizes milestone completion for one project
type ProjectProgress struct {
	AvgPercent      float64 `json:"avg_percent"`
	TotalMilestones int     `json:"total_milestones"`
	DoneMilestones  int     `json:"done_milestones"`
}

// OverdueMilestone is a not-done milestone whose end date is before the
// reference date, joined with its project and category.
type OverdueMilestone struct {
	Category    string    `json:"category"`
	ProjectID   int64     `json:"project_id"`
	Project     string    `json:"project"`
	MilestoneID int64     `json:"milestone_id"`
	Milestone   string    `json:"milestone"`
	EndDate     time.Time `json:"end_date"`
	DaysLate    int       `json:"days_late"`
}

// UpcomingMilestone is a not-done milestone due inside a date window
type UpcomingMilestone struct {
	Category        string    `json:"category"`
	ProjectID       int64     `json:"project_id"`
	Project         string    `json:"project"`
	MilestoneID     int64     `json:"milestone_id"`
	Milestone       string    `json:"milestone"`
	EndDate         time.Time `json:"end_date"`
	PercentComplete int       `json:"percent_complete"`
}

// ProjectReportRow is a project total enriched with milestone health
// counts for report tables.
type ProjectReportRow struct {
	ProjectID int64  `json:"project_id"`
	Name      string `json:"name"`
	Minutes   int    `json:"minutes"`
	Overdue   int    `json:"overdue"`
	Risk      int    `json:"risk"`
}
