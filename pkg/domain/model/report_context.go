package model

import (
	"time"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/types"
)

// ReportContext is the complete presentation context for one period
// report, consumed by the rendering collaborator. Every field a template
// needs is present and pre-formatted where display formatting applies.
type ReportContext struct {
	AppName   string           `json:"app_name"`
	Kind      types.PeriodKind `json:"kind"`
	Generated time.Time        `json:"generated"`

	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	SeriesTitle  string   `json:"series_title"`
	SeriesLabels []string `json:"series_labels"`
	SeriesValues []int    `json:"series_values"`
	SeriesMax    int      `json:"series_max"`

	BusiestLabel string `json:"busiest_label"`
	BusiestValue string `json:"busiest_value"`

	Categories []CategoryMinutes  `json:"categories"`
	Projects   []ProjectReportRow `json:"projects"`

	TotalMinutes int    `json:"total_minutes"`
	TotalHHMM    string `json:"total_hhmm"`

	ActiveDays    int    `json:"active_days"`
	AvgActiveHHMM string `json:"avg_active_hhmm"`
	LongestStreak int    `json:"longest_streak"`

	Top1Share string `json:"top1_share"`
	Top3Share string `json:"top3_share"`

	Upcoming []UpcomingMilestone `json:"upcoming"`
	Overdue  []OverdueMilestone  `json:"overdue"`

	Suggestions []string `json:"suggestions"`

	TemplateName      string `json:"template_name"`
	SuggestedFilename string `json:"suggested_filename"`
}
