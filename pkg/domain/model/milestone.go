package model

import (
	"time"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/types"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/dates"
)

// Single-milestone health thresholds. These are independent from the
// per-project risk counting threshold used by report health counts.
const (
	healthRiskWindowDays = 7
	healthRiskPercent    = 80
)

// Milestone is a dated checkpoint within a project
type Milestone struct {
	ID              int64        `json:"id"`
	ProjectID       int64        `json:"project_id"`
	Name            string       `json:"name"`
	Note            string       `json:"note,omitempty"`
	EndDate         time.Time    `json:"end_date"`
	PercentComplete int          `json:"percent_complete"`
	Status          types.Status `json:"status"`
}

// Health classifies the milestone relative to ref: late when ref is past
// the end date and completion is under 100%, risk when the end date is
// within 7 days of ref and completion is under 80%, otherwise ok.
func (m *Milestone) Health(ref time.Time) types.Health {
	if ref.After(m.EndDate) && m.PercentComplete < 100 {
		return types.HealthLate
	}
	if dates.DaysBetween(ref, m.EndDate) <= healthRiskWindowDays && m.PercentComplete < healthRiskPercent {
		return types.HealthRisk
	}
	return types.HealthOK
}

// ClampPercent bounds a percent-complete value to [0, 100].
func ClampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
