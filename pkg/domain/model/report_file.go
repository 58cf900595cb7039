package model

import (
	"time"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/types"
)

// ReportFile is one entry of the append-only generated report registry
type ReportFile struct {
	ID          int64            `json:"id"`
	PeriodType  types.PeriodKind `json:"period_type"`
	PeriodStart time.Time        `json:"period_start"`
	PeriodEnd   time.Time        `json:"period_end"`
	FilePath    string           `json:"file_path"`
	CreatedAt   time.Time        `json:"created_at"`
}
