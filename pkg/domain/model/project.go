package model

import (
	"time"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/types"
)

// Project represents a unit of work that actions are logged against
type Project struct {
	ID          int64        `json:"id"`
	CategoryID  *int64       `json:"category_id,omitempty"`
	Name        string       `json:"name"`
	Objective   string       `json:"objective,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       string       `json:"color,omitempty"`
	EndDate     time.Time    `json:"end_date"`
	Status      types.Status `json:"status"`

	// CategoryName is populated by list queries that join the category
	CategoryName string `json:"category_name,omitempty"`
}
