package types

import "fmt"

// Status represents the lifecycle state of a project or milestone
type Status string

const (
	StatusActive   Status = "active"
	StatusOnHold   Status = "on_hold"
	StatusArchived Status = "archived"
	StatusDone     Status = "done"
)

// AllStatuses returns all valid statuses
func AllStatuses() []Status {
	return []Status{
		StatusActive,
		StatusOnHold,
		StatusArchived,
		StatusDone,
	}
}

// IsValid checks if the status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusOnHold, StatusArchived, StatusDone:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// ParseStatus parses a string into a Status
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return status, nil
}
