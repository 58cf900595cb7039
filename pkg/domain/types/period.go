package types

import "fmt"

// PeriodKind represents the reporting granularity
type PeriodKind string

const (
	PeriodWeekly  PeriodKind = "weekly"
	PeriodMonthly PeriodKind = "monthly"
	PeriodYearly  PeriodKind = "yearly"
)

// AllPeriodKinds returns all valid period kinds
func AllPeriodKinds() []PeriodKind {
	return []PeriodKind{PeriodWeekly, PeriodMonthly, PeriodYearly}
}

// IsValid checks if the period kind is valid
func (p PeriodKind) IsValid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	default:
		return false
	}
}

// String returns the string representation of the period kind
func (p PeriodKind) String() string {
	return string(p)
}

// ParsePeriodKind parses a string into a PeriodKind
func ParsePeriodKind(s string) (PeriodKind, error) {
	kind := PeriodKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid period kind: %s", s)
	}
	return kind, nil
}
