package types

// Health classifies a milestone relative to a reference date
type Health string

const (
	HealthOK   Health = "ok"
	HealthRisk Health = "risk"
	HealthLate Health = "late"
)

// String returns the string representation of the health classification
func (h Health) String() string {
	return string(h)
}
