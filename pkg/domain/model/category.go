package model

// Category is an optional grouping of projects
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UncategorizedLabel is the synthetic bucket label for projects
// without a category.
const UncategorizedLabel = "Uncategorized"
