package model

// CategoryRule maps substring patterns to a category. Patterns are matched
// case-insensitively against the combined booking text and payment purpose.
// Rules are evaluated in descending priority order; within a rule, patterns
// are tried in listed order. The first match wins.
type CategoryRule struct {
	Category Category `json:"category"`
	Patterns []string `json:"patterns"`
	Priority int      `json:"priority"`
}
