package entities

import "fmt"

// StyleType selects how a commit message is rendered.
type StyleType string

const (
	StyleConventional StyleType = "conventional"
	StyleGitmoji      StyleType = "gitmoji"
	StyleDetailed     StyleType = "detailed"
	StyleSimple       StyleType = "simple"
)

// DefaultMaxLength is the message length budget used when none is configured.
const DefaultMaxLength = 72

// CommitStyle configures the message composer.
// A MaxLength of zero or less disables truncation.
type CommitStyle struct {
	Type          StyleType `yaml:"type"`
	IncludeScope  bool      `yaml:"include_scope"`
	IncludeFooter bool      `yaml:"include_footer"`
	MaxLength     int       `yaml:"max_length"`
}

// DefaultCommitStyle returns the conventional style with scope and a 72 char budget.
func DefaultCommitStyle() CommitStyle {
	return CommitStyle{
		Type:         StyleConventional,
		IncludeScope: true,
		MaxLength:    DefaultMaxLength,
	}
}

// ParseStyleType validates a style name.
func ParseStyleType(raw string) (StyleType, error) {
	switch StyleType(raw) {
	case StyleConventional, StyleGitmoji, StyleDetailed, StyleSimple:
		return StyleType(raw), nil
	default:
		return "", fmt.Errorf(
			"unknown commit style %q (expected conventional, gitmoji, detailed or simple)", raw,
		)
	}
}
