package analyzer

import (
	"regexp"
	"strings"

	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

// SecurityRule flags a file whose content matches Pattern.
type SecurityRule struct {
	Name        string
	Pattern     *regexp.Regexp
	Severity    entities.Severity
	Description string
}

// Match returns the 1-based line of the first match.
func (r SecurityRule) Match(content string) (int, bool) {
	loc := r.Pattern.FindStringIndex(content)
	if loc == nil {
		return 0, false
	}
	return strings.Count(content[:loc[0]], "\n") + 1, true
}

// PerformanceRule flags a file in which Pattern matches more than Threshold times.
// Each firing adds Weight to the performance score.
type PerformanceRule struct {
	Name      string
	Pattern   *regexp.Regexp
	Threshold int
	Weight    int
	Detail    string
}

// Fires reports whether the rule applies to the content.
func (r PerformanceRule) Fires(content string) bool {
	if r.Threshold <= 0 {
		return r.Pattern.MatchString(content)
	}
	return len(r.Pattern.FindAllStringIndex(content, r.Threshold+1)) > r.Threshold
}

const domLookup = `document\.(?:getElementById|getElementsBy\w+|querySelector(?:All)?)\(`

// DefaultSecurityRules returns the built-in security rule table, in reporting order.
func DefaultSecurityRules() []SecurityRule {
	return []SecurityRule{
		{
			Name:        "dynamic-evaluation",
			Pattern:     regexp.MustCompile(`\beval\s*\(|\bnew\s+Function\s*\(`),
			Severity:    entities.SeverityHigh,
			Description: "Dynamic code evaluation executes arbitrary strings as code",
		},
		{
			Name:        "hardcoded-credential",
			Pattern:     regexp.MustCompile(`(?i)(?:password|secret|key)[^\n]*?["'][^"'\n]+["']`),
			Severity:    entities.SeverityHigh,
			Description: "String literal assigned near a credential-like identifier",
		},
		{
			Name:        "unescaped-html-sink",
			Pattern:     regexp.MustCompile(`(?m)\.(?:inner|outer)HTML\s*=(?:[^=]|$)`),
			Severity:    entities.SeverityMedium,
			Description: "Direct HTML assignment without escaping can lead to XSS",
		},
	}
}

// DefaultPerformanceRules returns the built-in performance rule table, in reporting order.
func DefaultPerformanceRules() []PerformanceRule {
	return []PerformanceRule{
		{
			Name:    "chained-iteration",
			Pattern: regexp.MustCompile(`\.(?:map|filter|forEach)\([^\n]*\)\s*\.(?:map|filter|forEach|reduce)\(`),
			Weight:  10,
			Detail:  "Chained iterate-then-transform calls walk the collection more than once",
		},
		{
			Name:    "repeated-dom-lookup",
			Pattern: regexp.MustCompile(domLookup + `[^\n]*(?:\n[^\n]*)?` + domLookup),
			Weight:  10,
			Detail:  "Sequential DOM lookups could be cached in a variable",
		},
		{
			Name:    "debug-print",
			Pattern: regexp.MustCompile(`\bconsole\.(?:log|debug|trace)\(`),
			Weight:  5,
			Detail:  "Debug print statements left in the code",
		},
		{
			Name:      "excessive-spread",
			Pattern:   regexp.MustCompile(`\.\.\.[\w$\[{(]`),
			Threshold: 2,
			Weight:    10,
			Detail:    "More than two spread expressions copy collections repeatedly",
		},
	}
}

// DefaultControlKeywords returns the tokens that count towards complexity.
func DefaultControlKeywords() []string {
	return []string{"if", "while", "for", "&&", "||", "case"}
}
