package entities

// Severity ranks a security finding.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// MaxScore is the upper bound of every analysis score.
const MaxScore = 100

// SourceFile is a file handed to the analyzer. Err is set when the content
// could not be read; such files contribute nothing to the analysis.
type SourceFile struct {
	Path    string
	Content string
	Err     error
}

// SecurityIssue is a single security finding.
type SecurityIssue struct {
	Severity    Severity `yaml:"severity"`
	Description string   `yaml:"description"`
	Location    string   `yaml:"location"`
}

// PerformanceImpact summarises the performance findings.
type PerformanceImpact struct {
	Score   int      `yaml:"score"`
	Details []string `yaml:"details"`
}

// Analysis is the combined impact, complexity, security and performance
// assessment of a set of files. Scores are within [0, MaxScore].
type Analysis struct {
	ImpactScore       int               `yaml:"impact_score"`
	ComplexityScore   int               `yaml:"complexity_score"`
	SecurityIssues    []SecurityIssue   `yaml:"security_issues"`
	PerformanceImpact PerformanceImpact `yaml:"performance_impact"`
}

// ImpactReport is the analysis of a change set together with the changes.
type ImpactReport struct {
	Changes  []FileChange `yaml:"changes"`
	Analysis Analysis     `yaml:"analysis"`
}

// ClampScore bounds a score into [0, MaxScore].
func ClampScore(score int) int {
	return min(max(score, 0), MaxScore)
}
