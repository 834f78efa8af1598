package analyzer

import "github.com/rios0rios0/gitinsight/internal/domain/entities"

// contribution is the unclamped score of one or more files.
type contribution struct {
	impact      int
	complexity  int
	performance int
	issues      []entities.SecurityIssue
	details     []string
}

// combine adds two contributions. Numeric parts are plain sums, so the order
// in which files are combined never changes the final scores.
func (c contribution) combine(other contribution) contribution {
	return contribution{
		impact:      c.impact + other.impact,
		complexity:  c.complexity + other.complexity,
		performance: c.performance + other.performance,
		issues:      append(append([]entities.SecurityIssue{}, c.issues...), other.issues...),
		details:     append(append([]string{}, c.details...), other.details...),
	}
}

// analysis clamps the accumulated scores into the final result.
func (c contribution) analysis() entities.Analysis {
	return entities.Analysis{
		ImpactScore:     entities.ClampScore(c.impact),
		ComplexityScore: entities.ClampScore(c.complexity),
		SecurityIssues:  c.issues,
		PerformanceImpact: entities.PerformanceImpact{
			Score:   entities.ClampScore(c.performance),
			Details: c.details,
		},
	}
}
