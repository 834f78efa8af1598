package analyzer

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

// Scoring weights are expressed in tenths so that every score is computed
// with integer arithmetic and floors exactly.
const (
	weightScale = 10

	impactLineWeight  = 3  // 0.3 per line
	impactTokenWeight = 7  // 0.7 per structural segment
	impactDivisor     = 10 // the weighted sum is divided by 10

	complexityKeywordWeight = 6 // 0.6 per control keyword
	complexityNestingWeight = 4 // 0.4 per brace on the most nested line
	complexityMultiplier    = 5
)

// DefaultStructuralSeparators are the characters whose split segments measure impact.
const DefaultStructuralSeparators = "{}();"

// Config holds the heuristic tables of an Analyzer. It is read-only once
// handed to New.
type Config struct {
	ControlKeywords      []string
	StructuralSeparators string
	SecurityRules        []SecurityRule
	PerformanceRules     []PerformanceRule
	Workers              int // Files scored concurrently; zero means GOMAXPROCS
}

// DefaultConfig returns the built-in heuristics.
func DefaultConfig() Config {
	return Config{
		ControlKeywords:      DefaultControlKeywords(),
		StructuralSeparators: DefaultStructuralSeparators,
		SecurityRules:        DefaultSecurityRules(),
		PerformanceRules:     DefaultPerformanceRules(),
	}
}

// ConfigFromSettings overlays the user settings on the built-in heuristics.
func ConfigFromSettings(settings entities.AnalysisSettings) Config {
	config := DefaultConfig()
	config.Workers = settings.Workers
	if len(settings.ControlKeywords) > 0 {
		config.ControlKeywords = settings.ControlKeywords
	}
	return config
}

// keywordCounter counts one control keyword.
type keywordCounter func(content string) int

// Analyzer scores file contents for impact, complexity, security issues and
// performance findings. It is safe for concurrent use.
type Analyzer struct {
	config   Config
	keywords []keywordCounter
}

// New creates an Analyzer from the given heuristics.
func New(config Config) *Analyzer {
	if config.StructuralSeparators == "" {
		config.StructuralSeparators = DefaultStructuralSeparators
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}

	return &Analyzer{
		config:   config,
		keywords: compileKeywords(config.ControlKeywords),
	}
}

// Analyze scores every file and combines the results. Files are scored
// concurrently; their contributions are summed and the numeric scores are
// clamped into [0, 100] only once, at the end. A file carrying a read error
// contributes nothing and is logged as a warning.
func (it *Analyzer) Analyze(files []entities.SourceFile) entities.Analysis {
	contributions := make([]contribution, len(files))

	var group errgroup.Group
	group.SetLimit(it.config.Workers)
	for i, file := range files {
		group.Go(func() error {
			contributions[i] = it.score(file)
			return nil
		})
	}
	_ = group.Wait() // scoring never fails

	total := contribution{}
	for _, c := range contributions {
		total = total.combine(c)
	}

	return total.analysis()
}

func (it *Analyzer) score(file entities.SourceFile) contribution {
	if file.Err != nil {
		logger.Warnf("Skipping %s in impact analysis: %v", file.Path, file.Err)
		return contribution{}
	}

	content := file.Content
	result := contribution{
		impact:     it.impactOf(content),
		complexity: it.complexityOf(content),
	}

	for _, rule := range it.config.SecurityRules {
		if line, ok := rule.Match(content); ok {
			result.issues = append(result.issues, entities.SecurityIssue{
				Severity:    rule.Severity,
				Description: rule.Description,
				Location:    fmt.Sprintf("%s:%d", file.Path, line),
			})
		}
	}

	for _, rule := range it.config.PerformanceRules {
		if rule.Fires(content) {
			result.performance += rule.Weight
			result.details = append(result.details, fmt.Sprintf("%s: %s", file.Path, rule.Detail))
		}
	}

	logger.Debugf(
		"Scored %s: impact=%d complexity=%d security=%d performance=%d",
		file.Path, result.impact, result.complexity, len(result.issues), result.performance,
	)
	return result
}

// impactOf weighs line count against the number of structural segments.
func (it *Analyzer) impactOf(content string) int {
	lines := strings.Count(content, "\n") + 1
	segments := 1
	for _, r := range content {
		if strings.ContainsRune(it.config.StructuralSeparators, r) {
			segments++
		}
	}

	weighted := lines*impactLineWeight + segments*impactTokenWeight
	return weighted / (weightScale * impactDivisor)
}

// complexityOf weighs control keywords against the deepest brace count on a line.
func (it *Analyzer) complexityOf(content string) int {
	keywords := 0
	for _, count := range it.keywords {
		keywords += count(content)
	}

	nesting := 0
	for _, line := range strings.Split(content, "\n") {
		nesting = max(nesting, strings.Count(line, "{"))
	}

	weighted := keywords*complexityKeywordWeight + nesting*complexityNestingWeight
	return weighted * complexityMultiplier / weightScale
}

// compileKeywords matches word keywords on word boundaries and operator
// keywords literally.
func compileKeywords(keywords []string) []keywordCounter {
	wordPattern := regexp.MustCompile(`^\w+$`)
	counters := make([]keywordCounter, 0, len(keywords))

	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if wordPattern.MatchString(keyword) {
			pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
			counters = append(counters, func(content string) int {
				return len(pattern.FindAllStringIndex(content, -1))
			})
			continue
		}
		counters = append(counters, func(content string) int {
			return strings.Count(content, keyword)
		})
	}

	return counters
}
