package controllers

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

const (
	outputText = "text"
	outputYAML = "yaml"

	shortHashLength = 8
	dateLayout      = "2006-01-02"
)

// textRenderer writes the human-readable form of a result.
type textRenderer func(w io.Writer) error

// present writes value to the command output in the format selected by the
// persistent --output flag.
func present(cmd *cobra.Command, value interface{}, text textRenderer) error {
	format, _ := cmd.Flags().GetString("output")
	w := cmd.OutOrStdout()

	switch strings.ToLower(format) {
	case "", outputText:
		return text(w)
	case outputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode YAML output: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unknown output format %q (expected text or yaml)", format)
	}
}

// repoDir returns the directory given by the persistent --repo flag.
func repoDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("repo")
	if dir == "" {
		return "."
	}
	return dir
}

func shortHash(hash string) string {
	if len(hash) > shortHashLength {
		return hash[:shortHashLength]
	}
	return hash
}

func formatDate(commit entities.Commit) string {
	if commit.HasValidDate() {
		return commit.Date.Format(dateLayout)
	}
	return commit.RawDate
}

func writeHistory(w io.Writer, history entities.History) error {
	for _, commit := range history.Commits {
		if _, err := fmt.Fprintf(w, "%s %s %s\n    %s\n    %d files, +%d/-%d\n",
			shortHash(commit.Hash), formatDate(commit), commit.Author, commit.Message,
			commit.Stats.Files, commit.Stats.Additions, commit.Stats.Deletions,
		); err != nil {
			return err
		}
		for _, change := range commit.Changes {
			if _, err := fmt.Fprintf(w, "      %s\n", formatChange(change)); err != nil {
				return err
			}
		}
	}

	summary := history.Summary
	_, err := fmt.Fprintf(w, "\n%d commits by %d authors, %d files, +%d/-%d\n",
		summary.Commits, len(summary.Authors), summary.Files, summary.Additions, summary.Deletions,
	)
	return err
}

func writeDiffReport(w io.Writer, report entities.DiffReport) error {
	for _, hunk := range report.Hunks {
		if _, err := fmt.Fprintln(w, hunk.Content); err != nil {
			return err
		}
	}
	for _, change := range report.Files {
		if _, err := fmt.Fprintln(w, formatChange(change)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d hunks, +%d/-%d\n", len(report.Hunks), report.Additions, report.Deletions)
	return err
}

func writeBlame(w io.Writer, lines []entities.BlameLine) error {
	for _, line := range lines {
		date := line.Date.Format(dateLayout)
		if line.Date.Equal(entities.InvalidDate) {
			date = "unknown"
		}
		if _, err := fmt.Fprintf(w, "%s (%s %s %4d) %s\n",
			shortHash(line.Hash), line.Author, date, line.Number, line.Content,
		); err != nil {
			return err
		}
	}
	return nil
}

func writeImpactReport(w io.Writer, report entities.ImpactReport) error {
	var sb strings.Builder
	for _, change := range report.Changes {
		sb.WriteString(formatChange(change) + "\n")
	}

	analysis := report.Analysis
	fmt.Fprintf(&sb, "\nImpact:      %3d/%d\n", analysis.ImpactScore, entities.MaxScore)
	fmt.Fprintf(&sb, "Complexity:  %3d/%d\n", analysis.ComplexityScore, entities.MaxScore)
	fmt.Fprintf(&sb, "Performance: %3d/%d\n", analysis.PerformanceImpact.Score, entities.MaxScore)

	if len(analysis.SecurityIssues) > 0 {
		sb.WriteString("\nSecurity issues:\n")
		for _, issue := range analysis.SecurityIssues {
			fmt.Fprintf(&sb, "  [%s] %s (%s)\n", issue.Severity, issue.Description, issue.Location)
		}
	}
	if len(analysis.PerformanceImpact.Details) > 0 {
		sb.WriteString("\nPerformance findings:\n")
		for _, detail := range analysis.PerformanceImpact.Details {
			sb.WriteString("  " + detail + "\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func formatChange(change entities.FileChange) string {
	path := change.Path
	if change.Status == entities.StatusRenamed {
		path = change.OldPath + " -> " + change.Path
	}
	if change.Additions+change.Deletions == 0 {
		return fmt.Sprintf("%-8s %s", change.Status, path)
	}
	return fmt.Sprintf("%-8s %s (+%d/-%d)", change.Status, path, change.Additions, change.Deletions)
}
