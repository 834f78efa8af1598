package controllers

import (
	"io"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitinsight/internal/domain/commands"
	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

// AnalyzeController handles the "analyze" subcommand.
type AnalyzeController struct {
	command commands.Analyze
}

// NewAnalyzeController creates a new AnalyzeController.
func NewAnalyzeController(command commands.Analyze) *AnalyzeController {
	return &AnalyzeController{command: command}
}

// GetBind returns the Cobra command metadata for the analyze controller.
func (it *AnalyzeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "analyze [revision]",
		Short: "Score the impact, complexity and risks of the changed files",
		Long: `Read every file touched by the working tree, the index (--staged)
or a revision, and score it with heuristics for impact, complexity,
security issues and performance findings. Scores range from 0 to 100.`,
	}
}

// Execute analyzes the change set and prints the report.
func (it *AnalyzeController) Execute(cmd *cobra.Command, args []string) {
	staged, _ := cmd.Flags().GetBool("staged")

	opts := commands.AnalyzeOptions{RepoDir: repoDir(cmd), Staged: staged}
	if len(args) > 0 {
		opts.Revision = args[0]
	}

	report, err := it.command.Execute(cmd.Context(), opts)
	if err != nil {
		logger.Errorf("Analysis failed: %v", err)
		return
	}

	if err = present(cmd, report, func(w io.Writer) error {
		return writeImpactReport(w, report)
	}); err != nil {
		logger.Errorf("Failed to print the analysis: %v", err)
	}
}

// AddFlags adds the analyze-specific flags to the given Cobra command.
func (it *AnalyzeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("staged", false, "Analyze the files in the index")
}
