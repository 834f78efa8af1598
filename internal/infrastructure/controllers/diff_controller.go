package controllers

import (
	"io"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitinsight/internal/domain/commands"
	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

// DiffController handles the "diff" subcommand.
type DiffController struct {
	command commands.Diff
}

// NewDiffController creates a new DiffController.
func NewDiffController(command commands.Diff) *DiffController {
	return &DiffController{command: command}
}

// GetBind returns the Cobra command metadata for the diff controller.
func (it *DiffController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "diff [revision] [-- path...]",
		Short: "Break a diff down into hunks and per-file line counts",
	}
}

// Execute reads and prints the diff report.
func (it *DiffController) Execute(cmd *cobra.Command, args []string) {
	staged, _ := cmd.Flags().GetBool("staged")

	revision, paths := splitRevisionAndPaths(cmd, args)
	report, err := it.command.Execute(cmd.Context(), commands.DiffOptions{
		RepoDir:  repoDir(cmd),
		Staged:   staged,
		Revision: revision,
		Paths:    paths,
	})
	if err != nil {
		logger.Errorf("Diff failed: %v", err)
		return
	}

	if err = present(cmd, report, func(w io.Writer) error {
		return writeDiffReport(w, report)
	}); err != nil {
		logger.Errorf("Failed to print the diff: %v", err)
	}
}

// AddFlags adds the diff-specific flags to the given Cobra command.
func (it *DiffController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("staged", false, "Compare the index instead of the working tree")
}

// splitRevisionAndPaths separates the optional revision from the paths that
// follow a "--" argument.
func splitRevisionAndPaths(cmd *cobra.Command, args []string) (string, []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		dash = len(args)
	}

	revision := ""
	if dash > 0 {
		revision = args[0]
	}
	return revision, args[dash:]
}
