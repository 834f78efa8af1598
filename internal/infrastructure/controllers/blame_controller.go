package controllers

import (
	"io"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitinsight/internal/domain/commands"
	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

// BlameController handles the "blame" subcommand.
type BlameController struct {
	command commands.Blame
}

// NewBlameController creates a new BlameController.
func NewBlameController(command commands.Blame) *BlameController {
	return &BlameController{command: command}
}

// GetBind returns the Cobra command metadata for the blame controller.
func (it *BlameController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "blame <path>",
		Short: "Show the last commit, author and date of every line",
	}
}

// Execute blames the file given as the first argument.
func (it *BlameController) Execute(cmd *cobra.Command, args []string) {
	revision, _ := cmd.Flags().GetString("rev")

	opts := commands.BlameOptions{RepoDir: repoDir(cmd), Revision: revision}
	if len(args) > 0 {
		opts.Path = args[0]
	}

	lines, err := it.command.Execute(cmd.Context(), opts)
	if err != nil {
		logger.Errorf("Blame failed: %v", err)
		return
	}

	if err = present(cmd, lines, func(w io.Writer) error {
		return writeBlame(w, lines)
	}); err != nil {
		logger.Errorf("Failed to print the blame: %v", err)
	}
}

// AddFlags adds the blame-specific flags to the given Cobra command.
func (it *BlameController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("rev", "", "Blame the file as of this revision")
}
