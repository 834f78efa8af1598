package controllers

import (
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitinsight/internal/domain/commands"
	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

// CommitMessageController handles the "commit-msg" subcommand.
type CommitMessageController struct {
	command  commands.CommitMessage
	settings *entities.Settings
}

// NewCommitMessageController creates a new CommitMessageController.
func NewCommitMessageController(
	command commands.CommitMessage,
	settings *entities.Settings,
) *CommitMessageController {
	return &CommitMessageController{command: command, settings: settings}
}

// GetBind returns the Cobra command metadata for the commit-msg controller.
func (it *CommitMessageController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "commit-msg",
		Short: "Propose a commit message for the staged changes",
		Long: `Propose a commit message for the staged changes.

Styles:
  conventional  type(scope): description
  gitmoji       emoji [scope] description
  detailed      conventional header followed by the list of changes
  simple        description only

Defaults come from the "style" section of the config file.`,
	}
}

// Execute composes and prints the message.
func (it *CommitMessageController) Execute(cmd *cobra.Command, _ []string) {
	style, err := it.style(cmd)
	if err != nil {
		logger.Errorf("Invalid style: %v", err)
		return
	}

	message, err := it.command.Execute(cmd.Context(), commands.CommitMessageOptions{
		RepoDir: repoDir(cmd),
		Style:   style,
	})
	if err != nil {
		logger.Errorf("Commit message failed: %v", err)
		return
	}

	if err = present(cmd, map[string]string{"message": message}, func(w io.Writer) error {
		_, writeErr := fmt.Fprintln(w, message)
		return writeErr
	}); err != nil {
		logger.Errorf("Failed to print the commit message: %v", err)
	}
}

// AddFlags adds the commit-msg-specific flags to the given Cobra command.
func (it *CommitMessageController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("style", "", "Message style: conventional, gitmoji, detailed or simple")
	cmd.Flags().Bool("scope", false, "Include the derived scope")
	cmd.Flags().Bool("footer", false, "Include the change footer")
	cmd.Flags().Int("max-length", 0, "Maximum message length (0 keeps the configured value)")
}

// style starts from the configured style and applies the flags that were set.
func (it *CommitMessageController) style(cmd *cobra.Command) (entities.CommitStyle, error) {
	style := it.settings.Style
	flags := cmd.Flags()

	if flags.Changed("style") {
		raw, _ := flags.GetString("style")
		parsed, err := entities.ParseStyleType(raw)
		if err != nil {
			return style, err
		}
		style.Type = parsed
	}
	if flags.Changed("scope") {
		style.IncludeScope, _ = flags.GetBool("scope")
	}
	if flags.Changed("footer") {
		style.IncludeFooter, _ = flags.GetBool("footer")
	}
	if maxLength, _ := flags.GetInt("max-length"); maxLength > 0 {
		style.MaxLength = maxLength
	}
	return style, nil
}
