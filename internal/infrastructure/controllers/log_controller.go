package controllers

import (
	"fmt"
	"io"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitinsight/internal/domain/commands"
	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

// LogController handles the "log" subcommand.
type LogController struct {
	command commands.History
}

// NewLogController creates a new LogController.
func NewLogController(command commands.History) *LogController {
	return &LogController{command: command}
}

// GetBind returns the Cobra command metadata for the log controller.
func (it *LogController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "log [revision]",
		Short: "Summarize the commit history",
		Long: `Read the commit history with per-commit line statistics
and print the commits followed by a summary of authors and changes.`,
	}
}

// Execute reads and prints the history.
func (it *LogController) Execute(cmd *cobra.Command, args []string) {
	maxCount, _ := cmd.Flags().GetInt("max-count")
	numstat, _ := cmd.Flags().GetBool("numstat")
	sinceRaw, _ := cmd.Flags().GetString("since")

	since, err := parseSince(sinceRaw, time.Now())
	if err != nil {
		logger.Errorf("Invalid --since value: %v", err)
		return
	}

	opts := commands.HistoryOptions{
		RepoDir:  repoDir(cmd),
		MaxCount: maxCount,
		Since:    since,
		Numstat:  numstat,
	}
	if len(args) > 0 {
		opts.Revision = args[0]
	}

	history, err := it.command.Execute(cmd.Context(), opts)
	if err != nil {
		logger.Errorf("Log failed: %v", err)
		return
	}

	if err = present(cmd, history, func(w io.Writer) error {
		return writeHistory(w, history)
	}); err != nil {
		logger.Errorf("Failed to print the history: %v", err)
	}
}

// AddFlags adds the log-specific flags to the given Cobra command.
func (it *LogController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("max-count", "n", 0, "Limit the number of commits (0 means no limit)")
	cmd.Flags().Bool("numstat", false, "Include per-file line counts for every commit")
	cmd.Flags().String("since", "", "Only commits newer than a date (2006-01-02) or a duration (72h)")
}

// parseSince accepts an ISO date, an RFC 3339 timestamp or a duration
// counted back from now.
func parseSince(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	if duration, err := time.ParseDuration(raw); err == nil {
		return now.Add(-duration), nil
	}
	return time.Time{}, fmt.Errorf("%q is neither a date nor a duration", raw)
}
