package main

import (
	"context"
	"os"
	"os/signal"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitinsight/internal"
)

func buildRootCommand(appContext *internal.AppInternal) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "gitinsight",
		Short: "Structured insight into git history, diffs and staged changes",
		Long: `Run git, parse its output and report on it.

  gitinsight log            Commit history with line statistics
  gitinsight diff           Hunks and per-file line counts
  gitinsight blame <path>   Last commit, author and date of every line
  gitinsight analyze        Impact, complexity, security and performance heuristics
  gitinsight commit-msg     Proposed message for the staged changes`,
		SilenceUsage: true,
		PersistentPreRunE: func(command *cobra.Command, _ []string) error {
			if verbose, _ := command.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(logger.DebugLevel)
			}
			configPath, _ := command.Flags().GetString("config")
			return appContext.GetSettings().Reload(configPath)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
	cmd.PersistentFlags().StringP("output", "o", "text",
		"Output format: text or yaml")
	cmd.PersistentFlags().StringP("repo", "C", ".",
		"Run as if started in this directory")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		ctrl.AddFlags(subCmd)

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext)
	addSubcommands(cobraRoot, appContext)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cobraRoot.ExecuteContext(ctx); err != nil {
		logger.Fatalf("Error executing 'gitinsight': %s", err)
	}
}
