//go:build unit

package controllers_test

import (
	"bytes"
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

// newCommand mirrors how main wires a controller into a subcommand,
// including the root persistent flags, and captures its output.
func newCommand(controller entities.Controller, output string) (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: controller.GetBind().Use}
	cmd.Flags().String("output", output, "")
	cmd.Flags().String("repo", "/work/repo", "")
	controller.AddFlags(cmd)
	cmd.SetOut(out)
	cmd.SetContext(context.Background())
	return cmd, out
}
