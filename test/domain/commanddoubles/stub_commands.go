//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitinsight/internal/domain/commands"
	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

// StubHistoryCommand is a stub implementation of commands.History.
type StubHistoryCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           entities.History
	LastOpts         commands.HistoryOptions
}

var _ commands.History = (*StubHistoryCommand)(nil)

func (s *StubHistoryCommand) Execute(
	_ context.Context,
	opts commands.HistoryOptions,
) (entities.History, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}

// StubDiffCommand is a stub implementation of commands.Diff.
type StubDiffCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           entities.DiffReport
	LastOpts         commands.DiffOptions
}

var _ commands.Diff = (*StubDiffCommand)(nil)

func (s *StubDiffCommand) Execute(
	_ context.Context,
	opts commands.DiffOptions,
) (entities.DiffReport, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}

// StubBlameCommand is a stub implementation of commands.Blame.
type StubBlameCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           []entities.BlameLine
	LastOpts         commands.BlameOptions
}

var _ commands.Blame = (*StubBlameCommand)(nil)

func (s *StubBlameCommand) Execute(
	_ context.Context,
	opts commands.BlameOptions,
) ([]entities.BlameLine, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}

// StubAnalyzeCommand is a stub implementation of commands.Analyze.
type StubAnalyzeCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           entities.ImpactReport
	LastOpts         commands.AnalyzeOptions
}

var _ commands.Analyze = (*StubAnalyzeCommand)(nil)

func (s *StubAnalyzeCommand) Execute(
	_ context.Context,
	opts commands.AnalyzeOptions,
) (entities.ImpactReport, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}

// StubCommitMessageCommand is a stub implementation of commands.CommitMessage.
type StubCommitMessageCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           string
	LastOpts         commands.CommitMessageOptions
}

var _ commands.CommitMessage = (*StubCommitMessageCommand)(nil)

func (s *StubCommitMessageCommand) Execute(
	_ context.Context,
	opts commands.CommitMessageOptions,
) (string, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}
