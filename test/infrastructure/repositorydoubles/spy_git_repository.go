//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitinsight/internal/domain/repositories"
)

// SpyGitRepository implements repositories.GitRepository as a configurable spy.
type SpyGitRepository struct {
	// --- Log ---
	LogOutput  string
	LogErr     error
	LogQueries []repositories.LogQuery

	// --- NameStatus ---
	NameStatusOutput  string
	NameStatusErr     error
	NameStatusQueries []repositories.DiffQuery

	// --- Diff ---
	DiffOutput  string
	DiffErr     error
	DiffQueries []repositories.DiffQuery

	// --- Blame ---
	BlameOutput string
	BlameErr    error
	BlameCalls  []BlameCall

	// spy: directories every call ran in
	RepoDirs []string
}

// BlameCall records a single invocation of Blame.
type BlameCall struct {
	Revision string
	Path     string
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

func (g *SpyGitRepository) Log(
	_ context.Context, repoDir string, query repositories.LogQuery,
) (string, error) {
	g.RepoDirs = append(g.RepoDirs, repoDir)
	g.LogQueries = append(g.LogQueries, query)
	return g.LogOutput, g.LogErr
}

func (g *SpyGitRepository) NameStatus(
	_ context.Context, repoDir string, query repositories.DiffQuery,
) (string, error) {
	g.RepoDirs = append(g.RepoDirs, repoDir)
	g.NameStatusQueries = append(g.NameStatusQueries, query)
	return g.NameStatusOutput, g.NameStatusErr
}

func (g *SpyGitRepository) Diff(
	_ context.Context, repoDir string, query repositories.DiffQuery,
) (string, error) {
	g.RepoDirs = append(g.RepoDirs, repoDir)
	g.DiffQueries = append(g.DiffQueries, query)
	return g.DiffOutput, g.DiffErr
}

func (g *SpyGitRepository) Blame(
	_ context.Context, repoDir, revision, path string,
) (string, error) {
	g.RepoDirs = append(g.RepoDirs, repoDir)
	g.BlameCalls = append(g.BlameCalls, BlameCall{Revision: revision, Path: path})
	return g.BlameOutput, g.BlameErr
}
