package gitcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/gitinsight/internal/domain/entities"
	"github.com/rios0rios0/gitinsight/internal/domain/repositories"
)

// logFormat writes one CommitMarker-prefixed header line per commit.
const logFormat = "--format=" + entities.CommitMarker + "%H|%an|%aI|%s"

var (
	// ErrGitTooOld is returned when the installed git is older than git.min_version.
	ErrGitTooOld = errors.New("git version is too old")

	// ErrInvalidRevision is returned for revisions that git would read as options.
	ErrInvalidRevision = errors.New("invalid revision")
)

// versionPattern captures the numeric part of `git version` output, such as
// "git version 2.39.3 (Apple Git-145)" or "git version 2.45.1.windows.1".
var versionPattern = regexp.MustCompile(`git version (\d+)\.(\d+)(?:\.(\d+))?`)

// GitCLIRepository implements repositories.GitRepository by running the git
// executable configured in the settings.
type GitCLIRepository struct {
	settings *entities.Settings

	versionOnce sync.Once
	versionErr  error
}

var _ repositories.GitRepository = (*GitCLIRepository)(nil)

// NewGitCLIRepository creates a GitCLIRepository. The settings are read on
// every call, so reloading them takes effect immediately.
func NewGitCLIRepository(settings *entities.Settings) *GitCLIRepository {
	return &GitCLIRepository{settings: settings}
}

func (it *GitCLIRepository) Log(
	ctx context.Context, repoDir string, query repositories.LogQuery,
) (string, error) {
	args, err := logArgs(query)
	if err != nil {
		return "", err
	}
	return it.run(ctx, repoDir, args...)
}

func (it *GitCLIRepository) NameStatus(
	ctx context.Context, repoDir string, query repositories.DiffQuery,
) (string, error) {
	args, err := diffArgs([]string{"diff", "--name-status", "--no-color"}, query)
	if err != nil {
		return "", err
	}
	return it.run(ctx, repoDir, args...)
}

func (it *GitCLIRepository) Diff(
	ctx context.Context, repoDir string, query repositories.DiffQuery,
) (string, error) {
	args, err := diffArgs([]string{"diff", "--no-color", "--no-ext-diff"}, query)
	if err != nil {
		return "", err
	}
	return it.run(ctx, repoDir, args...)
}

func (it *GitCLIRepository) Blame(
	ctx context.Context, repoDir, revision, path string,
) (string, error) {
	args, err := blameArgs(revision, path)
	if err != nil {
		return "", err
	}
	return it.run(ctx, repoDir, args...)
}

// run executes git in repoDir and returns its standard output. Standard
// error is folded into the returned error.
func (it *GitCLIRepository) run(ctx context.Context, repoDir string, args ...string) (string, error) {
	if err := it.checkVersion(ctx); err != nil {
		return "", err
	}

	binary := it.binary()
	logger.Debugf("Running %s %s (in %q)", binary, strings.Join(args, " "), repoDir)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = repoDir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// checkVersion compares the installed git against git.min_version once per
// repository instance. The check ignores the caller's cancellation, since
// its outcome is shared by every later call.
func (it *GitCLIRepository) checkVersion(ctx context.Context) error {
	it.versionOnce.Do(func() {
		minVersion := it.settings.Git.MinVersion
		if minVersion == "" {
			return
		}

		output, err := exec.CommandContext(context.WithoutCancel(ctx), it.binary(), "version").Output()
		if err != nil {
			it.versionErr = fmt.Errorf("failed to run %s version: %w", it.binary(), err)
			return
		}

		installed, err := parseGitVersion(string(output))
		if err != nil {
			logger.Warnf("Skipping the git version check: %v", err)
			return
		}
		logger.Debugf("Found git %s (minimum %s)", installed, minVersion)

		if semver.Compare(installed, entities.CanonicalVersion(minVersion)) < 0 {
			it.versionErr = fmt.Errorf("%w: found %s, need at least %s", ErrGitTooOld, installed, minVersion)
		}
	})
	return it.versionErr
}

func (it *GitCLIRepository) binary() string {
	if it.settings.Git.Binary == "" {
		return "git"
	}
	return it.settings.Git.Binary
}

// parseGitVersion extracts a semver string such as "v2.39.3" from `git version` output.
func parseGitVersion(output string) (string, error) {
	matches := versionPattern.FindStringSubmatch(output)
	if matches == nil {
		return "", fmt.Errorf("unrecognized git version output %q", strings.TrimSpace(output))
	}

	patch := matches[3]
	if patch == "" {
		patch = "0"
	}
	return fmt.Sprintf("v%s.%s.%s", matches[1], matches[2], patch), nil
}

func logArgs(query repositories.LogQuery) ([]string, error) {
	args := []string{"log", "--no-color", logFormat, "--shortstat"}
	if query.Numstat {
		args = append(args, "--numstat")
	}
	if query.MaxCount > 0 {
		args = append(args, "-n", strconv.Itoa(query.MaxCount))
	}
	if !query.Since.IsZero() {
		args = append(args, "--since="+query.Since.Format(time.RFC3339))
	}
	if query.Revision != "" {
		if err := validateRevision(query.Revision); err != nil {
			return nil, err
		}
		args = append(args, query.Revision)
	}
	return append(args, "--"), nil
}

func diffArgs(base []string, query repositories.DiffQuery) ([]string, error) {
	args := append([]string{}, base...)
	if query.Staged {
		args = append(args, "--cached")
	}
	if query.Revision != "" {
		if err := validateRevision(query.Revision); err != nil {
			return nil, err
		}
		args = append(args, query.Revision)
	}
	if len(query.Paths) > 0 {
		args = append(append(args, "--"), query.Paths...)
	}
	return args, nil
}

func blameArgs(revision, path string) ([]string, error) {
	args := []string{"blame", "--line-porcelain"}
	if revision != "" {
		if err := validateRevision(revision); err != nil {
			return nil, err
		}
		args = append(args, revision)
	}
	return append(args, "--", path), nil
}

func validateRevision(revision string) error {
	if strings.HasPrefix(revision, "-") {
		return fmt.Errorf("%w: %q", ErrInvalidRevision, revision)
	}
	return nil
}
