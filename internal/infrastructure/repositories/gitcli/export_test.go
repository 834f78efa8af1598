package gitcli

// ParseGitVersion exports parseGitVersion for testing.
var ParseGitVersion = parseGitVersion //nolint:gochecknoglobals // test export

// LogArgs exports logArgs for testing.
var LogArgs = logArgs //nolint:gochecknoglobals // test export

// DiffArgs exports diffArgs for testing.
var DiffArgs = diffArgs //nolint:gochecknoglobals // test export

// BlameArgs exports blameArgs for testing.
var BlameArgs = blameArgs //nolint:gochecknoglobals // test export
