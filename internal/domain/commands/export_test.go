package commands

// WithLineCounts exports withLineCounts for testing.
var WithLineCounts = withLineCounts //nolint:gochecknoglobals // test export
