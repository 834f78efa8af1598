package controllers

// ParseSince exports parseSince for testing.
var ParseSince = parseSince //nolint:gochecknoglobals // test export

// FormatChange exports formatChange for testing.
var FormatChange = formatChange //nolint:gochecknoglobals // test export
