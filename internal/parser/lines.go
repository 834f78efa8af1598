package parser

import (
	"strconv"
	"strings"
)

// splitLines splits captured output into lines, dropping the single trailing
// newline that commands emit and any carriage returns.
func splitLines(raw string) []string {
	raw = strings.TrimSuffix(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "\n")
}

// atoiOrZero converts a decimal string, returning 0 for anything else.
func atoiOrZero(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
