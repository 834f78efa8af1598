// Package parser turns the captured text output of git into domain entities.
//
// Every parser is a pure function over fully buffered text. Parsers are
// tolerant: malformed or partial input degrades to empty, zero or default
// values instead of failing, because command output is rarely pristine.
// Identical input always yields structurally equal output.
package parser
