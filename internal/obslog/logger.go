// Package obslog centralizes the structured logger used on the trie's
// fatal error paths (TreeInvariantViolated, CorruptNode) and by the
// benchmark CLI. Library code never logs on the hot path; from library
// code this logger is only ever reached from an error branch that is about
// to abort the current operation.
package obslog

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-wide structured logger, writing leveled,
// human-readable console lines (zerolog.ConsoleWriter) to stderr. cmd/kmerindex-bench reconfigures its level via -v/-q flags.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	With().Timestamp().Logger()
