// Package ioboundary is the thin sliver of the textual I/O boundary this
// module owns: NFC-normalizing raw input lines before the alphabet codec
// ever sees them. Full FASTA/line-format parsing, the k-mer-window
// generator, and canonicalization remain external collaborators.
package ioboundary

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeLine NFC-normalizes a raw input line and trims surrounding
// whitespace, guarding against combining-character lookalikes in
// externally sourced sequence files before alphabet validation runs.
func NormalizeLine(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}
