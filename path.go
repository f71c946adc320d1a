package fmtadapt

import (
	"io"

	"github.com/bjaus/fmtadapt/platform"
)

// PathAdapter renders a [platform.Path] in single quotes. The path text is
// used exactly as [platform.Path.String] returns it.
type PathAdapter struct{}

// Parse ignores spec.
func (PathAdapter) Parse(string) int { return 0 }

// Format writes v to w wrapped in single quotes.
func (PathAdapter) Format(w io.Writer, v platform.Path) (int, error) {
	return WriteString(w, quote(v.String()))
}

// quote wraps s in single quotes. Quotes inside s are not escaped.
func quote(s string) string {
	return "'" + s + "'"
}
