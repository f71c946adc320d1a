package fmtadapt

import (
	"io"

	"github.com/bjaus/fmtadapt/platform"
)

// ByteArrayAdapter renders a [platform.ByteArray] as the text its bytes
// hold. Bytes that are not valid UTF-8 are written as they are.
type ByteArrayAdapter struct{}

// Parse ignores spec.
func (ByteArrayAdapter) Parse(string) int { return 0 }

// Format writes a copy of the buffer's bytes to w.
func (ByteArrayAdapter) Format(w io.Writer, v platform.ByteArray) (int, error) {
	// TODO: drop the copy once WriteString accepts byte slices.
	return WriteString(w, string(v))
}
