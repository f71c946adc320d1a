package fmtadapt

import (
	"bytes"
	"io"
	"strings"

	"github.com/bjaus/fmtadapt/platform"
)

// Foreign is the closed set of types that have an adapter.
type Foreign interface {
	platform.ByteArray | platform.String | platform.Path
}

// Adapter renders values of one foreign type.
type Adapter[T Foreign] interface {
	// Parse consumes the format spec and returns the position where
	// parsing stopped. No options are supported, so it is always 0.
	Parse(spec string) int

	// Format writes the canonical text of v to w.
	Format(w io.Writer, v T) (int, error)
}

var (
	_ Adapter[platform.ByteArray] = ByteArrayAdapter{}
	_ Adapter[platform.String]    = TextAdapter{}
	_ Adapter[platform.Path]      = PathAdapter{}
)

// For returns the adapter bound to T.
func For[T Foreign]() Adapter[T] {
	var a any
	switch any(*new(T)).(type) {
	case platform.ByteArray:
		a = ByteArrayAdapter{}
	case platform.String:
		a = TextAdapter{}
	case platform.Path:
		a = PathAdapter{}
	}
	return a.(Adapter[T])
}

// Fprint writes the canonical text of v to w. It returns the number of
// bytes written and any write error.
func Fprint[T Foreign](w io.Writer, v T) (int, error) {
	return For[T]().Format(w, v)
}

// Sprint returns the canonical text of v.
func Sprint[T Foreign](v T) string {
	var sb strings.Builder
	_, _ = Fprint(&sb, v)
	return sb.String()
}

// Append appends the canonical text of v to dst and returns the extended
// slice.
func Append[T Foreign](dst []byte, v T) []byte {
	buf := bytes.NewBuffer(dst)
	_, _ = Fprint(buf, v)
	return buf.Bytes()
}

// WriteString writes s to w verbatim. Every adapter emits through it.
func WriteString(w io.Writer, s string) (int, error) {
	return io.WriteString(w, s)
}
