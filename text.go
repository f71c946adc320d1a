package fmtadapt

import (
	"io"

	"github.com/bjaus/fmtadapt/platform"
	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// TextAdapter renders a [platform.String] by decoding its UTF-16 code
// units to UTF-8. Well-formed input round-trips exactly; unpaired
// surrogates come out as U+FFFD.
type TextAdapter struct{}

// Parse ignores spec.
func (TextAdapter) Parse(string) int { return 0 }

// Format decodes v and writes the result to w.
func (TextAdapter) Format(w io.Writer, v platform.String) (int, error) {
	text, err := utf16le.NewDecoder().Bytes(v.Bytes())
	if err != nil {
		return 0, err
	}
	return WriteString(w, string(text))
}
