// Package platform defines value types that originate outside the Go
// string model: raw byte buffers, UTF-16 platform strings, and filesystem
// paths.
package platform

import (
	"encoding/binary"
	"path/filepath"
	"unicode/utf16"
)

// ByteArray is a raw byte buffer. It carries no charset information.
type ByteArray []byte

// String is a platform string stored as UTF-16LE code units.
type String struct {
	data []byte
}

// NewString encodes UTF-8 text as a platform string. Invalid UTF-8 is
// stored as U+FFFD.
func NewString(s string) String {
	return StringFromUTF16(utf16.Encode([]rune(s)))
}

// StringFromUTF16 builds a platform string from code units. Unpaired
// surrogates are stored as given.
func StringFromUTF16(units []uint16) String {
	data := make([]byte, 0, len(units)*2)
	for _, u := range units {
		data = binary.LittleEndian.AppendUint16(data, u)
	}
	return String{data: data}
}

// Bytes returns the UTF-16LE encoded contents. The caller must not modify
// the returned slice.
func (s String) Bytes() []byte { return s.data }

// Len returns the number of UTF-16 code units.
func (s String) Len() int { return len(s.data) / 2 }

// Path is a filesystem path in the native form of the host OS.
type Path struct {
	native string
}

// NewPath joins elem with the OS separator.
func NewPath(elem ...string) Path {
	return Path{native: filepath.Join(elem...)}
}

// PathFromSlash converts a slash-separated path to native form. Unlike
// NewPath the result is not cleaned.
func PathFromSlash(p string) Path {
	return Path{native: filepath.FromSlash(p)}
}

// String returns the native textual form of the path.
func (p Path) String() string { return p.native }
