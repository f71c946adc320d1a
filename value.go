package fmtadapt

import (
	"bytes"
	"encoding"
	"fmt"

	"github.com/bjaus/fmtadapt/platform"
	"gopkg.in/yaml.v3"
)

var (
	_ fmt.Formatter          = Value[platform.Path]{}
	_ fmt.Stringer           = Value[platform.Path]{}
	_ encoding.TextMarshaler = Value[platform.Path]{}
	_ yaml.Marshaler         = Value[platform.Path]{}
)

// Value carries a foreign value into fmt, encoding/json, and
// gopkg.in/yaml.v3. Every pipeline sees the same canonical text.
type Value[T Foreign] struct {
	v T
}

// Wrap returns a Value for v.
func Wrap[T Foreign](v T) Value[T] {
	return Value[T]{v: v}
}

// Unwrap returns the wrapped value.
func (v Value[T]) Unwrap() T { return v.v }

// Format implements [fmt.Formatter]. The verb, flags, width, and precision
// are ignored.
func (v Value[T]) Format(f fmt.State, _ rune) {
	_, _ = Fprint(f, v.v)
}

// String implements [fmt.Stringer].
func (v Value[T]) String() string { return Sprint(v.v) }

// MarshalText implements [encoding.TextMarshaler].
func (v Value[T]) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Fprint(&buf, v.v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalYAML renders the value as a YAML string scalar.
func (v Value[T]) MarshalYAML() (any, error) {
	text, err := v.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}
