// Package fmtadapt renders foreign value types as text through Go's
// formatting pipelines without changing either side.
//
// Three types from package [platform] are supported, each by its own
// stateless adapter:
//
//   - [platform.ByteArray] → [ByteArrayAdapter] (bytes copied verbatim)
//   - [platform.String] → [TextAdapter] (UTF-16 decoded to UTF-8)
//   - [platform.Path] → [PathAdapter] (native text wrapped in single quotes)
//
// The set is closed. [Foreign] is a type constraint, so asking for an
// adapter of any other type fails at compile time:
//
//	fmtadapt.Fprint(os.Stdout, platform.NewPath("/tmp", "a b")) // '/tmp/a b'
//
// # Adapter Contract
//
// Every adapter has the same two operations. [Adapter.Parse] accepts any
// format spec and consumes none of it; presentation options such as width,
// precision, and alignment are not supported and are ignored rather than
// rejected. [Adapter.Format] converts the value to its canonical text and
// hands it to [WriteString], returning the byte count and error that
// WriteString reports.
//
// # Pipelines
//
// Use [Wrap] to pass a foreign value to fmt, encoding/json, or
// gopkg.in/yaml.v3:
//
//	fmt.Printf("opening %v\n", fmtadapt.Wrap(path))
//	json.Marshal(map[string]any{"name": fmtadapt.Wrap(name)})
//
// The wrapper ignores verbs and flags, so "%v", "%s", and "%-20q" all
// produce the same text.
//
// # Quoting
//
// Paths are quoted for display only. The quotes are always added and
// nothing inside them is escaped, so a path containing a single quote
// cannot be recovered from the output:
//
//	/tmp/a'b → '/tmp/a'b'
//
// # Errors
//
// The package defines no errors. Failures from the writer are returned
// unchanged, so callers can compare them with [errors.Is] or by identity.
package fmtadapt
