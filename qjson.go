// Package qjson decodes qjson, a human-friendly superset of JSON, into
// standard JSON text.
//
// qjson extends JSON with line and block comments, commas that are
// optional wherever a newline already separates two entries, four string
// styles (double-quoted, single-quoted, backtick-delimited multiline,
// and bare quoteless), numeric literals in binary/octal/hex/decimal with
// underscore separators, arithmetic and bitwise expressions over those
// literals, ISO-8601 timestamps that evaluate to a Unix timestamp, and
// duration suffixes (w/d/h/m/s) that combine into a number of seconds.
// Decode is the package's main entry point; Tokens (stream.go) walks the
// same grammar as a stream of events instead of producing JSON text.
package qjson

// Version identifies the qjson grammar this package implements,
// independent of the module's own release versioning.
const Version = "1.0.0"

// Decode converts qjson source text to standard JSON text. An empty
// input decodes to "{}", the empty object, since qjson documents are
// conventionally a bare sequence of members rather than a value wrapped
// in braces.
//
// On failure the returned error is always a *DecodeError, giving the
// 1-based line and column the problem was found at along with one of
// the fixed diagnostic strings declared in errors.go.
func Decode(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return []byte("{}"), nil
	}
	d := newDecoder(input)
	d.advance()
	out := newOutputBuffer()
	out.writeByte('{')
	if err := d.members(out, position{}, true); err != nil {
		return nil, toDecodeError(input, err)
	}
	out.writeByte('}')
	return out.bytes(), nil
}

func toDecodeError(input []byte, err *tokenError) *DecodeError {
	lineBytes := input[err.pos.lineStart:err.pos.byteOffset]
	return &DecodeError{
		Message: err.msg,
		Line:    err.pos.line + 1,
		Col:     columnOf(lineBytes) + 1,
	}
}
