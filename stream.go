package qjson

import "iter"

// Kind identifies the shape of one Token yielded by Tokens.
type Kind int

const (
	KindInvalid Kind = iota
	KindObjectStart
	KindObjectEnd
	KindArrayStart
	KindArrayEnd
	KindString
	KindNumber
	KindBool
	KindNull
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindObjectStart:
		return "ObjectStart"
	case KindObjectEnd:
		return "ObjectEnd"
	case KindArrayStart:
		return "ArrayStart"
	case KindArrayEnd:
		return "ArrayEnd"
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindBool:
		return "Bool"
	case KindNull:
		return "Null"
	case KindError:
		return "Error"
	default:
		return "Invalid"
	}
}

// Token is one event of a Tokens stream. Key is set only when the token
// is a direct member of the enclosing object (ObjectStart/ArrayStart
// tokens for array elements carry no key, only their own position).
// Line and Col are 1-based. A stream that hits a decode error yields
// exactly one final token with Kind == KindError and stops.
type Token struct {
	Kind  Kind
	Key   string
	Str   string
	Num   numValue
	Bool  bool
	Line  int
	Col   int
	Err   string
}

// Tokens walks qjson source the same way Decode does, but yields one
// structural or scalar event at a time instead of building JSON text.
// It exists for callers that want to react to a qjson document
// incrementally -- logging every key seen, say, or pulling out one field
// without materializing the whole document -- mirroring Decode's
// grammar exactly, down to the same member/value/array recursion and the
// same top-level members()-only entry point.
func Tokens(input []byte) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		if len(input) == 0 {
			return
		}
		d := newDecoder(input)
		d.advance()
		streamMembers(d, yield, true, 0)
	}
}

func tokenPos(pos position, input []byte, lineStart int) (int, int) {
	return pos.line + 1, columnOf(input[lineStart:pos.byteOffset]) + 1
}

// streamErrorToken yields the stream's one and only error token and always
// reports "stop" to its caller, regardless of what yield itself returns --
// every ancestor frame treats a false return as "unwind without emitting
// anything further," which is what turns one error deep in a nested object
// or array into a clean stop instead of a spurious dangling ObjectEnd or
// ArrayEnd once control unwinds back through the callers that opened it.
func (d *decoder) streamErrorToken(yield func(Token) bool, err *tokenError) bool {
	line, col := tokenPos(err.pos, d.in, err.pos.lineStart)
	yield(Token{Kind: KindError, Err: err.msg, Line: line, Col: col})
	return false
}

// streamMembers mirrors members() in builder.go: same optional-comma
// loop, same top-level-vs-nested termination rules, but calling yield
// for each member's value instead of writing JSON bytes.
func streamMembers(d *decoder, yield func(Token) bool, topLevel bool, depth int) bool {
	for {
		if !topLevel && d.tk.tag == tagCloseBrace {
			return true
		}
		if isEndOfInput(d.tk) {
			if topLevel {
				return true
			}
			return d.streamErrorToken(yield, &tokenError{d.tk.pos, errUnclosedObject})
		}
		if topLevel && d.tk.tag == tagCloseBrace {
			return d.streamErrorToken(yield, &tokenError{d.tk.pos, errUnexpectedCloseBrace})
		}
		if d.tk.tag == tagCloseSquare {
			return d.streamErrorToken(yield, &tokenError{d.tk.pos, errUnexpectedCloseSquare})
		}
		key, ok := d.streamKey(yield)
		if !ok {
			return false
		}
		if d.tk.tag != tagColon {
			return d.streamErrorToken(yield, &tokenError{d.tk.pos, errExpectColon})
		}
		d.advance()
		if d.tk.tag == tagComma || d.tk.tag == tagCloseBrace || d.tk.tag == tagCloseSquare {
			return d.streamErrorToken(yield, &tokenError{d.tk.pos, errExpectValueAfterComma})
		}
		if !streamValue(d, yield, key, depth) {
			return false
		}
		if d.tk.tag == tagComma {
			d.advance()
		}
	}
}

// streamKey consumes one member's key token, the same way member() in
// builder.go decides what may spell a key, and returns its text. A
// quoted or multiline key comes back as JSON string content, escaped the
// way Decode writes it; a quoteless key comes back as its raw source span.
func (d *decoder) streamKey(yield func(Token) bool) (string, bool) {
	tk := d.tk
	var key string
	switch tk.tag {
	case tagDoubleQuotedString, tagSingleQuotedString:
		var buf outputBuffer
		emitQuotedContent(&buf, tk.val[1:len(tk.val)-1])
		key = string(buf.bytes())
	case tagMultilineString:
		var buf outputBuffer
		emitMultilineContent(&buf, tk.val)
		key = string(buf.bytes())
	case tagQuotelessString:
		key = string(tk.val)
	case tagError:
		if isEndOfInput(tk) {
			return "", d.streamErrorToken(yield, &tokenError{tk.pos, errUnexpectedEndOfInput})
		}
		return "", d.streamErrorToken(yield, &tokenError{tk.pos, string(tk.val)})
	default:
		return "", d.streamErrorToken(yield, &tokenError{tk.pos, errExpectStringIdentifier})
	}
	d.advance()
	return key, true
}

// streamValues mirrors values() in builder.go for array elements, which
// never carry a key.
func streamValues(d *decoder, yield func(Token) bool, openPos position, depth int) bool {
	for {
		if d.tk.tag == tagCloseSquare {
			return true
		}
		if isEndOfInput(d.tk) {
			return d.streamErrorToken(yield, &tokenError{openPos, errUnclosedArray})
		}
		if !streamValue(d, yield, "", depth) {
			return false
		}
		if d.tk.tag == tagComma {
			d.advance()
		}
	}
}

func streamValue(d *decoder, yield func(Token) bool, key string, depth int) bool {
	line, col := tokenPos(d.tk.pos, d.in, d.tk.pos.lineStart)
	switch d.tk.tag {
	case tagOpenBrace:
		openPos := d.tk.pos
		d.advance()
		if !yield(Token{Kind: KindObjectStart, Key: key, Line: line, Col: col}) {
			return false
		}
		depth++
		if depth > maxDepth {
			return d.streamErrorToken(yield, &tokenError{openPos, errMaxObjectArrayDepth})
		}
		if !streamMembers(d, yield, false, depth) {
			return false
		}
		eline, ecol := tokenPos(d.tk.pos, d.in, d.tk.pos.lineStart)
		d.advance()
		return yield(Token{Kind: KindObjectEnd, Line: eline, Col: ecol})
	case tagOpenSquare:
		openPos := d.tk.pos
		d.advance()
		if !yield(Token{Kind: KindArrayStart, Key: key, Line: line, Col: col}) {
			return false
		}
		depth++
		if depth > maxDepth {
			return d.streamErrorToken(yield, &tokenError{openPos, errMaxObjectArrayDepth})
		}
		if !streamValues(d, yield, openPos, depth) {
			return false
		}
		eline, ecol := tokenPos(d.tk.pos, d.in, d.tk.pos.lineStart)
		d.advance()
		return yield(Token{Kind: KindArrayEnd, Line: eline, Col: ecol})
	case tagDoubleQuotedString, tagSingleQuotedString, tagMultilineString:
		var buf outputBuffer
		if d.tk.tag == tagMultilineString {
			emitMultilineContent(&buf, d.tk.val)
		} else {
			emitQuotedContent(&buf, d.tk.val[1:len(d.tk.val)-1])
		}
		tk := Token{Kind: KindString, Key: key, Str: string(buf.bytes()), Line: line, Col: col}
		d.advance()
		return yield(tk)
	case tagQuotelessString:
		return streamQuotelessValue(d, yield, key, line, col)
	case tagError:
		if isEndOfInput(d.tk) {
			return d.streamErrorToken(yield, &tokenError{d.tk.pos, errUnexpectedEndOfInput})
		}
		return d.streamErrorToken(yield, &tokenError{d.tk.pos, string(d.tk.val)})
	default:
		return d.streamErrorToken(yield, &tokenError{d.tk.pos, errSyntaxError})
	}
}

func streamQuotelessValue(d *decoder, yield func(Token) bool, key string, line, col int) bool {
	tk := d.tk
	if lit, ok := matchLiteralValue(tk.val); ok {
		if lit.isNull {
			d.advance()
			return yield(Token{Kind: KindNull, Key: key, Line: line, Col: col})
		}
		d.advance()
		return yield(Token{Kind: KindBool, Key: key, Bool: lit.b, Line: line, Col: col})
	}
	if isNumberExprStart(tk.val) {
		v, err := evalExpression(tk.val)
		if err != nil {
			return d.streamErrorToken(yield, &tokenError{offsetPosition(tk.pos, err.offset), err.msg})
		}
		d.advance()
		return yield(Token{Kind: KindNumber, Key: key, Num: v, Line: line, Col: col})
	}
	d.advance()
	return yield(Token{Kind: KindString, Key: key, Str: string(tk.val), Line: line, Col: col})
}
