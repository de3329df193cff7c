package qjson

// builder.go is the recursive-descent structure builder: it drives the
// outer tokenizer one token at a time and writes standard JSON text to
// an outputBuffer as it goes, rather than building an intermediate tree.
// The top-level entry point is members(), never value() -- a bare
// top-level array is not valid qjson, only an object body without
// surrounding braces is. A document wrapped in '{' ... '}' is not
// accepted at the top level: the opening '{' is rejected with
// errExpectStringIdentifier.

// maxDepth bounds object/array nesting to guard against stack growth on
// adversarial or merely very deeply nested input.
const maxDepth = 200

func (d *decoder) value(out *outputBuffer) *tokenError {
	switch d.tk.tag {
	case tagOpenBrace:
		return d.object(out)
	case tagOpenSquare:
		return d.array(out)
	case tagDoubleQuotedString, tagSingleQuotedString, tagMultilineString:
		emitStringToken(out, d.tk.tag, d.tk.val)
		d.advance()
		return nil
	case tagQuotelessString:
		return d.quotelessValue(out)
	case tagError:
		if isEndOfInput(d.tk) {
			return &tokenError{d.tk.pos, errUnexpectedEndOfInput}
		}
		return &tokenError{d.tk.pos, string(d.tk.val)}
	default:
		// Reached for a delimiter in value position that member() and
		// values() do not intercept themselves: a '}' or ',' or ':' where
		// an array element is expected, or a ':' right after a member's colon.
		return &tokenError{d.tk.pos, errSyntaxError}
	}
}

// quotelessValue decides what a bare, unquoted span actually means: one
// of the fixed true/false/null spellings, a number/duration/timestamp
// expression, or (if it's neither) a plain string. Once the span commits
// to looking like an expression, any failure within it is a real error,
// never a silent fallback to string.
func (d *decoder) quotelessValue(out *outputBuffer) *tokenError {
	tk := d.tk
	if lit, ok := matchLiteralValue(tk.val); ok {
		if lit.isNull {
			emitNull(out)
		} else {
			emitBool(out, lit.b)
		}
		d.advance()
		return nil
	}
	if isNumberExprStart(tk.val) {
		v, err := evalExpression(tk.val)
		if err != nil {
			return &tokenError{offsetPosition(tk.pos, err.offset), err.msg}
		}
		emitNumber(out, v)
		d.advance()
		return nil
	}
	emitQuotelessString(out, tk.val)
	d.advance()
	return nil
}

// offsetPosition adjusts pos forward by n bytes. It is only ever used to
// relocate an error discovered by the numeric sub-engine, whose own
// positions are offsets into a quoteless string's span; that span can
// never contain a raw newline (the tokenizer always stops it at one), so
// the line and line-start never change.
func offsetPosition(pos position, n int) position {
	pos.byteOffset += n
	return pos
}

func (d *decoder) object(out *outputBuffer) *tokenError {
	openPos := d.tk.pos
	d.advance()
	out.writeByte('{')
	d.depth++
	if d.depth > maxDepth {
		return &tokenError{openPos, errMaxObjectArrayDepth}
	}
	if err := d.members(out, openPos, false); err != nil {
		return err
	}
	d.depth--
	out.writeByte('}')
	d.advance()
	return nil
}

func (d *decoder) array(out *outputBuffer) *tokenError {
	openPos := d.tk.pos
	d.advance()
	out.writeByte('[')
	d.depth++
	if d.depth > maxDepth {
		return &tokenError{openPos, errMaxObjectArrayDepth}
	}
	if err := d.values(out, openPos); err != nil {
		return err
	}
	d.depth--
	out.writeByte(']')
	d.advance()
	return nil
}

// members parses a comma-optional sequence of "key: value" pairs. At the
// top level there is no enclosing brace: running out of input simply
// ends the document, and a stray '}' is an error in its own right rather
// than a terminator. Nested inside an object, running out of input
// before the matching '}' promotes to errUnclosedObject, reported at the
// opening brace's position so the message points at the construct that
// never closed, not at the end of the file.
func (d *decoder) members(out *outputBuffer, openPos position, topLevel bool) *tokenError {
	wrote := false
	for {
		if !topLevel && d.tk.tag == tagCloseBrace {
			return nil
		}
		if isEndOfInput(d.tk) {
			if topLevel {
				return nil
			}
			return &tokenError{openPos, errUnclosedObject}
		}
		if topLevel && d.tk.tag == tagCloseBrace {
			return &tokenError{d.tk.pos, errUnexpectedCloseBrace}
		}
		if d.tk.tag == tagCloseSquare {
			return &tokenError{d.tk.pos, errUnexpectedCloseSquare}
		}
		if wrote {
			out.writeByte(',')
		}
		if err := d.member(out); err != nil {
			return err
		}
		wrote = true
		if d.tk.tag == tagComma {
			d.advance()
		}
	}
}

// values parses a comma-optional sequence of array elements.
func (d *decoder) values(out *outputBuffer, openPos position) *tokenError {
	wrote := false
	for {
		if d.tk.tag == tagCloseSquare {
			return nil
		}
		if isEndOfInput(d.tk) {
			return &tokenError{openPos, errUnclosedArray}
		}
		if wrote {
			out.writeByte(',')
		}
		if err := d.value(out); err != nil {
			return err
		}
		wrote = true
		if d.tk.tag == tagComma {
			d.advance()
		}
	}
}

// member parses one "key: value" pair. Any of the four string forms may
// spell a key; a quoteless key is never reinterpreted as a literal,
// number, or expression the way a quoteless value would be -- "true:
// true" produces the member {"true": true}, not a syntax error.
func (d *decoder) member(out *outputBuffer) *tokenError {
	tk := d.tk
	switch tk.tag {
	case tagDoubleQuotedString, tagSingleQuotedString:
		out.writeByte('"')
		emitQuotedContent(out, tk.val[1:len(tk.val)-1])
		out.writeByte('"')
	case tagMultilineString:
		out.writeByte('"')
		emitMultilineContent(out, tk.val)
		out.writeByte('"')
	case tagQuotelessString:
		out.writeByte('"')
		emitQuotelessContent(out, tk.val)
		out.writeByte('"')
	case tagError:
		if isEndOfInput(tk) {
			return &tokenError{tk.pos, errUnexpectedEndOfInput}
		}
		return &tokenError{tk.pos, string(tk.val)}
	default:
		return &tokenError{tk.pos, errExpectStringIdentifier}
	}
	d.advance()
	if d.tk.tag != tagColon {
		return &tokenError{d.tk.pos, errExpectColon}
	}
	d.advance()
	out.writeByte(':')
	if d.tk.tag == tagComma || d.tk.tag == tagCloseBrace || d.tk.tag == tagCloseSquare {
		return &tokenError{d.tk.pos, errExpectValueAfterComma}
	}
	return d.value(out)
}
