package qjson

// multiline.go decodes backtick-delimited multiline strings. Unlike the
// other three string forms, a multiline token's value is not a raw
// source span: the margin has already been stripped from every line,
// the declared newline specifier has replaced whatever line endings the
// source file happened to use, and the one backtick escape has been
// resolved. emit.go therefore only needs to JSON-escape a multiline
// token's value, never unescape it.
//
// Layout:
//
//	    `\n
//	    first line
//	    second line
//	    `
//
// The four spaces before the opening backtick are the margin: every
// following line, including the one with the closing backtick, must
// start with exactly those bytes, which are then discarded. "\n" right
// after the backtick is typed literally (backslash, n) and chooses "\n"
// as the line separator used to join the content lines in the decoded
// value; "\r\n" selects "\r\n" instead. Nothing but optional whitespace,
// and then either the newline or a line comment, may follow the
// specifier on the opening line.

func isWhitespaceOnly(b []byte) bool {
	for len(b) > 0 {
		n := isWhitespace(b)
		if n == 0 {
			return false
		}
		b = b[n:]
	}
	return true
}

// newlineSpecifier reads the literal two- or four-byte text "\n" or
// "\r\n" (backslash followed by the letter, not a control byte) and
// returns the real newline bytes it selects.
func (d *decoder) newlineSpecifier() ([]byte, *tokenError) {
	pos := d.pos
	if len(d.cur) == 0 || d.cur[0] != '\\' {
		return nil, &tokenError{pos, errMissingNewlineSpecifier}
	}
	if len(d.cur) >= 4 && d.cur[1] == 'r' && d.cur[2] == '\\' && d.cur[3] == 'n' {
		d.popBytes(4)
		return []byte("\r\n"), nil
	}
	if len(d.cur) >= 2 && d.cur[1] == 'n' {
		d.popBytes(2)
		return []byte("\n"), nil
	}
	return nil, &tokenError{pos, errInvalidNewlineSpecifier}
}

// matchMargin requires the next len(margin) bytes of the input to equal
// margin exactly and consumes them. An empty margin (the backtick sat at
// the very start of its line) always matches.
func (d *decoder) matchMargin(margin []byte) *tokenError {
	if len(d.cur) < len(margin) {
		return &tokenError{d.pos, errInvalidMarginChar}
	}
	for i, b := range margin {
		if d.cur[i] != b {
			return &tokenError{d.pos, errInvalidMarginChar}
		}
	}
	d.popBytes(len(margin))
	return nil
}

// scanMultilineLine consumes one content line: everything up to (but not
// including) the next raw newline or the closing backtick. "`\`` inside
// the line is a literal backtick appended to the content; a bare "`"
// ends the whole multiline string. A control byte other than the newline
// forms already handled above is passed through as content verbatim,
// leaving emitMultilineContent to escape it; the tokenizer itself places
// no restriction on which control bytes a multiline body may contain.
func (d *decoder) scanMultilineLine() (line []byte, terminated bool, tErr *tokenError) {
	for {
		if len(d.cur) == 0 {
			return nil, false, &tokenError{d.pos, errUnclosedMultiline}
		}
		if d.cur[0] == '\\' && len(d.cur) >= 2 && d.cur[1] == '`' {
			line = append(line, '`')
			d.popBytes(2)
			continue
		}
		if d.cur[0] == '`' {
			d.popBytes(1)
			return line, true, nil
		}
		if isNewline(d.cur) != 0 {
			d.popNewline()
			return line, false, nil
		}
		if d.cur[0] < 0x20 {
			line = append(line, d.cur[0])
			d.popBytes(1)
			continue
		}
		n, errMsg := utf8CharLen(d.cur)
		if errMsg != "" {
			return nil, false, &tokenError{d.pos, errMsg}
		}
		line = append(line, d.cur[:n]...)
		d.popBytes(n)
	}
}

func (d *decoder) parseMultilineString() ([]byte, *tokenError) {
	startPos := d.pos
	margin := d.in[d.pos.lineStart:d.pos.byteOffset]
	if !isWhitespaceOnly(margin) {
		return nil, &tokenError{startPos, errMarginMustBeWhitespaceOnly}
	}
	d.popBytes(1) // the opening backtick

	d.skipWhitespaces()
	newlineSpec, err := d.newlineSpecifier()
	if err != nil {
		return nil, err
	}
	d.skipWhitespaces()
	if !d.popNewline() {
		ok, err := d.skipLineComment()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &tokenError{startPos, errInvalidMultilineStart}
		}
	}

	var content []byte
	for {
		if err := d.matchMargin(margin); err != nil {
			return nil, err
		}
		line, terminated, err := d.scanMultilineLine()
		if err != nil {
			return nil, err
		}
		content = append(content, line...)
		if terminated {
			return content, nil
		}
		content = append(content, newlineSpec...)
	}
}
