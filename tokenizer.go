package qjson

// tokenizer.go is the outer tokenizer: it walks the raw input byte by
// byte, skipping whitespace and comments, recognizing the structural
// delimiters, and carving out the four string forms (double-quoted,
// single-quoted, multiline, and quoteless). It never looks at the
// contents of a number or duration expression -- those are quoteless
// strings like any other as far as this layer is concerned, and are
// only reinterpreted as numbers later, by the builder calling into
// eval.go and literal.go.

// decoder walks in from front to back, never backtracking except for the
// 13-byte ISO-8601 lookback a colon inside a quoteless string triggers
// (see lenISODateTime). cur is always in[pos.byteOffset:].
type decoder struct {
	in    []byte
	cur   []byte
	pos   position
	depth int
	tk    token
}

func newDecoder(in []byte) *decoder {
	return &decoder{in: in, cur: in}
}

// advance fetches the next outer token into d.tk. The builder (see
// builder.go) only ever looks at d.tk; nextToken itself is never called
// directly outside this method.
func (d *decoder) advance() {
	d.tk = d.nextToken()
}

func (d *decoder) popBytes(n int) {
	d.cur = d.cur[n:]
	d.pos.byteOffset += n
}

func (d *decoder) popNewline() bool {
	n := isNewline(d.cur)
	if n == 0 {
		return false
	}
	d.popBytes(n)
	d.pos.lineStart = d.pos.byteOffset
	d.pos.line++
	return true
}

func (d *decoder) skipWhitespaces() {
	for {
		n := isWhitespace(d.cur)
		if n == 0 {
			return
		}
		d.popBytes(n)
	}
}

// skipRestOfLine consumes everything up to and including the next
// newline, or to the end of input if there is none. It is used once a
// line comment marker ('#' or "//") has been recognized.
func (d *decoder) skipRestOfLine() *tokenError {
	for {
		if d.popNewline() || len(d.cur) == 0 {
			return nil
		}
		n, errMsg := utf8CharLen(d.cur)
		if errMsg != "" {
			return &tokenError{d.pos, errMsg}
		}
		d.popBytes(n)
	}
}

func (d *decoder) skipLineComment() (bool, *tokenError) {
	if len(d.cur) == 0 {
		return false, nil
	}
	if d.cur[0] == '#' || (d.cur[0] == '/' && len(d.cur) >= 2 && d.cur[1] == '/') {
		err := d.skipRestOfLine()
		return err == nil, err
	}
	return false, nil
}

func (d *decoder) skipMultilineComment() (bool, *tokenError) {
	if len(d.cur) < 2 || d.cur[0] != '/' || d.cur[1] != '*' {
		return false, nil
	}
	startPos := d.pos
	d.popBytes(2)
	for {
		if len(d.cur) == 0 {
			return false, &tokenError{startPos, errUnclosedSlashStarComment}
		}
		if d.cur[0] == '*' && len(d.cur) >= 2 && d.cur[1] == '/' {
			d.popBytes(2)
			return true, nil
		}
		if d.popNewline() {
			continue
		}
		if d.cur[0] < 0x20 {
			d.popBytes(1)
			continue
		}
		n, errMsg := utf8CharLen(d.cur)
		if errMsg != "" {
			return false, &tokenError{d.pos, errMsg}
		}
		d.popBytes(n)
	}
}

// skipSpaces consumes whitespace, newlines, line comments and block
// comments in any combination, stopping at the first byte that is none
// of those.
func (d *decoder) skipSpaces() *tokenError {
	for len(d.cur) > 0 {
		d.skipWhitespaces()
		ok, err := d.skipLineComment()
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		ok, err = d.skipMultilineComment()
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		if !d.popNewline() {
			return nil
		}
	}
	return nil
}

// delimTagTable maps a structural byte to its tag; bytes that aren't
// delimiters map to tagUnknown.
var delimTagTable = [256]tokenTag{
	'{': tagOpenBrace,
	'}': tagCloseBrace,
	'[': tagOpenSquare,
	']': tagCloseSquare,
	',': tagComma,
	':': tagColon,
}

func (d *decoder) delimiter() tokenTag {
	tag := delimTagTable[d.cur[0]]
	if tag != tagUnknown {
		d.popBytes(1)
	}
	return tag
}

// escapeAllowed is the full set of escape targets accepted inside a
// double- or single-quoted string: the two quote characters (so that
// either kind of string can escape a quote it doesn't strictly need to,
// without penalty), the backslash itself, and the usual short C-style
// escapes. \uXXXX is deliberately not supported -- every character qjson
// can represent is already typeable as raw UTF-8.
func escapeAllowed(c byte) bool {
	switch c {
	case '"', '\'', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return true
	}
	return false
}

// parseQuotedString scans a string delimited by quoteChar, validating
// escape sequences as it goes (so that errInvalidEscapeSequence is
// reported at the backslash, not discovered later at emission time), and
// returns the raw source span including both delimiters.
func (d *decoder) parseQuotedString(quoteChar byte, unclosedErr, newlineErr string) ([]byte, *tokenError) {
	startPos := d.pos
	startOffset := d.pos.byteOffset
	d.popBytes(1)
	for {
		if len(d.cur) == 0 {
			return nil, &tokenError{startPos, unclosedErr}
		}
		if d.cur[0] == '\\' {
			if len(d.cur) < 2 {
				return nil, &tokenError{startPos, unclosedErr}
			}
			if !escapeAllowed(d.cur[1]) {
				return nil, &tokenError{d.pos, errInvalidEscapeSequence}
			}
			d.popBytes(2)
			continue
		}
		if d.cur[0] == quoteChar {
			d.popBytes(1)
			return d.in[startOffset:d.pos.byteOffset], nil
		}
		if isNewline(d.cur) != 0 {
			return nil, &tokenError{startPos, newlineErr}
		}
		n, errMsg := utf8CharLen(d.cur)
		if errMsg != "" {
			return nil, &tokenError{d.pos, errMsg}
		}
		d.popBytes(n)
	}
}

func (d *decoder) parseDoubleQuotedString() ([]byte, *tokenError) {
	return d.parseQuotedString('"', errUnclosedDoubleQuoteString, errNewlineInDoubleQuoteString)
}

func (d *decoder) parseSingleQuotedString() ([]byte, *tokenError) {
	return d.parseQuotedString('\'', errUnclosedSingleQuoteString, errNewlineInSingleQuoteString)
}

// quotelessStopTable marks the bytes that are candidates for ending a
// quoteless string. Not every occurrence of one of these bytes actually
// ends the span -- see parseQuotelessString -- but no other byte ever
// does.
var quotelessStopTable = [256]bool{
	'\n': true, '\r': true, '#': true, ',': true, ':': true,
	'[': true, ']': true, '{': true, '}': true, '/': true,
}

// lenISODateTime returns 0 unless the cursor sits on a ':' that is at
// least 13 bytes into the input. It then looks 13 bytes back -- the exact
// width of "YYYY-MM-DDTHH" -- and tries to parse an ISO-8601 date-time
// starting there. If one matches past the colon, the colon and whatever
// follows through the end of the match is not a quoteless-string
// terminator; it's already been claimed by the second half of a
// timestamp.
func (d *decoder) lenISODateTime() int {
	if d.cur[0] != ':' || d.pos.byteOffset < 13 {
		return 0
	}
	v := d.in[d.pos.byteOffset-13:]
	n := parseISODateTimeLiteral(v)
	if n > 13 {
		return n - 13
	}
	return 0
}

// parseQuotelessString scans a bare, unquoted value. It stops at any of
// the structural bytes in quotelessStopTable, except: a lone '/' that
// isn't starting "//" or "/*" is just a literal slash; a lone '\r' not
// followed by '\n' is not a line ending and falls through to the normal
// character path, where it promptly fails as an invalid control byte;
// and a ':' may be swallowed whole, along with the rest of a timestamp,
// if it's the middle of an ISO-8601 literal (see lenISODateTime).
// Leading and embedded whitespace is skipped without ending the span, so
// "1   +   2" quotelessly reads as one value, but trailing whitespace is
// not part of the returned span.
func (d *decoder) parseQuotelessString() ([]byte, *tokenError) {
	startOffset := d.pos.byteOffset
	endOffset := startOffset
	for len(d.cur) > 0 {
		if n := isWhitespace(d.cur); n != 0 {
			d.popBytes(n)
			continue
		}
		b := d.cur[0]
		if quotelessStopTable[b] {
			isRealStop := (b == '/' && len(d.cur) > 1 && (d.cur[1] == '/' || d.cur[1] == '*')) ||
				isNewline(d.cur) != 0 ||
				(b != '\r' && b != '/')
			if isRealStop {
				n := d.lenISODateTime()
				if n == 0 {
					break
				}
				d.popBytes(n)
				endOffset = d.pos.byteOffset
				continue
			}
		}
		n, errMsg := utf8CharLen(d.cur)
		if errMsg != "" {
			return nil, &tokenError{d.pos, errMsg}
		}
		d.popBytes(n)
		endOffset = d.pos.byteOffset
	}
	return d.in[startOffset:endOffset], nil
}

// nextToken is the outer tokenizer's entry point: skip spaces and
// comments, then dispatch on the first remaining byte. The end of input
// is reported with the identity-checked sentinel from token.go, never
// with an ordinary error token, so that callers can tell "there was
// nothing left" apart from "there was a syntax error that happens to say
// the same words".
func (d *decoder) nextToken() token {
	if err := d.skipSpaces(); err != nil {
		return token{tag: tagError, pos: err.pos, val: []byte(err.msg)}
	}
	if len(d.cur) == 0 {
		return endOfInputToken(d.pos)
	}
	startPos := d.pos
	if d.cur[0] == '`' {
		val, err := d.parseMultilineString()
		if err != nil {
			return token{tag: tagError, pos: err.pos, val: []byte(err.msg)}
		}
		return token{tag: tagMultilineString, pos: startPos, val: val}
	}
	if d.cur[0] == '"' {
		val, err := d.parseDoubleQuotedString()
		if err != nil {
			return token{tag: tagError, pos: err.pos, val: []byte(err.msg)}
		}
		return token{tag: tagDoubleQuotedString, pos: startPos, val: val}
	}
	if d.cur[0] == '\'' {
		val, err := d.parseSingleQuotedString()
		if err != nil {
			return token{tag: tagError, pos: err.pos, val: []byte(err.msg)}
		}
		return token{tag: tagSingleQuotedString, pos: startPos, val: val}
	}
	if tag := d.delimiter(); tag != tagUnknown {
		return token{tag: tag, pos: startPos}
	}
	val, err := d.parseQuotelessString()
	if err != nil {
		return token{tag: tagError, pos: err.pos, val: []byte(err.msg)}
	}
	if len(val) == 0 {
		return token{tag: tagError, pos: d.pos, val: []byte(errInvalidChar)}
	}
	return token{tag: tagQuotelessString, pos: startPos, val: val}
}
