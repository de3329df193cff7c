package qjson

// tokenTag identifies the kind of a token produced by either the outer
// tokenizer or the numeric sub-engine's inner tokenizer. Both tokenizers
// share one enum, exactly as the original C source does with its single
// tokenTag_t: the outer tokenizer only ever produces the structural and
// string tags, and the inner tokenizer only ever produces the value and
// operator tags, but unifying them lets the Pratt precedence/dispatch
// tables (see eval.go) be indexed directly by tag.
type tokenTag int

const (
	tagUnknown tokenTag = iota
	tagError
	tagIntegerVal
	tagDecimalVal
	tagPlus
	tagMinus
	tagMultiplication
	tagDivision
	tagXor
	tagAnd
	tagOr
	tagInverse
	tagModulo
	tagOpenParen
	tagCloseParen
	tagWeeks
	tagDays
	tagHours
	tagMinutes
	tagSeconds
	tagOpenBrace
	tagCloseBrace
	tagOpenSquare
	tagCloseSquare
	tagColon
	tagQuotelessString
	tagDoubleQuotedString
	tagSingleQuotedString
	tagMultilineString
	tagComma
)

func (t tokenTag) String() string {
	switch t {
	case tagUnknown:
		return "Unknown"
	case tagError:
		return "Error"
	case tagIntegerVal:
		return "IntegerVal"
	case tagDecimalVal:
		return "DecimalVal"
	case tagPlus:
		return "Plus"
	case tagMinus:
		return "Minus"
	case tagMultiplication:
		return "Multiplication"
	case tagDivision:
		return "Division"
	case tagXor:
		return "Xor"
	case tagAnd:
		return "And"
	case tagOr:
		return "Or"
	case tagInverse:
		return "Inverse"
	case tagModulo:
		return "Modulo"
	case tagOpenParen:
		return "OpenParen"
	case tagCloseParen:
		return "CloseParen"
	case tagWeeks:
		return "Weeks"
	case tagDays:
		return "Days"
	case tagHours:
		return "Hours"
	case tagMinutes:
		return "Minutes"
	case tagSeconds:
		return "Seconds"
	case tagOpenBrace:
		return "OpenBrace"
	case tagCloseBrace:
		return "CloseBrace"
	case tagOpenSquare:
		return "OpenSquare"
	case tagCloseSquare:
		return "CloseSquare"
	case tagColon:
		return "Colon"
	case tagQuotelessString:
		return "QuotelessString"
	case tagDoubleQuotedString:
		return "DoubleQuotedString"
	case tagSingleQuotedString:
		return "SingleQuotedString"
	case tagMultilineString:
		return "MultilineString"
	case tagComma:
		return "Comma"
	default:
		return "<unknown tokenTag>"
	}
}

// token is one unit of the outer tokenizer's output. val borrows its bytes
// from the input slice given to Decode and must not outlive it. For an
// error token, val holds the error identifier string and pos is the exact
// position the error was diagnosed at, not the cursor position when
// nextToken happened to notice it.
type token struct {
	tag tokenTag
	pos position
	val []byte
}

// errEndOfInputBytes is compared by identity (pointer equality on the
// backing array), never by string content, so that the benign
// end-of-input signal can never be confused with a user-facing error that
// happens to have the same text. endOfInputToken() constructs the
// sentinel token; isEndOfInput checks for it.
var errEndOfInputBytes = []byte(errEndOfInput)

func endOfInputToken(pos position) token {
	return token{tag: tagError, pos: pos, val: errEndOfInputBytes}
}

func isEndOfInput(t token) bool {
	return t.tag == tagError && len(t.val) > 0 && &t.val[0] == &errEndOfInputBytes[0]
}
