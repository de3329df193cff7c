package qjson

// literalValue is the decoded form of one of the fixed boolean/null
// keywords a quoteless string may spell. isNull distinguishes the null
// case from a false boolean, since both have a zero b.
type literalValue struct {
	isNull bool
	b      bool
}

// isLeadByte reports whether b is either case of the ASCII letter want
// (want must be lowercase).
func isLeadByte(b, want byte) bool {
	return b == want || b == want-'a'+'A'
}

// matchLiteralValue recognizes the keyword spellings a bare quoteless
// string may use for true, false, and null. Each keyword's leading letter
// may be either case independently of the rest, but the remaining letters
// must be uniformly lower- or uppercase -- "True", "TRUE", and "true" are
// all recognized (as is the less likely "tRUE"), but "TruE" is not. This
// mirrors the per-segment case check in the original grammar's
// isLiteralValue, which tests the lead byte and the rest of the word
// separately rather than folding the whole span to one case.
//
// The original's switch additionally falls through by length -- a 5-byte
// span that fails the "false" check is retested against the 4-byte
// "null"/"true" patterns using only its first four bytes, discarding the
// fifth -- which would make a token like "truex" silently decode as the
// boolean true with its trailing byte dropped. That isn't reproduced
// here: each keyword is matched only at its own exact length.
func matchLiteralValue(s []byte) (literalValue, bool) {
	switch len(s) {
	case 5:
		if isLeadByte(s[0], 'f') && (string(s[1:]) == "alse" || string(s[1:]) == "ALSE") {
			return literalValue{b: false}, true
		}
	case 4:
		if isLeadByte(s[0], 'n') && (string(s[1:]) == "ull" || string(s[1:]) == "ULL") {
			return literalValue{isNull: true}, true
		}
		if isLeadByte(s[0], 't') && (string(s[1:]) == "rue" || string(s[1:]) == "RUE") {
			return literalValue{b: true}, true
		}
	case 3:
		if isLeadByte(s[0], 'y') && (string(s[1:]) == "es" || string(s[1:]) == "ES") {
			return literalValue{b: true}, true
		}
		if isLeadByte(s[0], 'o') && (string(s[1:]) == "ff" || string(s[1:]) == "FF") {
			return literalValue{b: false}, true
		}
	case 2:
		if isLeadByte(s[0], 'o') && (s[1] == 'n' || s[1] == 'N') {
			return literalValue{b: true}, true
		}
		if isLeadByte(s[0], 'n') && (s[1] == 'o' || s[1] == 'O') {
			return literalValue{b: false}, true
		}
	}
	return literalValue{}, false
}
