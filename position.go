package qjson

// position tracks a location in the input: the byte offset of the current
// character, the byte offset of the start of the current line, and the
// 0-based line index. Column numbers are not stored; they are computed on
// demand by counting UTF-8 code points from the line start, since most
// positions are never turned into an error.
type position struct {
	byteOffset int
	lineStart  int
	line       int
}

// byteClass partitions every possible input byte into one of eight codes:
// invalid (s0), ASCII printable-or-tab (s1), or one of six multibyte lead
// categories. The low nibble of each multibyte code is the total length of
// the UTF-8 sequence it introduces; the high nibble selects a row in
// utf8Range used to validate the second byte.
type byteClass = byte

const (
	s0 byteClass = 0x00 // invalid (control byte other than tab, or a stray continuation/lead byte)
	s1 byteClass = 0x01 // ASCII space 0x09 or 0x20-0x7E
	s2 byteClass = 0x12 // 2-byte sequence, range rule 1
	s3 byteClass = 0x23 // 3-byte sequence, range rule 2
	s4 byteClass = 0x13 // 3-byte sequence, range rule 1
	s5 byteClass = 0x33 // 3-byte sequence, range rule 3
	s6 byteClass = 0x44 // 4-byte sequence, range rule 4
	s7 byteClass = 0x14 // 4-byte sequence, range rule 1
	s8 byteClass = 0x54 // 4-byte sequence, range rule 5
)

// utf8ClassTable classifies the lead byte of a UTF-8 character. Index 0x09
// (tab) is the sole control byte accepted as printable; every other C0/C1
// control byte and every stray continuation byte (0x80-0xBF) is s0.
var utf8ClassTable = [256]byteClass{
	s0, s0, s0, s0, s0, s0, s0, s0, s0, s1, s0, s0, s0, s0, s0, s0, // 00
	s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, // 10
	s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 20
	s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 30
	s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 40
	s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 50
	s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 60
	s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s0, // 70
	s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, // 80
	s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, // 90
	s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, // A0
	s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, // B0
	s0, s0, s2, s2, s2, s2, s2, s2, s2, s2, s2, s2, s2, s2, s2, s2, // C0
	s2, s2, s2, s2, s2, s2, s2, s2, s2, s2, s2, s2, s2, s2, s2, s2, // D0
	s3, s4, s4, s4, s4, s4, s4, s4, s4, s4, s4, s4, s4, s5, s4, s4, // E0
	s6, s7, s7, s7, s8, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, s0, // F0
}

const (
	utf8Lo byte = 0x80
	utf8Hi byte = 0xBF
)

// utf8RangeTable gives the (lo, hi) bounds the second byte of a multibyte
// sequence must fall within, indexed by (class>>4)<<1. Row 0 is unused
// (classes s0/s1 never reach this table).
var utf8RangeTable = [16]byte{
	0, 0,
	utf8Lo, utf8Hi,
	0xA0, utf8Hi,
	utf8Lo, 0x9F,
	0x90, utf8Hi,
	utf8Lo, 0x8F,
}

// isWhitespace returns the byte length of the whitespace character at the front
// of b: 1 for space or tab, 2 for the non-breaking space 0xC2 0xA0, 0
// otherwise.
func isWhitespace(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	if b[0] == ' ' || b[0] == '\t' {
		return 1
	}
	if len(b) > 1 && b[0] == 0xC2 && b[1] == 0xA0 {
		return 2
	}
	return 0
}

// isNewline returns the byte length of the newline at the front of b: 1
// for "\n", 2 for "\r\n", 0 otherwise. A lone "\r" or "\n\r" is not a
// newline.
func isNewline(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	if b[0] == '\n' {
		return 1
	}
	if len(b) > 1 && b[0] == '\r' && b[1] == '\n' {
		return 2
	}
	return 0
}

// utf8CharLen returns the byte length of the valid UTF-8 character at the
// front of b, or 0 with an error tag if b is empty (no error: caller must
// check length separately), errInvalidChar, or errTruncatedChar.
func utf8CharLen(b []byte) (int, string) {
	if len(b) == 0 {
		return 0, ""
	}
	class := utf8ClassTable[b[0]]
	if class == s1 {
		return 1, ""
	}
	if class == s0 {
		return 0, errInvalidChar
	}
	n := int(class & 0x0F)
	if n > len(b) {
		return 0, errTruncatedChar
	}
	row := (class >> 4) << 1
	lo, hi := utf8RangeTable[row], utf8RangeTable[row+1]
	if b[1] < lo || b[1] > hi {
		return 0, errInvalidChar
	}
	if n >= 3 {
		if b[2] < utf8Lo || b[2] > utf8Hi {
			return 0, errInvalidChar
		}
		if n == 4 {
			if b[3] < utf8Lo || b[3] > utf8Hi {
				return 0, errInvalidChar
			}
		}
	}
	return n, ""
}

// columnOf counts the UTF-8 code points in b, which must be a sequence of
// valid UTF-8 characters (the bytes from a line start up to an error
// position). The result is 0-based; callers add 1 to report a 1-based
// column.
func columnOf(b []byte) int {
	count := 0
	for len(b) > 0 {
		n := int(utf8ClassTable[b[0]] & 0x0F)
		if n == 0 || n > len(b) {
			break
		}
		b = b[n:]
		count++
	}
	return count
}
