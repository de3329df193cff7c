package qjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextTok(in string) token {
	d := newDecoder([]byte(in))
	return d.nextToken()
}

func TestNextTokenDelimiters(t *testing.T) {
	tests := []struct {
		in  string
		tag tokenTag
	}{
		{"{", tagOpenBrace},
		{"}", tagCloseBrace},
		{"[", tagOpenSquare},
		{"]", tagCloseSquare},
		{",", tagComma},
		{":", tagColon},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.tag, nextTok(tc.in).tag)
		})
	}
}

func TestNextTokenEndOfInput(t *testing.T) {
	assert.True(t, isEndOfInput(nextTok("")))
	assert.True(t, isEndOfInput(nextTok("   \n\t")))
	assert.True(t, isEndOfInput(nextTok("# just a comment")))
}

func TestNextTokenComments(t *testing.T) {
	d := newDecoder([]byte("  # line comment\n  a"))
	tk := d.nextToken()
	require.Equal(t, tagQuotelessString, tk.tag)
	assert.Equal(t, "a", string(tk.val))

	d = newDecoder([]byte("/* block */a"))
	tk = d.nextToken()
	require.Equal(t, tagQuotelessString, tk.tag)
	assert.Equal(t, "a", string(tk.val))

	d = newDecoder([]byte("// line comment\na"))
	tk = d.nextToken()
	require.Equal(t, tagQuotelessString, tk.tag)
	assert.Equal(t, "a", string(tk.val))
}

func TestNextTokenUnclosedBlockComment(t *testing.T) {
	d := newDecoder([]byte("/* never closes"))
	tk := d.nextToken()
	require.Equal(t, tagError, tk.tag)
	assert.Equal(t, errUnclosedSlashStarComment, string(tk.val))
}

func TestParseDoubleQuotedString(t *testing.T) {
	d := newDecoder([]byte(`"hello\nworld"`))
	tk := d.nextToken()
	require.Equal(t, tagDoubleQuotedString, tk.tag)
	assert.Equal(t, `"hello\nworld"`, string(tk.val))
}

func TestParseDoubleQuotedStringErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantMsg string
	}{
		{"unclosed", `"abc`, errUnclosedDoubleQuoteString},
		{"newline inside", "\"abc\ndef\"", errNewlineInDoubleQuoteString},
		{"bad escape", `"ab\qcd"`, errInvalidEscapeSequence},
		{"trailing backslash", `"ab\`, errUnclosedDoubleQuoteString},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk := nextTok(tc.in)
			require.Equal(t, tagError, tk.tag)
			assert.Equal(t, tc.wantMsg, string(tk.val))
		})
	}
}

func TestParseSingleQuotedString(t *testing.T) {
	d := newDecoder([]byte(`'hello'`))
	tk := d.nextToken()
	require.Equal(t, tagSingleQuotedString, tk.tag)
	assert.Equal(t, `'hello'`, string(tk.val))
}

func TestQuotelessStringStopBytes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"stops at comma", "hello,world", "hello"},
		{"stops at colon", "hello:world", "hello"},
		{"stops at close brace", "hello}", "hello"},
		{"stops at close square", "hello]", "hello"},
		{"embeds whitespace", "hello   world", "hello   world"},
		{"lone slash is literal", "a/b", "a/b"},
		{"stops before line comment", "a //comment", "a"},
		{"stops before block comment", "a /*comment*/", "a"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk := nextTok(tc.in)
			require.Equal(t, tagQuotelessString, tk.tag)
			assert.Equal(t, tc.want, string(tk.val))
		})
	}
}

func TestQuotelessStringLoneCarriageReturnIsInvalid(t *testing.T) {
	tk := nextTok("a\rb")
	require.Equal(t, tagError, tk.tag)
	assert.Equal(t, errInvalidChar, string(tk.val))
}

func TestLenISODateTimeSwallowsColon(t *testing.T) {
	// The 13-byte lookback only fires once the cursor is at least 13
	// bytes into the input; with the value at the very start, the colon
	// after "YYYY-MM-DDTHH" sits at offset 13 exactly.
	in := "k: 1970-01-01T00:00:00Z"
	tk := nextTok(in[3:]) // skip "k: " so the quoteless value starts fresh
	require.Equal(t, tagQuotelessString, tk.tag)
	assert.Equal(t, "1970-01-01T00:00:00Z", string(tk.val))
}
