package qjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWhitespaceOnly(t *testing.T) {
	assert.True(t, isWhitespaceOnly([]byte("")))
	assert.True(t, isWhitespaceOnly([]byte("   \t")))
	assert.False(t, isWhitespaceOnly([]byte("  a")))
}

func TestDecodeMultilineVariants(t *testing.T) {
	// The closing backtick always sits on its own line, so the newline
	// before it is always part of the content -- every case here ends
	// with one trailing separator.
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"lf separator",
			"a:\n  `\\n\n  one\n  two\n  `",
			`{"a":"one\ntwo\n"}`,
		},
		{
			"crlf separator",
			"a:\n  `\\r\\n\n  one\n  two\n  `",
			`{"a":"one\r\ntwo\r\n"}`,
		},
		{
			"escaped backtick in content",
			"a:\n  `\\n\n  one \\` two\n  `",
			`{"a":"one ` + "`" + ` two\n"}`,
		},
		{
			"empty margin at column zero",
			"a:\n`\\n\none\n`",
			`{"a":"one\n"}`,
		},
		{
			"single line content",
			"a:\n  `\\n\n  solo\n  `",
			`{"a":"solo\n"}`,
		},
		{
			"line comment after newline specifier",
			"a:\n  `\\n # note\n  one\n  `",
			`{"a":"one\n"}`,
		},
		{
			"embedded control bytes",
			"a:\n  `\\n\n  one\x01two\x0c\n  `",
			`{"a":"one\u0001two\f\n"}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Decode([]byte(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(out))
		})
	}
}

func TestDecodeMultilineErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantMsg string
	}{
		{"missing newline specifier", "a:\n  `x\n  one\n  `", errMissingNewlineSpecifier},
		{"unrecognized newline specifier", "a:\n  `\\x\n  one\n  `", errInvalidNewlineSpecifier},
		{"mismatched margin", "a:\n  `\\n\none\n  `", errInvalidMarginChar},
		{"unclosed multiline", "a:\n  `\\n\n  one", errUnclosedMultiline},
		{"non-whitespace before backtick", "a:1,b:`\\n\n  one\n  `", errMarginMustBeWhitespaceOnly},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.in))
			require.Error(t, err)
			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tc.wantMsg, de.Message)
		})
	}
}
