package qjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumberExprStart(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"5", true},
		{"-5", true},
		{"+5", true},
		{"(5)", true},
		{".5", true},
		{"  5", true},
		{"--5", true},
		{"(", false},
		{"-", false},
		{"-hello", false},
		{"(foo)", false},
		{"~bar", false},
		{"~5", false},
		{".hello", false},
		{"", false},
		{"hello", false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, isNumberExprStart([]byte(tc.in)))
		})
	}
}
