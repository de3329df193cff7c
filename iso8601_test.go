package qjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseISODateTimeLiteral(t *testing.T) {
	tests := []struct {
		in      string
		wantLen int
	}{
		{"1970-01-01T00:00", 16},
		{"1970-01-01T00:00:00", 19},
		{"1970-01-01T00:00:00Z", 20},
		{"1970-01-01T00:00:00.123Z", 24},
		{"1970-01-01T00:00:00.123456Z", 27},
		{"1970-01-01T00:00:00+01:00", 25},
		{"1970-01-01T00:00:00-05:30", 25},
		{"1970-01-01T00:00Z", 17},
		{"1970-01-01T00:00+01:00", 22},
		{"1970-01-01T00:00-05:30", 22},
		{"1997-07-16T19:20+01:00", 22},
		{"not a date", 0},
		{"1970x01-01T00:00", 0},
		{"1970-01-01T00:00:0", -1},
		{"1970-01-01T00:00+01", -1},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.wantLen, parseISODateTimeLiteral([]byte(tc.in)))
		})
	}
}

func TestDecodeISODateTimeLiteral(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"1970-01-01T00:00", 0, true},
		{"1970-01-01T00:00:00Z", 0, true},
		{"1970-01-01T00:01:00Z", 60, true},
		{"1970-01-01T01:00:00Z", 3600, true},
		{"1970-01-01T00:00:00.500Z", 0.5, true},
		{"1970-01-01T00:00:00+00:30", -1800, true},
		{"1970-01-01T00:00:00-00:30", 1800, true},
		{"1970-01-01T00:00:00+01:00", -3600, true},
		{"1970-01-01T00:00:00-01:00", 3600, true},
		{"1970-01-01T00:00Z", 0, true},
		{"1970-01-01T00:00+01:00", -3600, true},
		{"1970-01-01T00:00-01:00", 3600, true},
		{"1997-07-16T19:20+01:00", 869080800, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := decodeISODateTimeLiteral([]byte(tc.in))
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestMakeTimeRangeChecks(t *testing.T) {
	_, ok := makeTime(1969, 1, 1, 0, 0, 0, 0, false, false, 0, 0)
	assert.False(t, ok, "year before 1970 must be rejected")

	_, ok = makeTime(1970, 13, 1, 0, 0, 0, 0, false, false, 0, 0)
	assert.False(t, ok, "month out of range must be rejected")

	_, ok = makeTime(1970, 1, 1, 24, 0, 0, 0, false, false, 0, 0)
	assert.True(t, ok, "hour 24 with zero minute/second/frac is the end-of-day convention")

	_, ok = makeTime(1970, 1, 1, 24, 1, 0, 0, false, false, 0, 0)
	assert.False(t, ok, "hour 24 with nonzero minute must be rejected")

	_, ok = makeTime(1970, 1, 1, 0, 0, 0, 0, true, false, 16, 0)
	assert.False(t, ok, "offset hour outside 0..15 must be rejected")

	v, ok := makeTime(1970, 1, 1, 0, 0, 0, 0, true, true, 0, 30)
	assert.True(t, ok)
	assert.Equal(t, float64(1800), v, "a negative offset with zero hour must not lose its sign")
}

func TestParseFloatStrict(t *testing.T) {
	f, ok := parseFloatStrict([]byte("1_234.5"))
	assert.True(t, ok)
	assert.Equal(t, 1234.5, f)

	_, ok = parseFloatStrict([]byte(""))
	assert.False(t, ok)
}
