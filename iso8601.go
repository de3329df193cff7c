package qjson

import (
	"strconv"
	"time"
)

// parseISODateTimeLiteral recognizes "YYYY-MM-DDTHH:MM[:SS[.fraction]][Z|+HH:MM|-HH:MM]"
// at the front of v. It returns 0 if v does not even start with a plausible
// date (wrong punctuation positions), -1 if it looks like an ISO date-time
// but is malformed further in, or the byte length of the match. It does not
// range-check the individual fields -- that is makeTime's job, called from
// decodeISODateTimeLiteral.
//
// A 'Z' or numeric offset is accepted whether or not seconds are present --
// "2020-01-02T03:04+01:00" is just as valid a timestamp as one with ":05"
// inserted before the offset -- so the tail (optional seconds/fraction,
// then Z-or-offset) is parsed by parseISODateTimeTail, starting right
// after the minutes.
func parseISODateTimeLiteral(v []byte) int {
	if len(v) < 16 {
		return 0
	}
	for _, i := range []int{0, 1, 2, 3, 5, 6, 8, 9, 11, 12, 14, 15} {
		if !isIntDigit(v[i]) {
			return 0
		}
	}
	if v[4] != '-' || v[7] != '-' || v[10] != 'T' || v[13] != ':' {
		return 0
	}
	return parseISODateTimeTail(v, 16)
}

// parseISODateTimeTail continues matching after "YYYY-MM-DDTHH:MM" (n is
// 16): optional ":SS[.fraction]", then an optional 'Z' or "+HH:MM"/"-HH:MM"
// offset, which is therefore accepted both right after the minutes and
// after the seconds.
func parseISODateTimeTail(v []byte, n int) int {
	if n >= len(v) {
		return n
	}
	if v[n] == ':' {
		if n+3 > len(v) || !isIntDigit(v[n+1]) || !isIntDigit(v[n+2]) {
			return -1
		}
		n += 3
		if n < len(v) && v[n] == '.' {
			digits := 0
			for n+1+digits < len(v) && isIntDigit(v[n+1+digits]) {
				digits++
			}
			if digits != 3 && digits != 6 {
				return -1
			}
			n += 1 + digits
		}
		if n >= len(v) {
			return n
		}
	}
	if v[n] == 'Z' {
		return n + 1
	}
	if v[n] == '+' || v[n] == '-' {
		if n+6 > len(v) || !isIntDigit(v[n+1]) || !isIntDigit(v[n+2]) ||
			v[n+3] != ':' || !isIntDigit(v[n+4]) || !isIntDigit(v[n+5]) {
			return -1
		}
		return n + 6
	}
	return n
}

func twoDigits(v []byte, i int) int {
	return int(v[i]-'0')*10 + int(v[i+1]-'0')
}

func fourDigits(v []byte) int {
	return int(v[0]-'0')*1000 + int(v[1]-'0')*100 + int(v[2]-'0')*10 + int(v[3]-'0')
}

// makeTime range-checks the fields parseISODateTimeLiteral matched and
// converts them to a UTC Unix timestamp, applying the timezone offset (if
// any) by hand rather than through time.Location, since the offset is
// exactly what was written and carries no DST or historical baggage.
//
// hour may be 24 only when minute, second, and fracSeconds are all zero
// (the "end of day" convention some ISO-8601 producers use); offHour and
// offMinute are always non-negative magnitudes (0..15 and 0..59), with the
// sign carried separately in negOffset -- an offset of "-00:30" has
// offHour == 0, so the sign cannot be folded into offHour without losing
// it.
func makeTime(year, month, day, hour, minute, second int, fracSeconds float64, haveOffset, negOffset bool, offHour, offMinute int) (float64, bool) {
	if year < 1970 || month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, false
	}
	if hour < 0 || hour > 24 {
		return 0, false
	}
	if hour == 24 && (minute != 0 || second != 0 || fracSeconds != 0) {
		return 0, false
	}
	if minute < 0 || minute > 59 {
		return 0, false
	}
	if second < 0 || second > 60 {
		return 0, false
	}
	if offHour < 0 || offHour > 15 || offMinute < 0 || offMinute > 59 {
		return 0, false
	}
	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	v := float64(t.Unix()) + fracSeconds
	if haveOffset {
		offset := float64(offHour)*3600 + float64(offMinute)*60
		if negOffset {
			v += offset
		} else {
			v -= offset
		}
	}
	return v, true
}

// decodeISODateTimeLiteral converts a span parseISODateTimeLiteral already
// validated the syntax of into seconds since the Unix epoch (UTC), as a
// float64 so that sub-second fractions survive.
func decodeISODateTimeLiteral(v []byte) (float64, bool) {
	year := fourDigits(v[0:4])
	month := twoDigits(v, 5)
	day := twoDigits(v, 8)
	hour := twoDigits(v, 11)
	minute := twoDigits(v, 14)
	if len(v) == 16 {
		return makeTime(year, month, day, hour, minute, 0, 0, false, false, 0, 0)
	}
	if v[16] != ':' {
		return decodeISOTail(v, 16, year, month, day, hour, minute, 0, 0)
	}
	second := twoDigits(v, 17)
	n := 19
	var frac float64
	if n < len(v) && v[n] == '.' {
		digitsStart := n + 1
		digits := 0
		for digitsStart+digits < len(v) && isIntDigit(v[digitsStart+digits]) {
			digits++
		}
		raw, err := strconv.ParseInt(string(v[digitsStart:digitsStart+digits]), 10, 64)
		if err != nil {
			return 0, false
		}
		switch digits {
		case 3:
			frac = float64(raw) / 1e3
		case 6:
			frac = float64(raw) / 1e6
		default:
			return 0, false
		}
		n = digitsStart + digits
	}
	return decodeISOTail(v, n, year, month, day, hour, minute, second, frac)
}

// decodeISOTail handles whatever parseISODateTimeTail matched past the
// required date/hour/minute fields (and, when present, seconds/fraction):
// nothing, "Z", or a "+HH:MM"/"-HH:MM" offset.
func decodeISOTail(v []byte, n, year, month, day, hour, minute, second int, frac float64) (float64, bool) {
	if n >= len(v) {
		return makeTime(year, month, day, hour, minute, second, frac, false, false, 0, 0)
	}
	if v[n] == 'Z' {
		return makeTime(year, month, day, hour, minute, second, frac, true, false, 0, 0)
	}
	negOffset := v[n] == '-'
	offHour := twoDigits(v, n+1)
	offMinute := twoDigits(v, n+4)
	return makeTime(year, month, day, hour, minute, second, frac, true, negOffset, offHour, offMinute)
}

// parseFloatStrict decodes a decimal literal byte span (already validated
// by parseDecimalLiteral, underscores and all) into a float64. Go's
// strconv.ParseFloat doesn't accept underscore separators in the exact
// positions qjson's grammar allows, so separators are stripped first.
func parseFloatStrict(v []byte) (float64, bool) {
	if len(v) == 0 {
		return 0, false
	}
	buf := make([]byte, 0, len(v))
	for _, c := range v {
		if c == '_' {
			continue
		}
		buf = append(buf, c)
	}
	f, err := strconv.ParseFloat(string(buf), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
