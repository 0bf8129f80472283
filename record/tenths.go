package record

import "strconv"

const (
	MinTenths = -999
	MaxTenths = 999
)

// ParseTenths parses a value of the form -?d{1,2}.d into tenths, so "-12.3"
// becomes -123. Anything else, including a missing fractional digit, is
// rejected.
// Inspired by https://benhoyt.com/writings/go-1brc/
func ParseTenths(b []byte) (int64, bool) {
	var i int
	var negative bool

	if len(b) > 0 && b[0] == '-' {
		negative = true
		i++
	}

	digits := b[i:]
	var temp int64
	switch len(digits) {
	case 3:
		if !isDigit(digits[0]) || digits[1] != '.' || !isDigit(digits[2]) {
			return 0, false
		}
		temp = int64(digits[0]-'0')*10 + int64(digits[2]-'0')
	case 4:
		if !isDigit(digits[0]) || !isDigit(digits[1]) || digits[2] != '.' || !isDigit(digits[3]) {
			return 0, false
		}
		temp = int64(digits[0]-'0')*100 + int64(digits[1]-'0')*10 + int64(digits[3]-'0')
	default:
		return 0, false
	}

	if negative {
		temp *= -1
	}
	return temp, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// AppendTenths appends v, in tenths, with exactly one fractional digit.
func AppendTenths(dst []byte, v int64) []byte {
	if v < 0 {
		dst = append(dst, '-')
		v = -v
	}
	dst = strconv.AppendInt(dst, v/10, 10)
	dst = append(dst, '.')
	return append(dst, byte('0'+v%10))
}

func FormatTenths(v int64) string {
	return string(AppendTenths(make([]byte, 0, 8), v))
}
