package mangle

import "errors"

// digits maps a 5-bit unit (4 payload bits plus the 0x10 continuation bit)
// to one character. Final units (< 0x10) are plain lowercase hex digits.
const digits = "0123456789abcdefghijklmnopqrstuv"

const (
	payloadMask  = 0x0f
	continuation = 0x10
)

var ErrNegativeDelta = errors.New("mangle: negative position delta")

// appendVLQ emits n least-significant nibble first, flagging every unit but
// the last with the continuation bit.
func appendVLQ(dst []byte, n int) ([]byte, error) {
	if n < 0 {
		return dst, ErrNegativeDelta
	}
	for {
		unit := n & payloadMask
		n >>= 4
		if n == 0 {
			return append(dst, digits[unit]), nil
		}
		dst = append(dst, digits[unit|continuation])
	}
}

func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'v':
		return int(c-'a') + 10, true
	}
	return 0, false
}

// decodeVLQ reads a sequence of VLQ values.
func decodeVLQ(s string) ([]int, error) {
	var (
		out   []int
		value int
		shift uint
	)
	for i := 0; i < len(s); i++ {
		unit, ok := digitValue(s[i])
		if !ok {
			return nil, &DecodeError{Reason: "invalid digit in position suffix", Offset: i}
		}
		if shift > 56 {
			return nil, &DecodeError{Reason: "position value overflows", Offset: i}
		}
		value |= (unit & payloadMask) << shift
		if unit&continuation != 0 {
			shift += 4
			continue
		}
		out = append(out, value)
		value, shift = 0, 0
	}
	if shift != 0 {
		return nil, &DecodeError{Reason: "truncated position suffix", Offset: len(s)}
	}
	return out, nil
}
