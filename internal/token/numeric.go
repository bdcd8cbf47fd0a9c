package token

import (
	"math"
	"strconv"

	"github.com/talav/c2openapi/internal/apierr"
)

// scanNumeric consumes a numeric literal starting at s.pos and returns its
// discriminated NumericLiteral. It never aborts the scan: on overflow it
// saturates Magnitude, sets Overflowed, and also returns an
// ErrOutOfRange-kind error, which Scan reports without stopping
// tokenization.
func (s *scanner) scanNumeric() (*NumericLiteral, error) {
	start := s.pos
	base := 10

	if s.src[s.pos] == '0' && (s.peek(1) == 'x' || s.peek(1) == 'X') {
		base = 16
		s.pos += 2
	} else if s.src[s.pos] == '0' && (s.peek(1) == 'b' || s.peek(1) == 'B') {
		base = 2
		s.pos += 2
	} else if s.src[s.pos] == '0' && isDigit(s.peek(1)) {
		base = 8
		s.pos++
	}

	isFloat := false
	hasExponent := false

digits:
	for s.pos < len(s.src) {
		c := s.src[s.pos]

		switch {
		case base == 16 && isHexDigit(c):
			s.pos++
		case base != 16 && isDigit(c):
			s.pos++
		case c == '.' && !isFloat:
			isFloat = true
			s.pos++
		case base == 16 && (c == 'p' || c == 'P') && !hasExponent:
			isFloat = true
			hasExponent = true
			s.pos++

			if s.pos < len(s.src) && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
				s.pos++
			}
		case base != 16 && (c == 'e' || c == 'E') && !hasExponent:
			isFloat = true
			hasExponent = true
			s.pos++

			if s.pos < len(s.src) && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
				s.pos++
			}
		default:
			break digits
		}
	}

	digitsSlice := s.src[start:s.pos]

	if isFloat {
		return s.finishFloat(digitsSlice)
	}

	return s.finishInteger(digitsSlice, base)
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func (s *scanner) finishFloat(digits []byte) (*NumericLiteral, error) {
	lit := &NumericLiteral{IsFloat: true}

	text := string(digits)

	v, err := strconv.ParseFloat(text, 64)
	if err == nil {
		lit.Value = v
	} else {
		// Out of range for float64: saturate to +Inf with the literal's sign.
		lit.Value = math.Inf(1)
	}

	s.consumeFloatSuffix(lit)

	return lit, nil
}

func (s *scanner) consumeFloatSuffix(lit *NumericLiteral) {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case 'f', 'F':
			lit.FloatSfx = true
			s.pos++
		case 'l', 'L':
			lit.LongDouble = true
			s.pos++
		case 'd', 'D':
			if s.peek(1) == 'f' || s.peek(1) == 'F' {
				lit.Decimal32 = true
				s.pos += 2
			} else if s.peek(1) == 'd' || s.peek(1) == 'D' {
				lit.Decimal64 = true
				s.pos += 2
			} else if s.peek(1) == 'l' || s.peek(1) == 'L' {
				lit.Decimal128 = true
				s.pos += 2
			} else {
				return
			}
		default:
			return
		}
	}
}

func (s *scanner) finishInteger(digits []byte, base int) (*NumericLiteral, error) {
	lit := &NumericLiteral{Base: base}

	text := string(digits)

	switch base {
	case 16:
		text = text[2:] // strip 0x/0X
	case 2:
		text = text[2:] // strip 0b/0B
	}

	if text == "" {
		text = "0"
	}

	mag, err := strconv.ParseUint(text, base, 64)

	var rangeErr error

	if err != nil {
		lit.Magnitude = math.MaxUint64
		lit.Overflowed = true
		rangeErr = apierr.New(apierr.KindOutOfRange, "token", "integer literal out of range", err)
	} else {
		lit.Magnitude = mag
	}

	s.consumeIntSuffix(lit)

	return lit, rangeErr
}

func (s *scanner) consumeIntSuffix(lit *NumericLiteral) {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case 'u', 'U':
			lit.Unsigned = true
			s.pos++
		case 'l', 'L':
			if lit.Long {
				lit.LongLong = true
			} else {
				lit.Long = true
			}

			s.pos++
		default:
			return
		}
	}
}
