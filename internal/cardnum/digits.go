package cardnum

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmpty is returned for blank input.
	ErrEmpty = errors.New("card number is required")
	// ErrNonDigit is returned when the input holds anything other than 0-9.
	ErrNonDigit = errors.New("card number must contain digits only")
)

// Digits is a card number as integer digits, leftmost digit first.
type Digits []int

// Parse converts s into digits. Surrounding whitespace is ignored; anything
// else that is not 0-9 is rejected.
func Parse(s string) (Digits, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}
	d := make(Digits, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: %q at position %d", ErrNonDigit, c, i)
		}
		d[i] = int(c - '0')
	}
	return d, nil
}

// FromUint64 returns the decimal digits of n. Zero yields a single 0 digit.
func FromUint64(n uint64) Digits {
	d, _ := Parse(strconv.FormatUint(n, 10))
	return d
}

// At returns the digit at index i and false when i is out of range.
func (d Digits) At(i int) (int, bool) {
	if i < 0 || i >= len(d) {
		return 0, false
	}
	return d[i], true
}

func (d Digits) String() string {
	var sb strings.Builder
	sb.Grow(len(d))
	for _, v := range d {
		sb.WriteByte('0' + byte(v))
	}
	return sb.String()
}

// NormalizePAN strips spaces, tabs and dashes.
func NormalizePAN(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-':
			return -1
		default:
			return r
		}
	}, s)
}

// MaskPAN keeps the first 6 and last 4 digits of long numbers and only the
// last 4 of short ones.
func MaskPAN(pan string) string {
	cleaned := NormalizePAN(pan)
	n := len(cleaned)
	if n == 0 {
		return ""
	}
	if n <= 4 {
		return strings.Repeat("*", n)
	}
	if n < 10 {
		return strings.Repeat("*", n-4) + cleaned[n-4:]
	}
	return cleaned[:6] + strings.Repeat("*", n-10) + cleaned[n-4:]
}
