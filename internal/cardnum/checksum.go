package cardnum

// LegacySum doubles every digit at an even index counting from the left and
// adds the odd-index digits unchanged. Doubled values are not folded.
func LegacySum(d Digits) int {
	total := 0
	for i, v := range d {
		if i%2 == 0 {
			total += v * 2
		} else {
			total += v
		}
	}
	return total
}

// LegacyChecksum returns the sum of the decimal digits of LegacySum(d).
func LegacyChecksum(d Digits) int {
	return DigitSum(LegacySum(d))
}

// DigitSum adds up the decimal digits of n.
func DigitSum(n int) int {
	if n < 0 {
		n = -n
	}
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// LuhnSum is the canonical Luhn sum: every second digit from the rightmost is
// doubled and folded back into 0-9.
func LuhnSum(d Digits) int {
	sum, dbl := 0, false
	for i := len(d) - 1; i >= 0; i-- {
		v := d[i]
		if dbl {
			v *= 2
			if v > 9 {
				v -= 9
			}
		}
		sum += v
		dbl = !dbl
	}
	return sum
}

// ValidLuhn reports whether d passes the canonical Luhn check.
func ValidLuhn(d Digits) bool {
	return len(d) > 0 && LuhnSum(d)%10 == 0
}
