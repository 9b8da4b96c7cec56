package humanize

import (
	"fmt"
	"strings"
)

// MaxRoman is the largest number Romanize accepts (MMMMCMXCIX).
const MaxRoman = 4999

var romanNumerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// Romanize converts n in [1, MaxRoman] to a Roman numeral, lower-cased
// unless upper is set.
func Romanize(n int, upper bool) (string, error) {
	if n < 1 || n > MaxRoman {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}

	var b strings.Builder
	for _, rn := range romanNumerals {
		for n >= rn.value {
			b.WriteString(rn.symbol)
			n -= rn.value
		}
	}

	if upper {
		return b.String(), nil
	}
	return strings.ToLower(b.String()), nil
}
