package numwords

import "strings"

// Bounds of the Roman numeral domain.
const (
	MinRoman = 1
	MaxRoman = 3999
)

type romanDigit struct {
	value  int64
	symbol string
}

// romanDigits lists values in descending order, subtractive pairs included.
var romanDigits = [...]romanDigit{
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

// Roman returns the Roman numeral for n in [1, 3999].
func Roman(n int64) (string, error) {
	if n < MinRoman || n > MaxRoman {
		return "", invalidRoman(n)
	}

	var b strings.Builder
	for _, digit := range romanDigits {
		for n >= digit.value {
			b.WriteString(digit.symbol)
			n -= digit.value
		}
	}
	return b.String(), nil
}
