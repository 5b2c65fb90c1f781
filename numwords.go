// Package numwords renders integers as words, ordinals, currency phrases and
// Roman numerals in English, Spanish and Arabic.
//
// Rendering is table driven: every language is one immutable rule table
// (digit words, teens, tens, irregular hundreds, scale nouns, conjunctions,
// gender variants, ordinal and currency rules) consulted by a single
// algorithm. Built-in tables are embedded and decoded once.
//
//	s, _ := numwords.Convert(1234, numwords.ConversionOptions{})
//	// "One Thousand Two Hundred and Thirty Four"
//
//	s, _ = numwords.Convert(1234, numwords.ConversionOptions{Language: "es"})
//	// "Mil Doscientos y Treinta y Cuatro"
//
// All functions are pure and safe for concurrent use.
//
// Known limitations:
//
//   - Magnitudes are limited to MaxMagnitude (math.MaxInt64 / 2).
//   - Roman numerals cover 1 through 3999.
//   - Currency names exist only for the codes each table lists.
package numwords

import "sync"

var defaultConverter = sync.OnceValues(func() (*Converter, error) {
	return NewConverter()
})

// Convert renders n with the built-in tables; see Converter.Convert.
func Convert(n int64, opts ConversionOptions) (string, error) {
	c, err := defaultConverter()
	if err != nil {
		return "", err
	}
	return c.Convert(n, opts)
}

// ConvertString parses s as an integer and renders it; see Converter.ConvertString.
func ConvertString(s string, opts ConversionOptions) (string, error) {
	c, err := defaultConverter()
	if err != nil {
		return "", err
	}
	return c.ConvertString(s, opts)
}

// ConvertAmount renders a decimal currency amount; see Converter.ConvertAmount.
func ConvertAmount(amount string, opts ConversionOptions) (string, error) {
	c, err := defaultConverter()
	if err != nil {
		return "", err
	}
	return c.ConvertAmount(amount, opts)
}
