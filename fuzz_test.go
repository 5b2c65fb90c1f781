package numwords

import (
	"errors"
	"strings"
	"testing"
)

// FuzzConvert verifies that Convert never panics, fails only with the
// documented errors, is deterministic and prefixes negatives with the
// language's marker.
func FuzzConvert(f *testing.F) {
	f.Add(int64(0), uint8(0), false)
	f.Add(int64(1), uint8(1), true)
	f.Add(int64(-1), uint8(2), false)
	f.Add(int64(1234), uint8(1), true)
	f.Add(int64(1_000_000), uint8(2), true)
	f.Add(MaxMagnitude, uint8(0), false)
	f.Add(int64(9223372036854775807), uint8(1), false)  // math.MaxInt64
	f.Add(int64(-9223372036854775808), uint8(2), true) // math.MinInt64

	f.Fuzz(func(t *testing.T, n int64, lang uint8, ordinal bool) {
		opts := ConversionOptions{
			Language: Languages[int(lang)%len(Languages)].Code(),
			Ordinal:  ordinal,
		}

		got, err := Convert(n, opts)
		if n > MaxMagnitude || n < -MaxMagnitude {
			if !errors.Is(err, ErrValueTooLarge) {
				t.Fatalf("Convert(%d): expected ErrValueTooLarge, got %v", n, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Convert(%d, %+v) error: %v", n, opts, err)
		}
		if got == "" || strings.Contains(got, "  ") || strings.TrimSpace(got) != got {
			t.Fatalf("Convert(%d, %+v) produced malformed output %q", n, opts, got)
		}

		if again, _ := Convert(n, opts); again != got {
			t.Fatalf("Convert(%d, %+v) not deterministic: %q then %q", n, opts, got, again)
		}

		if n <= 0 {
			return
		}
		language, err := ParseLanguage(opts.Language)
		if err != nil {
			t.Fatalf("ParseLanguage(%q): %v", opts.Language, err)
		}
		marker := negativeMarker(t, language)
		negative, err := Convert(-n, opts)
		if err != nil {
			t.Fatalf("Convert(%d, %+v) error: %v", -n, opts, err)
		}
		if want := marker + " " + got; negative != want {
			t.Fatalf("Convert(%d, %+v) = %q, want %q", -n, opts, negative, want)
		}
	})
}

func negativeMarker(t *testing.T, lang Language) string {
	t.Helper()
	set, err := builtinTables()
	if err != nil {
		t.Fatalf("builtinTables: %v", err)
	}
	table := set.tables[lang.Code()]
	return table.render(table.negativeTokens())
}

// FuzzConvertString verifies that ConvertString never panics for any input.
func FuzzConvertString(f *testing.F) {
	f.Add("")
	f.Add("42")
	f.Add("-0")
	f.Add("abc")
	f.Add("\xff\xfe")
	f.Add("99999999999999999999")
	f.Add(" 1234 ")

	f.Fuzz(func(t *testing.T, s string) {
		_, err := ConvertString(s, ConversionOptions{})
		if err != nil && !errors.Is(err, ErrInvalidInput) && !errors.Is(err, ErrValueTooLarge) {
			t.Fatalf("ConvertString(%q): unexpected error %v", s, err)
		}
	})
}

// FuzzConvertAmount verifies that ConvertAmount never panics for any input.
func FuzzConvertAmount(f *testing.F) {
	f.Add("12.34", "USD")
	f.Add("-0.5", "EUR")
	f.Add("1e3", "JPY")
	f.Add("", "")
	f.Add("1.0", "zzz")

	f.Fuzz(func(t *testing.T, amount, code string) {
		_, _ = ConvertAmount(amount, ConversionOptions{Currency: code})
	})
}
