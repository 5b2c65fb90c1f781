package numwords

import (
	"math"

	"golang.org/x/text/language"
)

// MaxMagnitude is the largest absolute value accepted for conversion.
const MaxMagnitude int64 = math.MaxInt64 / 2

// Language identifies one of the built-in rule tables.
type Language int

const (
	English Language = iota
	Spanish
	Arabic
)

// Languages lists every built-in language in declaration order.
var Languages = []Language{English, Spanish, Arabic}

// Code returns the ISO 639-1 code of the language.
func (l Language) Code() string {
	switch l {
	case Spanish:
		return "es"
	case Arabic:
		return "ar"
	default:
		return "en"
	}
}

// Tag returns the BCP 47 tag used for casing and plural rules.
func (l Language) Tag() language.Tag {
	switch l {
	case Spanish:
		return language.Spanish
	case Arabic:
		return language.Arabic
	default:
		return language.English
	}
}

func (l Language) String() string {
	switch l {
	case Spanish:
		return "Spanish"
	case Arabic:
		return "Arabic"
	default:
		return "English"
	}
}

// ConversionOptions selects the language and rendering mode.
// When several modes are set, Roman wins over Currency, and Currency wins
// over Ordinal.
type ConversionOptions struct {
	// Language is a free-form code such as "en", "eng", "Spanish" or "ar-EG".
	// Empty selects the converter's default language.
	Language string
	Ordinal  bool
	// Currency is an ISO 4217 code. Empty disables currency rendering.
	Currency string
	// MinorUnits reports that the value counts minor units of Currency
	// (cents for USD), so 1234 renders as twelve dollars and thirty four cents.
	MinorUnits bool
	Roman      bool
}

// Mode is the rendering path chosen for a set of options.
type Mode int

const (
	ModeWords Mode = iota
	ModeOrdinal
	ModeCurrency
	ModeRoman
)

func (m Mode) String() string {
	switch m {
	case ModeOrdinal:
		return "ordinal"
	case ModeCurrency:
		return "currency"
	case ModeRoman:
		return "roman"
	default:
		return "words"
	}
}

// Mode applies the rendering precedence: roman, currency, ordinal, words.
func (o ConversionOptions) Mode() Mode {
	switch {
	case o.Roman:
		return ModeRoman
	case o.Currency != "":
		return ModeCurrency
	case o.Ordinal:
		return ModeOrdinal
	default:
		return ModeWords
	}
}

// ScaleGroup is a three digit chunk of a magnitude and its power of 1000.
type ScaleGroup struct {
	Value int
	Scale int
}

// PluralCategory is the CLDR category selecting a counted noun form.
type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// Gender selects the agreement variant of unit and teen words.
type Gender string

const (
	Masculine Gender = "masculine"
	Feminine  Gender = "feminine"

	// genderInherit makes a scale agree with the counted noun.
	genderInherit Gender = "inherit"
)
