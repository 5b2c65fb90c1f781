package numwords

import (
	"errors"
	"fmt"
)

var (
	// ErrValueTooLarge indicates a magnitude beyond MaxMagnitude or beyond the scales a table names.
	ErrValueTooLarge = errors.New("numwords: value too large")
	// ErrUnsupportedLanguage indicates a language code that matches no known alias.
	ErrUnsupportedLanguage = errors.New("numwords: unsupported language")
	// ErrInvalidRomanNumeral indicates a Roman numeral request outside [1, 3999].
	ErrInvalidRomanNumeral = errors.New("numwords: invalid roman numeral")
	// ErrInvalidInput is the catch-all for malformed input reaching the facade.
	ErrInvalidInput = errors.New("numwords: invalid input")
)

// ErrorKind enumerates the closed set of conversion failures.
type ErrorKind int

const (
	KindInvalidInput ErrorKind = iota
	KindValueTooLarge
	KindUnsupportedLanguage
	KindInvalidRomanNumeral
)

func (k ErrorKind) String() string {
	switch k {
	case KindValueTooLarge:
		return "value too large"
	case KindUnsupportedLanguage:
		return "unsupported language"
	case KindInvalidRomanNumeral:
		return "invalid roman numeral"
	default:
		return "invalid input"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindValueTooLarge:
		return ErrValueTooLarge
	case KindUnsupportedLanguage:
		return ErrUnsupportedLanguage
	case KindInvalidRomanNumeral:
		return ErrInvalidRomanNumeral
	default:
		return ErrInvalidInput
	}
}

// ConversionError carries the failure kind plus the offending value, language
// code or raw input. errors.Is matches it against the Err* sentinels.
type ConversionError struct {
	Kind     ErrorKind
	Value    int64
	Language string
	Input    string
	Reason   string
}

func (e *ConversionError) Error() string {
	if e == nil {
		return "<nil>"
	}

	var detail string
	switch {
	case e.Kind == KindUnsupportedLanguage:
		detail = fmt.Sprintf("%q", e.Language)
	case e.Input != "":
		detail = fmt.Sprintf("%q", e.Input)
	default:
		detail = fmt.Sprintf("%d", e.Value)
	}

	msg := "numwords: " + e.Kind.String() + " " + detail
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *ConversionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind.sentinel()
}

func valueTooLarge(value int64) error {
	return &ConversionError{Kind: KindValueTooLarge, Value: value}
}

func unsupportedLanguage(code string) error {
	return &ConversionError{Kind: KindUnsupportedLanguage, Language: code}
}

func invalidRoman(value int64) error {
	return &ConversionError{Kind: KindInvalidRomanNumeral, Value: value}
}

func invalidInput(input, reason string) error {
	return &ConversionError{Kind: KindInvalidInput, Input: input, Reason: reason}
}
