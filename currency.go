package numwords

import (
	"strings"

	"golang.org/x/text/currency"
)

// unitNames resolves an ISO 4217 code and the table's unit names for it.
func (t *RuleTable) unitNames(code string) (currency.Unit, currencyNames, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return currency.Unit{}, currencyNames{}, invalidInput(code, "unknown currency code")
	}

	names, ok := t.currency.units[unit.String()]
	if !ok {
		return currency.Unit{}, currencyNames{}, invalidInput(code, "no "+t.code+" names for currency")
	}
	return unit, names, nil
}

// minorScale returns the number of minor unit digits of a currency
// (2 for USD, 0 for JPY).
func minorScale(unit currency.Unit) int {
	scale, _ := currency.Standard.Rounding(unit)
	return scale
}

// moneyTokens renders a non-negative value of currency code. With minorUnits
// the value counts minor units and is split by the currency's scale.
func (t *RuleTable) moneyTokens(code string, magnitude int64, minorUnits bool) ([]token, error) {
	unit, names, err := t.unitNames(code)
	if err != nil {
		return nil, err
	}

	major, minor := magnitude, int64(0)
	fractional := false
	if minorUnits {
		if scale := minorScale(unit); scale > 0 {
			divisor := pow10(scale)
			major, minor = magnitude/divisor, magnitude%divisor
			fractional = true
		}
	}
	return t.currencyTokens(code, names, major, minor, fractional)
}

// currencyTokens assembles the major part, the joiner and the minor part.
func (t *RuleTable) currencyTokens(code string, names currencyNames, major, minor int64, fractional bool) ([]token, error) {
	rules := t.currency

	if minor > 0 && names.minor == nil {
		return nil, invalidInput(code, "no "+t.code+" names for minor units")
	}

	showMinor := names.minor != nil && fractional && (minor > 0 || !rules.elideZeroMinor)
	showMajor := major > 0 || minor == 0 || !rules.elideZeroMajor

	var out []token
	if showMajor {
		part, err := t.amountTokens(major, names.major)
		if err != nil {
			return nil, err
		}
		out = append(out, part...)
	}

	if showMinor {
		part, err := t.amountTokens(minor, *names.minor)
		if err != nil {
			return nil, err
		}
		if len(out) > 0 {
			out = appendWords(out, rules.joiner, tokenConjunction)
		}
		out = append(out, part...)
	}

	return out, nil
}

// amountTokens renders count followed (or preceded) by the unit noun.
func (t *RuleTable) amountTokens(count int64, unit noun) ([]token, error) {
	number, err := t.cardinalTokens(count, unit.gender)
	if err != nil {
		return nil, err
	}

	rules := t.currency
	num, name := t.countWords(count, number, unit, tokenUnit)
	if len(num) > 0 && rules.partitive != "" && wholeMultiple(count, rules.partitiveScale) {
		name = append(appendWords(nil, rules.partitive, tokenConjunction), name...)
	}

	if rules.position == UnitBefore {
		return append(name, num...), nil
	}
	return append(num, name...), nil
}

// wholeMultiple reports whether count is a non-zero multiple of 1000^scale.
func wholeMultiple(count int64, scale int) bool {
	if count <= 0 || scale <= 0 {
		return false
	}
	divisor := int64(1)
	for range scale {
		if divisor > MaxMagnitude/groupBase {
			return false
		}
		divisor *= groupBase
	}
	return count%divisor == 0
}

func pow10(exp int) int64 {
	out := int64(1)
	for range exp {
		out *= 10
	}
	return out
}
