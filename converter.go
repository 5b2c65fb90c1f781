package numwords

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// Converter renders numbers with a fixed set of rule tables.
// It is immutable and safe for concurrent use.
type Converter struct {
	tables          *tableSet
	defaultLanguage string
}

// Config captures converter setup before the table set is frozen.
type Config struct {
	DefaultLanguage string
	Tables          []*RuleTable
	TableFiles      []string
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConverter builds a Converter over the built-in tables plus any overrides.
// Overrides replace the built-in table of the same language for this
// converter only.
func NewConverter(opts ...Option) (*Converter, error) {
	cfg := &Config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	base, err := builtinTables()
	if err != nil {
		return nil, err
	}

	overrides := append([]*RuleTable(nil), cfg.Tables...)
	for _, path := range cfg.TableFiles {
		table, err := LoadRuleTable(path)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, table)
	}

	set := base
	if len(overrides) > 0 {
		for _, table := range overrides {
			if _, ok := base.tables[table.code]; !ok {
				return nil, fmt.Errorf("%w: rule table %q overrides no built-in language", ErrUnsupportedLanguage, table.code)
			}
		}
		if set, err = base.with(overrides...); err != nil {
			return nil, err
		}
	}

	c := &Converter{tables: set, defaultLanguage: English.Code()}
	if cfg.DefaultLanguage != "" {
		table, err := set.resolve(cfg.DefaultLanguage)
		if err != nil {
			return nil, err
		}
		c.defaultLanguage = table.code
	}
	return c, nil
}

// WithDefaultLanguage sets the language used when options leave it empty.
func WithDefaultLanguage(code string) Option {
	return func(c *Config) error {
		c.DefaultLanguage = code
		return nil
	}
}

// WithRuleTable overrides the built-in table sharing the table's code.
func WithRuleTable(table *RuleTable) Option {
	return func(c *Config) error {
		if table == nil {
			return nil
		}
		c.Tables = append(c.Tables, table)
		return nil
	}
}

// WithRuleTableFile loads an override table from a YAML or JSON file.
func WithRuleTableFile(path string) Option {
	return func(c *Config) error {
		if strings.TrimSpace(path) == "" {
			return errors.New("numwords: empty rule table path")
		}
		c.TableFiles = append(c.TableFiles, path)
		return nil
	}
}

// DefaultLanguage returns the code used when options leave Language empty.
func (c *Converter) DefaultLanguage() string {
	return c.defaultLanguage
}

// Languages returns the codes of every table, sorted.
func (c *Converter) Languages() []string {
	out := make([]string, len(c.tables.codes))
	copy(out, c.tables.codes)
	return out
}

// RuleTable resolves code the same way conversions do.
func (c *Converter) RuleTable(code string) (*RuleTable, error) {
	return c.table(code)
}

func (c *Converter) table(code string) (*RuleTable, error) {
	if strings.TrimSpace(code) == "" {
		code = c.defaultLanguage
	}
	return c.tables.resolve(code)
}

// Convert renders n according to opts. The language is resolved first, then
// the mode is picked: roman, currency, ordinal, words.
func (c *Converter) Convert(n int64, opts ConversionOptions) (string, error) {
	table, err := c.table(opts.Language)
	if err != nil {
		return "", err
	}

	mode := opts.Mode()
	if mode == ModeRoman {
		return Roman(n)
	}

	if n > MaxMagnitude || n < -MaxMagnitude {
		return "", valueTooLarge(n)
	}

	negative := n < 0
	magnitude := n
	if negative {
		magnitude = -n
	}

	var tokens []token
	switch mode {
	case ModeCurrency:
		tokens, err = table.moneyTokens(opts.Currency, magnitude, opts.MinorUnits)
	case ModeOrdinal:
		tokens, err = table.ordinalTokens(magnitude)
	default:
		tokens, err = table.cardinalTokens(magnitude, Masculine)
	}
	if err != nil {
		return "", err
	}

	if negative {
		tokens = append(table.negativeTokens(), tokens...)
	}
	return table.render(tokens), nil
}

// ConvertString parses s as a base 10 integer and converts it.
func (c *Converter) ConvertString(s string, opts ConversionOptions) (string, error) {
	trimmed := strings.TrimSpace(s)
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return "", &ConversionError{Kind: KindValueTooLarge, Input: trimmed}
		}
		return "", invalidInput(s, "not an integer")
	}
	return c.Convert(n, opts)
}

// ConvertAmount renders a decimal amount such as "12.34" as a currency
// phrase. opts.Currency is required; Roman and Ordinal are ignored. The
// fraction is rounded half to even to the currency's minor unit scale.
func (c *Converter) ConvertAmount(amount string, opts ConversionOptions) (string, error) {
	table, err := c.table(opts.Language)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(opts.Currency) == "" {
		return "", invalidInput(amount, "currency code required")
	}

	trimmed := strings.TrimSpace(amount)
	d, err := decimal.Parse(trimmed)
	if err != nil {
		if wideInteger(trimmed) {
			return "", &ConversionError{Kind: KindValueTooLarge, Input: trimmed, Reason: err.Error()}
		}
		return "", invalidInput(amount, err.Error())
	}

	unit, names, err := table.unitNames(opts.Currency)
	if err != nil {
		return "", err
	}

	scale := minorScale(unit)
	whole, frac, ok := d.Abs().Int64(scale)
	if !ok || whole > MaxMagnitude {
		return "", &ConversionError{Kind: KindValueTooLarge, Input: amount}
	}

	tokens, err := table.currencyTokens(opts.Currency, names, whole, frac, scale > 0)
	if err != nil {
		return "", err
	}

	if d.Sign() < 0 && (whole > 0 || frac > 0) {
		tokens = append(table.negativeTokens(), tokens...)
	}
	return table.render(tokens), nil
}

// wideInteger reports whether s is a plain decimal whose integer part has
// at least 19 significant digits, the width at which decimal.Parse overflows.
func wideInteger(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || (hasFrac && frac == "") {
		return false
	}
	for _, part := range []string{whole, frac} {
		for _, r := range part {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return len(strings.TrimLeft(whole, "0")) >= 19
}
