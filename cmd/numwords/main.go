package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/goliatone/go-numwords"
)

type cliConfig struct {
	opts   numwords.ConversionOptions
	amount bool
	tables []string
	args   []string
}

type tableFlag struct {
	items []string
}

func (f *tableFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *tableFlag) Set(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New("empty table path")
	}
	f.items = append(f.items, value)
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		reportError(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		stop()
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "numwords: %v\n", err)
	os.Exit(1)
}

func parseFlags(args []string) (cliConfig, error) {
	var cfg cliConfig
	var tables tableFlag

	fs := flag.NewFlagSet("numwords", flag.ContinueOnError)
	fs.StringVar(&cfg.opts.Language, "lang", "en", "language code or name (en, es, ar, english, español, ...)")
	fs.BoolVar(&cfg.opts.Ordinal, "ordinal", false, "render ordinal forms")
	fs.BoolVar(&cfg.opts.Roman, "roman", false, "render Roman numerals (1-3999); wins over -currency and -ordinal")
	fs.StringVar(&cfg.opts.Currency, "currency", "", "ISO 4217 currency code; wins over -ordinal")
	fs.BoolVar(&cfg.opts.MinorUnits, "minor", false, "treat values as minor currency units (cents)")
	fs.BoolVar(&cfg.amount, "amount", false, "treat values as decimal amounts such as 12.34 (requires -currency)")
	fs.Var(&tables, "table", "rule table override file (.yaml or .json). Repeat flag to add more.")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}

	if cfg.amount && cfg.opts.Currency == "" {
		return cliConfig{}, errors.New("-amount requires -currency")
	}

	cfg.tables = tables.items
	cfg.args = fs.Args()
	return cfg, nil
}

func run(ctx context.Context, cfg cliConfig, in io.Reader, out, errOut io.Writer) error {
	opts := make([]numwords.Option, 0, len(cfg.tables))
	for _, path := range cfg.tables {
		opts = append(opts, numwords.WithRuleTableFile(path))
	}

	converter, err := numwords.NewConverter(opts...)
	if err != nil {
		return err
	}

	convert := func(input string) (string, error) {
		if cfg.amount {
			return converter.ConvertAmount(input, cfg.opts)
		}
		return converter.ConvertString(input, cfg.opts)
	}

	if len(cfg.args) > 0 {
		for _, arg := range cfg.args {
			result, err := convert(arg)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, result)
		}
		return nil
	}

	return prompt(ctx, convert, in, out, errOut)
}

// prompt reads one value per line until EOF or ctx is cancelled. Conversion
// errors are reported and the loop continues.
func prompt(ctx context.Context, convert func(string) (string, error), in io.Reader, out, errOut io.Writer) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	fmt.Fprintln(out, "Number to Text Converter")
	fmt.Fprintln(out, "------------------------")
	fmt.Fprintln(out, "Enter a number to convert to text (press Ctrl+C to exit):")

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("read input: %w", err)
					}
				default:
				}
				return nil
			}

			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			result, err := convert(line)
			if err != nil {
				fmt.Fprintf(errOut, "Error: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "Result: %s\n", result)
			fmt.Fprintln(out, "\nEnter another number (press Ctrl+C to exit):")
		}
	}
}
