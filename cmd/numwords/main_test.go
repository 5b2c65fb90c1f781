package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-lang", "es", "-ordinal", "-table", "a.yaml", "-table", "b.json", "12", "13"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.opts.Language != "es" || !cfg.opts.Ordinal {
		t.Fatalf("unexpected options %+v", cfg.opts)
	}
	if strings.Join(cfg.tables, ",") != "a.yaml,b.json" {
		t.Fatalf("unexpected tables %v", cfg.tables)
	}
	if strings.Join(cfg.args, ",") != "12,13" {
		t.Fatalf("unexpected args %v", cfg.args)
	}

	if _, err := parseFlags([]string{"-amount", "1.00"}); err == nil {
		t.Fatal("expected -amount without -currency to fail")
	}
	if _, err := parseFlags([]string{"-table", " "}); err == nil {
		t.Fatal("expected empty -table to fail")
	}
}

func TestRunArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"words", []string{"42"}, "Forty Two\n"},
		{"several", []string{"-lang", "es", "1", "2"}, "Uno\nDos\n"},
		{"roman wins", []string{"-roman", "-currency", "USD", "42"}, "XLII\n"},
		{"currency minor", []string{"-currency", "USD", "-minor", "4250"}, "Forty Two Dollars and Fifty Cents\n"},
		{"amount", []string{"-currency", "EUR", "-amount", "-lang", "es", "1000000"}, "Un Millón de Euros\n"},
		{"ordinal", []string{"-lang", "ar", "-ordinal", "11"}, "الحادي عشر\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags: %v", err)
			}

			var out, errOut bytes.Buffer
			if err := run(context.Background(), cfg, strings.NewReader(""), &out, &errOut); err != nil {
				t.Fatalf("run: %v", err)
			}
			if out.String() != tt.want {
				t.Fatalf("output %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestRunArgsError(t *testing.T) {
	cfg, err := parseFlags([]string{"-lang", "fr", "1"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	var out, errOut bytes.Buffer
	err = run(context.Background(), cfg, strings.NewReader(""), &out, &errOut)
	if err == nil || !strings.Contains(err.Error(), "unsupported language") {
		t.Fatalf("expected unsupported language error, got %v", err)
	}
}

func TestRunTableOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en.yaml")
	table := `code: en
zero: naught
negative: minus
units: ["", one, two, three, four, five, six, seven, eight, nine]
teens: [ten, eleven, twelve, thirteen, fourteen, fifteen, sixteen, seventeen, eighteen, nineteen]
tens: ["", "", twenty, thirty, forty, fifty, sixty, seventy, eighty, ninety]
hundred: hundred
scales:
  - forms: {other: thousand}
`
	if err := os.WriteFile(path, []byte(table), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := parseFlags([]string{"-table", path, "0", "-12"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	var out, errOut bytes.Buffer
	if err := run(context.Background(), cfg, strings.NewReader(""), &out, &errOut); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != "naught\nminus twelve\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestPrompt(t *testing.T) {
	cfg, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	var out, errOut bytes.Buffer
	in := strings.NewReader("42\n\nabc\n1000\n")
	if err := run(context.Background(), cfg, in, &out, &errOut); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Enter a number to convert to text (press Ctrl+C to exit):",
		"Result: Forty Two\n",
		"Result: One Thousand\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected output to contain %q, got %q", want, got)
		}
	}
	if strings.Count(got, "Result:") != 2 {
		t.Fatalf("expected two results, got %q", got)
	}
	if !strings.Contains(errOut.String(), "Error: numwords: invalid input \"abc\"") {
		t.Fatalf("expected error for abc, got %q", errOut.String())
	}
}

func TestPromptCancelled(t *testing.T) {
	cfg, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer reader.Close()
	defer writer.Close()

	var out, errOut bytes.Buffer
	if err := run(ctx, cfg, reader, &out, &errOut); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(out.String(), "Result:") {
		t.Fatalf("unexpected result after cancellation: %q", out.String())
	}
}
