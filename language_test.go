package numwords

import (
	"errors"
	"testing"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		code string
		want Language
	}{
		{"en", English},
		{"EN", English},
		{" eng ", English},
		{"English", English},
		{"en_US", English},
		{"en-GB", English},
		{"es", Spanish},
		{"spa", Spanish},
		{"Spanish", Spanish},
		{"español", Spanish},
		{"espanol", Spanish},
		{"es-419", Spanish},
		{"es_MX", Spanish},
		{"ar", Arabic},
		{"ara", Arabic},
		{"ARABIC", Arabic},
		{"العربية", Arabic},
		{"ar-EG", Arabic},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseLanguage(tt.code)
			if err != nil {
				t.Fatalf("ParseLanguage(%q) error: %v", tt.code, err)
			}
			if got != tt.want {
				t.Fatalf("ParseLanguage(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestParseLanguageUnsupported(t *testing.T) {
	for _, code := range []string{"", "   ", "fr", "zh-Hans", "xx", "english2", "e", "und", "und-MX", "und-SA", "UND_es"} {
		_, err := ParseLanguage(code)
		if !errors.Is(err, ErrUnsupportedLanguage) {
			t.Fatalf("ParseLanguage(%q): expected ErrUnsupportedLanguage, got %v", code, err)
		}

		var convErr *ConversionError
		if !errors.As(err, &convErr) || convErr.Kind != KindUnsupportedLanguage {
			t.Fatalf("ParseLanguage(%q): expected unsupported language ConversionError, got %v", code, err)
		}
		if convErr.Language != code {
			t.Fatalf("ParseLanguage(%q): error carries language %q", code, convErr.Language)
		}
	}
}

func TestLanguageAccessors(t *testing.T) {
	if English.Code() != "en" || Spanish.Code() != "es" || Arabic.Code() != "ar" {
		t.Fatalf("unexpected codes: %s %s %s", English.Code(), Spanish.Code(), Arabic.Code())
	}
	if Arabic.String() != "Arabic" {
		t.Fatalf("expected Arabic, got %s", Arabic.String())
	}
	if base, _ := Spanish.Tag().Base(); base.String() != "es" {
		t.Fatalf("expected es base tag, got %s", base)
	}
}

func TestTableSetRejectsAliasConflict(t *testing.T) {
	base, err := builtinTables()
	if err != nil {
		t.Fatalf("builtinTables: %v", err)
	}

	clash, err := ParseRuleTable([]byte(minimalTable("es", "eng")), FormatYAML)
	if err != nil {
		t.Fatalf("ParseRuleTable: %v", err)
	}

	if _, err := base.with(clash); err == nil {
		t.Fatal("expected alias conflict error")
	}
}

func TestTableSetWithReplacesByCode(t *testing.T) {
	base, err := builtinTables()
	if err != nil {
		t.Fatalf("builtinTables: %v", err)
	}

	replacement, err := ParseRuleTable([]byte(minimalTable("es", "castellano")), FormatYAML)
	if err != nil {
		t.Fatalf("ParseRuleTable: %v", err)
	}

	set, err := base.with(replacement)
	if err != nil {
		t.Fatalf("with: %v", err)
	}

	got, err := set.resolve("castellano")
	if err != nil || got != replacement {
		t.Fatalf("expected replacement table for castellano, got %v, %v", got, err)
	}
	if _, err := set.resolve("spanish"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("expected replaced aliases to be gone, got %v", err)
	}
	if _, err := base.resolve("castellano"); err == nil {
		t.Fatal("expected base set to stay unchanged")
	}
	if len(set.codes) != 3 {
		t.Fatalf("expected 3 codes, got %v", set.codes)
	}
}
