package numwords

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// ParseLanguage resolves a free-form code against the built-in tables.
// "en", "ENG", "english" and "en_US" all resolve to English.
func ParseLanguage(code string) (Language, error) {
	set, err := builtinTables()
	if err != nil {
		return English, err
	}
	table, err := set.resolve(code)
	if err != nil {
		return English, err
	}
	for _, lang := range Languages {
		if lang.Code() == table.code {
			return lang, nil
		}
	}
	return English, unsupportedLanguage(code)
}

// tableSet is an immutable set of rule tables keyed by code.
type tableSet struct {
	tables map[string]*RuleTable
	codes  []string
}

func newTableSet(tables ...*RuleTable) (*tableSet, error) {
	set := &tableSet{tables: make(map[string]*RuleTable, len(tables))}
	for _, table := range tables {
		if table == nil {
			continue
		}
		set.tables[table.code] = table
	}

	owners := make(map[string]string)
	for code, table := range set.tables {
		set.codes = append(set.codes, code)
		for _, alias := range table.aliases {
			if owner, exists := owners[alias]; exists && owner != code {
				return nil, fmt.Errorf("numwords: alias %q claimed by %q and %q", alias, owner, code)
			}
			owners[alias] = code
		}
	}
	sort.Strings(set.codes)
	return set, nil
}

// with returns a copy of the set where tables replace entries sharing a code.
func (s *tableSet) with(tables ...*RuleTable) (*tableSet, error) {
	merged := make([]*RuleTable, 0, len(s.tables)+len(tables))
	for _, code := range s.codes {
		merged = append(merged, s.tables[code])
	}
	return newTableSet(append(merged, tables...)...)
}

// resolve matches code exactly against every alias, then as an alias
// followed by a subtag, then by the explicit base language of a BCP 47 tag.
func (s *tableSet) resolve(code string) (*RuleTable, error) {
	normalized := normalizeCode(code)
	if normalized == "" {
		return nil, unsupportedLanguage(code)
	}

	for _, c := range s.codes {
		table := s.tables[c]
		for _, alias := range table.aliases {
			if normalized == alias {
				return table, nil
			}
		}
	}

	for _, c := range s.codes {
		table := s.tables[c]
		for _, alias := range table.aliases {
			if strings.HasPrefix(normalized, alias+"-") {
				return table, nil
			}
		}
	}

	// Only an explicit base counts; x/text guesses one for "und-MX".
	if tag, err := language.Parse(normalized); err == nil {
		if base, conf := tag.Base(); conf == language.Exact {
			if table, ok := s.tables[base.String()]; ok {
				return table, nil
			}
		}
	}

	return nil, unsupportedLanguage(code)
}

// normalizeCode lower-cases a language code, trims it and replaces
// underscores with hyphens.
func normalizeCode(code string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(code), "_", "-"))
}

func normalizeCodes(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(codes))
	result := make([]string, 0, len(codes))
	for _, code := range codes {
		normalized := normalizeCode(code)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	sort.Strings(result)
	return result
}
