package numwords

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon/*.yaml
var lexiconFS embed.FS

// builtinTables decodes the embedded lexicon once; the result is shared by
// every default conversion.
var builtinTables = sync.OnceValues(func() (*tableSet, error) {
	tables := make([]*RuleTable, 0, len(Languages))
	for _, lang := range Languages {
		path := "lexicon/" + lang.Code() + ".yaml"
		data, err := lexiconFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("numwords: read embedded %s: %w", path, err)
		}
		table, err := ParseRuleTable(data, FormatYAML)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return newTableSet(tables...)
})

// Format names a rule table encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseRuleTable decodes and validates a rule table. Unknown fields are
// rejected so typos in override files surface early.
func ParseRuleTable(data []byte, format Format) (*RuleTable, error) {
	var doc tableDoc

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("numwords: decode rule table: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("numwords: decode rule table: %w", err)
		}
	default:
		return nil, fmt.Errorf("numwords: unsupported rule table format %q", format)
	}

	return compileTable(doc)
}

// LoadRuleTable reads a rule table from a .yaml, .yml or .json file.
func LoadRuleTable(path string) (*RuleTable, error) {
	format, err := formatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("numwords: read %s: %w", path, err)
	}

	table, err := ParseRuleTable(data, format)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return table, nil
}

func formatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("numwords: unsupported extension %q", ext)
	}
}
