package i18n

import (
	"encoding/json"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser turns one translation document into a language-to-translations
// map. The top level of a document keys by language code.
type Parser interface {
	Parse(content []byte) (map[string]map[string]any, error)
	SupportsExtension(ext string) bool
}

// JSONParser parses JSON translation documents.
type JSONParser struct{}

// NewJSONParser creates a JSONParser.
func NewJSONParser() *JSONParser { return &JSONParser{} }

// Parse decodes a JSON document of the form {"en": {...}, "tr": {...}}.
func (p *JSONParser) Parse(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrParseFailed, err)
	}
	return splitByLanguage(data), nil
}

// SupportsExtension reports whether the parser handles the file extension.
func (p *JSONParser) SupportsExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

// YAMLParser parses YAML translation documents.
type YAMLParser struct{}

// NewYAMLParser creates a YAMLParser.
func NewYAMLParser() *YAMLParser { return &YAMLParser{} }

// Parse decodes a YAML document keyed by language code at the top level.
func (p *YAMLParser) Parse(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrParseFailed, err)
	}
	return splitByLanguage(data), nil
}

// SupportsExtension reports whether the parser handles the file extension.
func (p *YAMLParser) SupportsExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

func splitByLanguage(data map[string]any) map[string]map[string]any {
	result := make(map[string]map[string]any, len(data))
	for lang, translations := range data {
		if m, ok := translations.(map[string]any); ok {
			result[lang] = m
		}
	}
	return result
}
