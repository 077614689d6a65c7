// Package i18n translates the labels the terminal prints into the visitor's
// language.
package i18n

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// SourceLanguage is the language entry names are written in.
const SourceLanguage = "en"

const navigationPrefix = "navigation."

//go:embed messages.yaml
var defaultYAML []byte

var defaultCatalogue = mustParse(defaultYAML)

// Catalogue maps language -> key -> text. It is read-only once parsed.
type Catalogue struct {
	messages map[string]map[string]string
}

// Default returns the catalogue shipped with the binary.
func Default() *Catalogue {
	return defaultCatalogue
}

// LoadFile reads a catalogue from a YAML file.
func LoadFile(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read translations file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a catalogue. The source language must be present.
func Parse(data []byte) (*Catalogue, error) {
	var messages map[string]map[string]string
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse translations: %w", err)
	}
	if _, ok := messages[SourceLanguage]; !ok {
		return nil, fmt.Errorf("translations have no %q entry", SourceLanguage)
	}
	return &Catalogue{messages: messages}, nil
}

// Languages lists the languages in the catalogue, sorted.
func (c *Catalogue) Languages() []string {
	langs := make([]string, 0, len(c.messages))
	for lang := range c.messages {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Lookup returns the text stored for key in lang.
func (c *Catalogue) Lookup(lang, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	text, ok := c.messages[lang][key]
	return text, ok && text != ""
}

// Text returns key in lang, or fallback when lang has no such key.
func (c *Catalogue) Text(lang, key, fallback string) string {
	if text, ok := c.Lookup(lang, key); ok {
		return text
	}
	return fallback
}

// Name localizes a directory entry. Only names that match their source
// language label are translated; an extension is kept, so "Links.html"
// becomes "Link.html" in Italian.
func (c *Catalogue) Name(lang, name string) string {
	stem, ext, dotted := strings.Cut(name, ".")
	key := NameKey(stem)
	if source, ok := c.Lookup(SourceLanguage, key); !ok || source != stem {
		return name
	}
	text, ok := c.Lookup(lang, key)
	if !ok {
		return name
	}
	if dotted {
		return text + "." + ext
	}
	return text
}

// NameKey is the key under which an entry name is translated:
// "Add-On" is navigation.addon.
func NameKey(stem string) string {
	return navigationPrefix + strings.ToLower(strings.ReplaceAll(stem, "-", ""))
}

func mustParse(data []byte) *Catalogue {
	c, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("i18n: invalid embedded catalogue: %v", err))
	}
	return c
}
