// Package topics holds the fixed set of subjects the explain command can answer.
package topics

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

//go:embed topics.yaml
var defaultYAML []byte

var defaultCatalogue = mustParse(defaultYAML)

// Topic is one explainable subject.
type Topic struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
}

// Lines splits the explanation for line-by-line rendering.
func (t Topic) Lines() []string {
	return strings.Split(t.Text, "\n")
}

// Catalogue is an ordered, read-only list of topics.
type Catalogue struct {
	Label      string  `yaml:"label"`
	PromptText string  `yaml:"prompt"`
	Topics     []Topic `yaml:"topics"`
}

// Default returns the catalogue shipped with the binary.
func Default() *Catalogue {
	return defaultCatalogue
}

// LoadFile reads a catalogue from a YAML file.
func LoadFile(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read topics file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a catalogue.
func Parse(data []byte) (*Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("error unmarshaling topics: %w", err)
	}
	if len(c.Topics) == 0 {
		return nil, errors.New("topics catalogue is empty")
	}
	seen := make(map[string]bool, len(c.Topics))
	for i, t := range c.Topics {
		name := strings.ToLower(strings.TrimSpace(t.Name))
		if name == "" {
			return nil, fmt.Errorf("topic %d has no name", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate topic %q", t.Name)
		}
		seen[name] = true
	}
	if c.Label == "" {
		c.Label = "Definitions"
	}
	if c.PromptText == "" {
		c.PromptText = "explain what?"
	}
	return &c, nil
}

// Lookup finds the topic whose name equals input, ignoring case.
func (c *Catalogue) Lookup(input string) (Topic, bool) {
	for _, t := range c.Topics {
		if strings.EqualFold(t.Name, input) {
			return t, true
		}
	}
	return Topic{}, false
}

// Names returns the topic names in catalogue order.
func (c *Catalogue) Names() []string {
	names := make([]string, len(c.Topics))
	for i, t := range c.Topics {
		names[i] = t.Name
	}
	return names
}

// Line is the one-line listing printed before every explanation.
func (c *Catalogue) Line() string {
	return c.LineWithLabel(c.Label)
}

// LineWithLabel is Line with the label replaced, for translated output.
func (c *Catalogue) LineWithLabel(label string) string {
	return label + ": " + strings.Join(c.Names(), ", ")
}

// Prompt is shown while waiting for the topic.
func (c *Catalogue) Prompt() string {
	return c.PromptText
}

func mustParse(data []byte) *Catalogue {
	c, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("topics: invalid embedded catalogue: %v", err))
	}
	return c
}
