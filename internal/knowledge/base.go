package knowledge

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed kb.yaml
var defaultKB []byte

// Entry is the canned answer for one category.
type Entry struct {
	Keywords    []string `yaml:"keywords"`
	Suggestions []string `yaml:"suggestions"`
	Text        string   `yaml:"text"`
}

type document struct {
	Categories map[Category]Entry `yaml:"categories"`
}

// Base is a read-only support knowledge base covering every Category.
type Base struct {
	entries map[Category]Entry
}

// Load reads the knowledge base at path, or the built-in one when path is empty.
func Load(path string) (*Base, error) {
	if path == "" {
		return Parse(defaultKB)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the built-in knowledge base.
func Default() *Base {
	b, err := Parse(defaultKB)
	if err != nil {
		panic(fmt.Sprintf("knowledge: built-in base is invalid: %v", err))
	}
	return b
}

// Parse decodes a YAML knowledge base and checks that every category is present.
func Parse(data []byte) (*Base, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase, err)
	}

	for c := range doc.Categories {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
		}
	}
	for _, c := range Categories() {
		e, ok := doc.Categories[c]
		if !ok || e.Text == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingCategory, c)
		}
	}
	return &Base{entries: doc.Categories}, nil
}

// Lookup returns the entry for category.
func (b *Base) Lookup(category Category) (Entry, error) {
	e, ok := b.entries[category]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	e.Keywords = append([]string(nil), e.Keywords...)
	e.Suggestions = append([]string(nil), e.Suggestions...)
	return e, nil
}

// Keywords returns the match keywords of category.
func (b *Base) Keywords(category Category) []string {
	return append([]string(nil), b.entries[category].Keywords...)
}
