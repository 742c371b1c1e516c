// Package quotes loads the quote ticker's entries from YAML.
package quotes

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ericfisherdev/smartcampus/internal/domain/model"
	"github.com/ericfisherdev/smartcampus/internal/domain/port/driven"
)

//go:embed quotes.yaml
var defaultQuotes []byte

// ErrNoQuotes is returned when a quote file contains no entries.
var ErrNoQuotes = errors.New("quote file contains no quotes")

// Compile-time interface satisfaction check.
var _ driven.QuoteSource = (*Source)(nil)

// file is the on-disk layout of a quote list.
type file struct {
	Quotes []model.Quote `yaml:"quotes"`
}

// Source reads quotes from a YAML file, or from the built-in list when no
// path is configured.
type Source struct {
	path string
}

// NewSource creates a Source. An empty path selects the built-in list.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Load reads and validates the quote list.
func (s *Source) Load() ([]model.Quote, error) {
	data := defaultQuotes
	if s.path != "" {
		var err error
		data, err = os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("read quote file %q: %w", s.path, err)
		}
	}

	return Parse(data)
}

// Parse decodes a YAML quote list. Every quote needs non-blank text;
// surrounding whitespace is trimmed.
func Parse(data []byte) ([]model.Quote, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode quotes: %w", err)
	}

	if len(f.Quotes) == 0 {
		return nil, ErrNoQuotes
	}

	quotes := make([]model.Quote, 0, len(f.Quotes))
	for i, q := range f.Quotes {
		q.Text = strings.TrimSpace(q.Text)
		q.Author = strings.TrimSpace(q.Author)
		if q.Text == "" {
			return nil, fmt.Errorf("quote %d has no text", i+1)
		}
		quotes = append(quotes, q)
	}

	return quotes, nil
}
