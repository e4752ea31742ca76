package models

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/mattsolo1/grove-pagesort/pkg/smartsort"
)

// OutputFormat selects how commands print their results.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IndexConfig configures reading page names from a notebook search index.
type IndexConfig struct {
	Workspace string `mapstructure:"workspace" yaml:"workspace"`
}

// SortConfig is the decoded pagesort configuration.
type SortConfig struct {
	Locale         string       `mapstructure:"locale" yaml:"locale"`
	Numeric        bool         `mapstructure:"numeric" yaml:"numeric"`
	StickySegments bool         `mapstructure:"sticky_segments" yaml:"sticky_segments"`
	Format         OutputFormat `mapstructure:"format" yaml:"format"`
	Index          IndexConfig  `mapstructure:"index" yaml:"index"`
}

// DefaultSortConfig returns the built-in defaults.
func DefaultSortConfig() SortConfig {
	return SortConfig{
		Locale: smartsort.DefaultLocale.String(),
		Format: FormatText,
	}
}

// Validate checks the configured values.
func (c SortConfig) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid format %q (want %q or %q)", c.Format, FormatText, FormatJSON)
	}
	if _, err := c.Tag(); err != nil {
		return err
	}
	return nil
}

// Tag parses the configured locale. An empty locale means the default.
func (c SortConfig) Tag() (language.Tag, error) {
	if c.Locale == "" {
		return smartsort.DefaultLocale, nil
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

// SortOptions converts the configuration into engine options.
func (c SortConfig) SortOptions() (smartsort.Options, error) {
	tag, err := c.Tag()
	if err != nil {
		return smartsort.Options{}, err
	}
	return smartsort.Options{
		Locale:         tag,
		Numeric:        c.Numeric,
		StickySegments: c.StickySegments,
	}, nil
}
