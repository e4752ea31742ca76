package models

import (
	"testing"

	"golang.org/x/text/language"
)

func TestSortConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SortConfig
		wantErr bool
	}{
		{"defaults", DefaultSortConfig(), false},
		{"json", SortConfig{Locale: "de", Format: FormatJSON}, false},
		{"empty locale", SortConfig{Format: FormatText}, false},
		{"bad format", SortConfig{Locale: "en", Format: "yaml"}, true},
		{"empty format", SortConfig{Locale: "en"}, true},
		{"bad locale", SortConfig{Locale: "not a locale!", Format: FormatText}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSortOptions(t *testing.T) {
	cfg := SortConfig{Locale: "sv", Numeric: true, StickySegments: true, Format: FormatText}

	opts, err := cfg.SortOptions()
	if err != nil {
		t.Fatalf("SortOptions() error = %v", err)
	}
	if opts.Locale != language.Swedish {
		t.Errorf("Expected locale sv, got %s", opts.Locale)
	}
	if !opts.Numeric || !opts.StickySegments {
		t.Errorf("Expected numeric and sticky segments to be enabled, got %+v", opts)
	}

	empty, err := SortConfig{}.SortOptions()
	if err != nil {
		t.Fatalf("SortOptions() error = %v", err)
	}
	if empty.Locale != language.English {
		t.Errorf("Expected default locale en, got %s", empty.Locale)
	}
}
