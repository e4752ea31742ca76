package smartsort

import (
	"cmp"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale is configured.
var DefaultLocale = language.English

// Options control segmentation and comparison. Classification and grouping
// are not configurable.
type Options struct {
	// Locale selects the collation rules for alphabetical ordering.
	Locale language.Tag
	// Numeric orders runs of digits by value, so "Page 2" precedes "Page 10".
	Numeric bool
	// StickySegments makes sticky headers split segments the way dividers
	// do. By default only dividers split, and sticky headers float to the
	// top of the segment they appear in.
	StickySegments bool
}

// Option mutates Options.
type Option func(*Options)

// WithLocale sets the collation locale.
func WithLocale(tag language.Tag) Option {
	return func(o *Options) {
		o.Locale = tag
	}
}

// WithNumeric toggles numeric collation of digit runs.
func WithNumeric(enabled bool) Option {
	return func(o *Options) {
		o.Numeric = enabled
	}
}

// WithStickySegments toggles sticky headers acting as segment breakers.
func WithStickySegments(enabled bool) Option {
	return func(o *Options) {
		o.StickySegments = enabled
	}
}

// WithOptions copies a whole Options value, typically one decoded from
// configuration.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

func newOptions(opts []Option) Options {
	o := Options{Locale: DefaultLocale}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Locale == language.Und {
		o.Locale = DefaultLocale
	}
	return o
}

// comparer orders items by collation key, then bytes, then input position.
// A collate.Collator keeps internal buffers, so each Sort call builds its own.
type comparer struct {
	col *collate.Collator
}

func newComparer(o Options) *comparer {
	var copts []collate.Option
	if o.Numeric {
		copts = append(copts, collate.Numeric)
	}
	return &comparer{col: collate.New(o.Locale, copts...)}
}

func (c *comparer) compare(a, b item) int {
	if r := c.col.CompareString(a.label, b.label); r != 0 {
		return r
	}
	if r := strings.Compare(a.label, b.label); r != 0 {
		return r
	}
	return cmp.Compare(a.index, b.index)
}
