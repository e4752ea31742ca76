package smartsort

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	dividerPattern = regexp.MustCompile(`^-+$`)

	// Pictographic blocks plus any other-symbol rune. Only consulted for
	// runes above Latin-1, so ©, ® and ° never make a label sticky.
	emojiPattern = regexp.MustCompile(`^(?:[\x{1F000}-\x{1FAFF}]|[\x{2190}-\x{21FF}]|[\x{2300}-\x{23FF}]|[\x{25A0}-\x{27BF}]|[\x{2B00}-\x{2BFF}]|[\x{3030}\x{303D}\x{3297}\x{3299}]|\p{So})`)

	upperPattern = regexp.MustCompile(`[A-Z]`)
	lowerPattern = regexp.MustCompile(`[a-z]`)
)

// Kind is the classification of a single label.
type Kind int

const (
	KindRegular Kind = iota
	KindDivider
	KindSticky
)

func (k Kind) String() string {
	switch k {
	case KindDivider:
		return "divider"
	case KindSticky:
		return "sticky"
	default:
		return "regular"
	}
}

// Classify returns the kind of label. Sticky takes precedence over
// divider, although no label can be both.
func Classify(label string) Kind {
	switch {
	case IsStickyHeader(label):
		return KindSticky
	case IsDivider(label):
		return KindDivider
	default:
		return KindRegular
	}
}

// IsDivider reports whether the trimmed label is one or more hyphens and
// nothing else.
func IsDivider(label string) bool {
	return dividerPattern.MatchString(strings.TrimSpace(label))
}

// IsStickyHeader reports whether the label should be pinned to the top of
// its segment: it starts with an emoji or symbol outside Latin-1, or it
// has at least one uppercase Latin letter and no lowercase ones.
func IsStickyHeader(label string) bool {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return false
	}
	if startsWithSymbol(trimmed) {
		return true
	}
	return upperPattern.MatchString(trimmed) && !lowerPattern.MatchString(trimmed)
}

// IsBreaker reports whether the label starts a new segment.
func IsBreaker(label string) bool {
	return IsDivider(label) || IsStickyHeader(label)
}

func startsWithSymbol(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return false
	}
	if r <= unicode.MaxLatin1 {
		return false
	}
	return emojiPattern.MatchString(s[:size])
}
