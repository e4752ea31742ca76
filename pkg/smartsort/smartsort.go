// Package smartsort orders a flat list of page names. Dividers ("---")
// split the list into segments that are sorted independently. Within a
// segment, sticky headers (emoji-led or all-caps names) stay on top and the
// remaining names are alphabetised, with every name nested under the
// shortest other name it ends with ("Price Card" under "Card").
//
// Sort is a pure function: it never fails, never mutates its input and
// returns a permutation of it. It is safe for concurrent use.
package smartsort

import (
	"slices"
	"strings"
)

// item is a label together with its position in the input.
type item struct {
	label   string
	trimmed string
	index   int
}

// grouping is the result of parent/child matching over one segment's
// regular items.
type grouping struct {
	roots    []item
	orphans  []item
	children map[int][]item // keyed by the parent's input index
}

// Sort returns labels in smart-sort order.
func Sort(labels []string, opts ...Option) []string {
	return Explain(labels, opts...).Flatten()
}

// IsSorted reports whether labels are already in smart-sort order.
func IsSorted(labels []string, opts ...Option) bool {
	return slices.Equal(Sort(labels, opts...), labels)
}

// Explain runs the sort pipeline and returns its structure instead of a
// flat list.
func Explain(labels []string, opts ...Option) Layout {
	o := newOptions(opts)
	c := newComparer(o)

	splits := IsDivider
	if o.StickySegments {
		splits = IsBreaker
	}

	layout := Layout{Segments: []Segment{}}
	for _, seg := range segment(labels, splits) {
		pinned, regular := partition(seg)
		layout.Segments = append(layout.Segments, order(pinned, group(regular, c), c))
	}
	return layout
}

// segment splits labels before every label for which splits is true. That
// label leads the segment that follows it; content before the first one
// forms a leaderless segment.
func segment(labels []string, splits func(string) bool) [][]item {
	var (
		segments [][]item
		current  []item
	)
	for i, label := range labels {
		it := item{label: label, trimmed: strings.TrimSpace(label), index: i}
		if splits(label) {
			if len(current) > 0 {
				segments = append(segments, current)
			}
			current = []item{it}
			continue
		}
		current = append(current, it)
	}
	if len(current) > 0 {
		segments = append(segments, current)
	}
	return segments
}

// partition separates pinned items (sticky headers and dividers) from the
// items that are grouped and sorted. Both keep their input order.
func partition(seg []item) (pinned, regular []item) {
	for _, it := range seg {
		if IsBreaker(it.label) {
			pinned = append(pinned, it)
		} else {
			regular = append(regular, it)
		}
	}
	return pinned, regular
}

// group binds every item to the shortest other item its trimmed text ends
// with, separated by a space. Any bound-to item becomes a root even if it
// matched a parent of its own; children are never nested further.
//
// Candidate parents are suffixes of the item that start after a space, so
// the shortest candidate is found by walking spaces from the right. Several
// items can share the same trimmed text; the one that sorts first wins, so
// sorting an already sorted list binds the same way.
func group(regular []item, c *comparer) grouping {
	byText := make(map[string][]int, len(regular))
	for i, it := range regular {
		if it.trimmed == "" {
			continue
		}
		byText[it.trimmed] = append(byText[it.trimmed], i)
	}

	bound := make([]int, len(regular))
	for i := range regular {
		bound[i] = shortestParent(regular, i, byText, c)
	}

	isParent := make([]bool, len(regular))
	for _, p := range bound {
		if p >= 0 {
			isParent[p] = true
		}
	}

	g := grouping{children: make(map[int][]item)}
	for i, it := range regular {
		switch {
		case isParent[i]:
			g.roots = append(g.roots, it)
		case bound[i] >= 0:
			parent := regular[bound[i]]
			g.children[parent.index] = append(g.children[parent.index], it)
		default:
			g.orphans = append(g.orphans, it)
		}
	}
	return g
}

func shortestParent(regular []item, self int, byText map[string][]int, c *comparer) int {
	text := regular[self].trimmed
	for end := len(text); ; {
		sp := strings.LastIndexByte(text[:end], ' ')
		if sp < 0 {
			return -1
		}
		best := -1
		for _, idx := range byText[text[sp+1:]] {
			if idx == self {
				continue
			}
			if best < 0 || c.compare(regular[idx], regular[best]) < 0 {
				best = idx
			}
		}
		if best >= 0 {
			return best
		}
		end = sp
	}
}

// order emits pinned items first, then roots and orphans alphabetically,
// each root followed by its alphabetised children.
func order(pinned []item, g grouping, c *comparer) Segment {
	seg := Segment{Groups: make([]Group, 0, len(pinned)+len(g.roots)+len(g.orphans))}
	for _, it := range pinned {
		seg.Groups = append(seg.Groups, Group{Label: it.label, Role: RolePinned, Kind: Classify(it.label)})
	}

	roots := make(map[int]bool, len(g.roots))
	top := make([]item, 0, len(g.roots)+len(g.orphans))
	for _, it := range g.roots {
		roots[it.index] = true
		top = append(top, it)
	}
	top = append(top, g.orphans...)
	slices.SortFunc(top, c.compare)

	for _, it := range top {
		grp := Group{Label: it.label, Role: RoleOrphan, Kind: KindRegular}
		if roots[it.index] {
			grp.Role = RoleRoot
			children := slices.Clone(g.children[it.index])
			slices.SortFunc(children, c.compare)
			grp.Children = make([]string, len(children))
			for i, child := range children {
				grp.Children[i] = child.label
			}
		}
		seg.Groups = append(seg.Groups, grp)
	}
	return seg
}
