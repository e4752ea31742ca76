package smartsort

import "fmt"

// Role describes where a label ended up within its segment.
type Role int

const (
	// RoleOrphan is a regular label with no parent or children.
	RoleOrphan Role = iota
	// RoleRoot is a label that at least one other label binds to.
	RoleRoot
	// RolePinned is a segment's leading sticky header or divider.
	RolePinned
)

func (r Role) String() string {
	switch r {
	case RoleRoot:
		return "root"
	case RolePinned:
		return "pinned"
	default:
		return "orphan"
	}
}

// MarshalText renders the role by name in JSON output.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses a role name.
func (r *Role) UnmarshalText(text []byte) error {
	switch string(text) {
	case "orphan":
		*r = RoleOrphan
	case "root":
		*r = RoleRoot
	case "pinned":
		*r = RolePinned
	default:
		return fmt.Errorf("unknown role %q", text)
	}
	return nil
}

// MarshalText renders the kind by name in JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "regular":
		*k = KindRegular
	case "divider":
		*k = KindDivider
	case "sticky":
		*k = KindSticky
	default:
		return fmt.Errorf("unknown kind %q", text)
	}
	return nil
}

// Group is a top-level entry of a segment together with the children
// emitted directly beneath it.
type Group struct {
	Label    string   `json:"label"`
	Role     Role     `json:"role"`
	Kind     Kind     `json:"kind"`
	Children []string `json:"children,omitempty"`
}

// Segment is one independently sorted run of labels.
type Segment struct {
	Groups []Group `json:"groups"`
}

// Leader returns the segment's pinned breaker, if it has one.
func (s Segment) Leader() (string, bool) {
	if len(s.Groups) > 0 && s.Groups[0].Role == RolePinned {
		return s.Groups[0].Label, true
	}
	return "", false
}

// Len returns the number of labels in the segment, children included.
func (s Segment) Len() int {
	n := 0
	for _, g := range s.Groups {
		n += 1 + len(g.Children)
	}
	return n
}

// Layout is the structured result of a sort.
type Layout struct {
	Segments []Segment `json:"segments"`
}

// Flatten returns the labels in output order.
func (l Layout) Flatten() []string {
	n := 0
	for _, s := range l.Segments {
		n += s.Len()
	}
	out := make([]string, 0, n)
	for _, s := range l.Segments {
		for _, g := range s.Groups {
			out = append(out, g.Label)
			out = append(out, g.Children...)
		}
	}
	return out
}
