package smartsort

import "testing"

func TestIsDivider(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{"-", true},
		{"---", true},
		{"  ----  ", true},
		{"", false},
		{"   ", false},
		{"- -", false},
		{"--x", false},
		{"—", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := IsDivider(tt.label); got != tt.want {
				t.Errorf("IsDivider(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestIsStickyHeader(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  bool
	}{
		{"empty", "", false},
		{"whitespace", "  \t ", false},
		{"all caps", "ALPHA", true},
		{"caps with padding", "  API  ", true},
		{"caps with digits", "Q3 2024", true},
		{"single letter", "B", true},
		{"mixed case", "Alpha", false},
		{"lowercase", "beta", false},
		{"digits only", "2024", false},
		{"punctuation only", "!!!", false},
		{"divider", "---", false},
		{"emoji", "\U0001F4CC Pinned", true},
		{"emoji lowercase", "\U0001F680launch", true},
		{"misc symbol", "★ favourites", true},
		{"arrow", "→ next up", true},
		{"latin1 symbol", "© notes", false},
		{"cjk", "日本", false},
		{"accented caps", "ÉCOLE", true},
		{"accented mixed", "Über", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStickyHeader(tt.label); got != tt.want {
				t.Errorf("IsStickyHeader(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		label string
		want  Kind
	}{
		{"---", KindDivider},
		{"README", KindSticky},
		{"✨ NEW", KindSticky},
		{"readme", KindRegular},
		{"", KindRegular},
	}

	for _, tt := range tests {
		if got := Classify(tt.label); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.label, got, tt.want)
		}
	}

	if !IsBreaker("---") || !IsBreaker("TODO") || IsBreaker("todo") {
		t.Error("IsBreaker should be true exactly for dividers and sticky headers")
	}
}
