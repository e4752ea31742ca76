package reorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name             string
		live             []string
		desired          []string
		wantOrder        []string
		wantPlaceholders []string
		wantMoves        []Move
	}{
		{
			name:      "empty",
			live:      nil,
			desired:   nil,
			wantOrder: []string{},
		},
		{
			name:      "already in order",
			live:      []string{"a", "b", "c"},
			desired:   []string{"a", "b", "c"},
			wantOrder: []string{"a", "b", "c"},
		},
		{
			name:      "unlisted items keep their slot",
			live:      []string{"b", "x", "a"},
			desired:   []string{"a", "b"},
			wantOrder: []string{"a", "x", "b"},
			wantMoves: []Move{
				{Label: "a", From: 2, To: 0},
				{Label: "b", From: 0, To: 2},
			},
		},
		{
			name:             "placeholder follows its predecessor",
			live:             []string{"b", "a"},
			desired:          []string{"a", "new", "b"},
			wantOrder:        []string{"a", "new", "b"},
			wantPlaceholders: []string{"new"},
			wantMoves: []Move{
				{Label: "a", From: 1, To: 0},
				{Label: "b", From: 0, To: 2},
			},
		},
		{
			name:             "leading placeholder goes before first slot",
			live:             []string{"c", "a"},
			desired:          []string{"first", "a"},
			wantOrder:        []string{"c", "first", "a"},
			wantPlaceholders: []string{"first"},
			wantMoves: []Move{
				{Label: "a", From: 1, To: 2},
			},
		},
		{
			name:             "no live matches",
			live:             []string{"x"},
			desired:          []string{"y"},
			wantOrder:        []string{"x", "y"},
			wantPlaceholders: []string{"y"},
		},
		{
			name:      "duplicates match in order",
			live:      []string{"Card", "b", "Card"},
			desired:   []string{"b", "Card", "Card"},
			wantOrder: []string{"b", "Card", "Card"},
			wantMoves: []Move{
				{Label: "b", From: 1, To: 0},
				{Label: "Card", From: 0, To: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Plan(tt.live, tt.desired)

			assert.Equal(t, tt.wantOrder, res.Order)
			assert.Equal(t, tt.wantPlaceholders, res.Placeholders)
			assert.Equal(t, tt.wantMoves, res.Moves)
			assert.Equal(t, len(tt.wantMoves) > 0 || len(tt.wantPlaceholders) > 0, res.Changed())
		})
	}
}
