package engine

import (
	"strconv"
	"strings"
	"testing"
)

// mustCells parses tokens like "C0 T1 S" into layout cells.
func mustCells(t *testing.T, tokens string) []LayoutCell {
	t.Helper()
	var cells []LayoutCell
	for _, tok := range strings.Fields(tokens) {
		shape, ok := ParseShape(tok[:1])
		if !ok {
			t.Fatalf("bad shape token %q", tok)
		}
		rot := 0
		if len(tok) > 1 {
			n, err := strconv.Atoi(tok[1:])
			if err != nil {
				t.Fatalf("bad rotation in %q: %v", tok, err)
			}
			rot = n
		}
		cells = append(cells, LayoutCell{Shape: shape, Rotation: rot})
	}
	return cells
}

func mustLayout(t *testing.T, size int, tokens string) Layout {
	t.Helper()
	return Layout{ID: "test", Name: "Test", Size: size, Cells: mustCells(t, tokens)}
}

func mustGrid(t *testing.T, size int, tokens string) *Grid {
	t.Helper()
	g, err := gridFromCells(size, mustCells(t, tokens))
	if err != nil {
		t.Fatalf("gridFromCells: %v", err)
	}
	return g
}
