package engine

import (
	"fmt"
	"strings"
)

// glyphs is indexed by Edges.Mask (Top=1, Right=2, Bottom=4, Left=8).
var glyphs = [16]rune{
	'·', '╵', '╶', '└',
	'╷', '│', '┌', '├',
	'╴', '┘', '─', '┴',
	'┐', '┤', '┬', '┼',
}

// Glyph returns the box-drawing rune for a set of open edges.
func Glyph(e Edges) rune {
	return glyphs[e.Mask()]
}

// RenderASCII renders the board one row per line. Each tile is its glyph
// followed by '*' when powered or '.' when not.
func RenderASCII(g *Grid, powered PoweredSet) string {
	var b strings.Builder
	status := "LINK OFFLINE"
	if g.Len() > 0 && powered.Has(g.SinkID()) {
		status = "FLOW STABLE"
	}
	fmt.Fprintf(&b, "size %d | powered %d/%d | %s\n", g.Size(), powered.Len(), g.Len(), status)

	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			t, _ := g.TileAt(x, y)
			b.WriteRune(Glyph(t.EffectiveEdges()))
			if powered.Has(t.ID) {
				b.WriteByte('*')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
