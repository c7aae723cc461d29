package flow

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/flowgrid/internal/core"
	"github.com/vovakirdan/flowgrid/internal/games/flow/engine"
)

const (
	hudRows    = 2
	footerRows = 2
)

// boardMetrics is the on-screen geometry of the current board.
type boardMetrics struct {
	cellW, cellH, gap int
	box               core.Rect
}

func (m boardMetrics) cellOrigin(x, y int) (int, int) {
	return m.box.X + 2 + x*(m.cellW+m.gap), m.box.Y + 1 + y*(m.cellH+m.gap)
}

// fitBoard picks the largest tile geometry that fits the screen.
func fitBoard(n, screenW, screenH int, d boardMetrics) (boardMetrics, bool) {
	candidates := []boardMetrics{
		d,
		{cellW: 5, cellH: 3},
		{cellW: 3, cellH: 1},
	}
	for _, m := range candidates {
		if m.cellW < 1 || m.cellH < 1 {
			continue
		}
		innerW := n*m.cellW + (n-1)*m.gap
		innerH := n*m.cellH + (n-1)*m.gap
		boxW, boxH := innerW+4, innerH+2
		if boxW > screenW || boxH+hudRows+footerRows > screenH {
			continue
		}
		m.box = core.NewRect((screenW-boxW)/2, hudRows, boxW, boxH)
		return m, true
	}
	return boardMetrics{}, false
}

// checkScreenSize fits the current level to the screen.
func (g *Game) checkScreenSize() {
	if len(g.levels) == 0 {
		return
	}
	d := g.cfg.Display
	m, ok := fitBoard(g.levels[g.levelIndex].Size, g.screenW, g.screenH,
		boardMetrics{cellW: d.CellWidth, cellH: d.CellHeight, gap: max(d.Gap, 0)})
	g.metrics = m
	g.tooSmall = !ok
}

// Resize refits the board to a new screen size, keeping the current puzzle.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		g.renderError(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	grid := g.session.Grid()
	reach := g.session.Reach()

	g.renderHUD(dst, reach)
	dst.DrawBoxWithColor(g.metrics.box, frameColor(reach.SinkReached))
	g.renderBoard(dst, grid, reach)
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

// frameColor is the board frame color for a given link state.
func frameColor(linked bool) core.Color {
	if linked {
		return core.ColorGreen
	}
	return core.ColorDarkGray
}

func (g *Game) renderError(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCenteredWithColor(y-1, "NEURAL FLOW OFFLINE", core.ColorRed)
	dst.DrawTextCentered(y+1, truncate(g.err.Error(), g.screenW-2))
	dst.DrawTextCenteredWithColor(y+3, "Q: Quit", core.ColorGray)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen, reach engine.Reach) {
	layout := g.levels[g.levelIndex]

	left := fmt.Sprintf("NEURAL FLOW  Level %d/%d: %s", g.levelIndex+1, len(g.levels), layout.Title())
	dst.DrawTextWithColor(1, 0, truncate(left, g.screenW/2+8), core.ColorBrightCyan)
	score := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(g.screenW-utf8.RuneCountInString(score)-1, 0, score)

	dst.DrawTextWithColor(1, 1, "SOURCE ACTIVE", core.ColorCyan)
	par := "?"
	if p := g.session.Par(); p >= 0 {
		par = fmt.Sprint(p)
	}
	info := fmt.Sprintf("Moves: %d  Par: %s  Hints: %d", g.session.Moves(), par, g.hintsLeft)
	dst.DrawTextWithColor(16, 1, info, core.ColorGray)

	status, color := "LINK OFFLINE", core.ColorRed
	if reach.SinkReached {
		status, color = "FLOW STABLE", core.ColorBrightGreen
	}
	dst.DrawTextWithColor(g.screenW-len(status)-1, 1, status, color)
}

// tileColor picks the color of a tile's pipes.
func (g *Game) tileColor(t engine.Tile, powered, linked bool) core.Color {
	switch {
	case g.hintTicks > 0 && t.ID == g.hintTile:
		return core.ColorMagenta
	case powered && linked:
		return core.ColorBrightGreen
	case powered:
		return core.ColorOrange
	case t.Fixed:
		return core.ColorCyan
	default:
		return core.ColorGray
	}
}

func (g *Game) renderBoard(dst *core.Screen, grid *engine.Grid, reach engine.Reach) {
	m := g.metrics
	cursor := g.cursorTile()

	for _, t := range grid.AllTiles() {
		ox, oy := m.cellOrigin(t.X, t.Y)
		cx, cy := ox+m.cellW/2, oy+m.cellH/2
		edges := t.EffectiveEdges()
		powered := reach.Powered.Has(t.ID)
		color := g.tileColor(t, powered, reach.SinkReached)

		if edges[engine.DirLeft] {
			dst.DrawHLine(ox, cy, cx-ox, '─', color)
		}
		if edges[engine.DirRight] {
			dst.DrawHLine(cx+1, cy, ox+m.cellW-cx-1, '─', color)
		}
		if edges[engine.DirTop] {
			dst.DrawVLine(cx, oy, cy-oy, '│', color)
		}
		if edges[engine.DirBottom] {
			dst.DrawVLine(cx, cy+1, oy+m.cellH-cy-1, '│', color)
		}

		center := color
		if t.ID == cursor && !g.locked {
			center = core.ColorBrightYellow
		}
		dst.SetColor(cx, cy, engine.Glyph(edges), center)

		// Bridge the gap to right and bottom neighbors that share an open edge.
		if m.gap > 0 {
			if _, ok := engine.Connected(grid, t.ID, engine.DirRight); ok {
				dst.DrawHLine(ox+m.cellW, cy, m.gap, '─', color)
			}
			if _, ok := engine.Connected(grid, t.ID, engine.DirBottom); ok {
				dst.DrawVLine(cx, oy+m.cellH, m.gap, '│', color)
			}
		}

		if m.cellH >= 3 && m.cellW >= 5 {
			g.renderMarkers(dst, t, grid, ox, oy)
			if t.ID == cursor && !g.locked {
				g.renderCursor(dst, ox, oy)
			}
		}
	}
}

// renderMarkers labels the source and sink tiles.
func (g *Game) renderMarkers(dst *core.Screen, t engine.Tile, grid *engine.Grid, ox, oy int) {
	m := g.metrics
	switch t.ID {
	case grid.SourceID():
		dst.SetColor(ox+1, oy, '◆', core.ColorBrightCyan)
	case grid.SinkID():
		dst.SetColor(ox+m.cellW-2, oy+m.cellH-1, '◆', core.ColorBrightCyan)
	}
}

func (g *Game) renderCursor(dst *core.Screen, ox, oy int) {
	m := g.metrics
	right, bottom := ox+m.cellW-1, oy+m.cellH-1
	dst.SetColor(ox, oy, '╭', core.ColorBrightYellow)
	dst.SetColor(right, oy, '╮', core.ColorBrightYellow)
	dst.SetColor(ox, bottom, '╰', core.ColorBrightYellow)
	dst.SetColor(right, bottom, '╯', core.ColorBrightYellow)
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := g.screenH - 1
	if g.flashTicks > 0 && g.flash != "" {
		dst.DrawTextCenteredWithColor(y, g.flash, core.ColorYellow)
		return
	}
	controls := "Arrows/WASD: Move  Space: Rotate  H: Hint  R: Reboot  P: Pause  Q: Quit"
	if utf8.RuneCountInString(controls) > g.screenW {
		controls = "Move  Spc:Rot  H  R  P  Q"
	}
	dst.DrawTextCenteredWithColor(y, controls, core.ColorGray)
}

func (g *Game) renderOverlays(dst *core.Screen) {
	switch {
	case g.won:
		g.renderBanner(dst, core.ColorBrightGreen,
			"NETWORK ONLINE",
			fmt.Sprintf("Final score: %d", g.score),
			"R: Play again  Esc: Menu")
	case g.paused:
		g.renderBanner(dst, core.ColorYellow, "PAUSED", "P: Resume")
	case g.locked:
		g.renderBanner(dst, core.ColorBrightGreen,
			"FLOW STABLE",
			fmt.Sprintf("+%d points", g.levelScore))
	}
}

// renderBanner draws a framed message centered on the board.
func (g *Game) renderBanner(dst *core.Screen, color core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	w, h := width+4, len(lines)+2
	cx, cy := g.metrics.box.Center()
	r := core.NewRect(cx-w/2, cy-h/2, w, h)

	dst.DrawRect(r, ' ')
	dst.DrawBoxWithColor(r, color)
	for i, l := range lines {
		x := r.X + (w-utf8.RuneCountInString(l))/2
		dst.DrawTextWithColor(x, r.Y+1+i, l, color)
	}
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n]))
}
