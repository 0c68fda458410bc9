package tetris

import (
	"strconv"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Layout, in screen cells. Every board cell is two characters wide.
const (
	cellW   = 2
	panelW  = 12
	panelH  = 7
	scoreH  = 8
	fieldW  = engine.Width*cellW + 2
	fieldH  = engine.Height + 2
	gap     = 1
	layoutW = panelW + gap + fieldW + gap + panelW
	layoutH = fieldH

	minScreenW = layoutW
	minScreenH = layoutH
)

// Glyphs.
const (
	blockRune = '█'
	ghostRune = '░'
	flashRune = '▓'
	gridRune  = '·'
)

const accent = core.ColorPink

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.session.Snapshot()

	x0 := max(0, (g.screenW-layoutW)/2)
	y0 := max(0, (g.screenH-layoutH)/2)
	field := core.NewRect(x0+panelW+gap, y0, fieldW, fieldH)
	hold := core.NewRect(x0, y0, panelW, panelH)
	next := core.NewRect(field.Right()+gap, y0, panelW, panelH)
	stats := core.NewRect(next.X, next.Bottom()+1, panelW, scoreH)

	renderField(dst, field, snap)

	holdColor := snap.Held.TermColor()
	if !snap.CanHold {
		holdColor = core.ColorGray
	}
	renderPreview(dst, hold, "HOLD (C)", snap.Held, holdColor)
	renderPreview(dst, next, "NEXT", snap.Next, snap.Next.TermColor())
	renderStats(dst, stats, snap)

	switch {
	case snap.GameOver:
		renderOverlay(dst, field, core.ColorRed, "GAME OVER", "Press any key", "to restart")
	case snap.Paused:
		renderOverlay(dst, field, accent, "PAUSED", "Press P", "to resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Need "+strconv.Itoa(minScreenW)+"x"+strconv.Itoa(minScreenH))
}

// renderField draws the playfield: locked cells, the ghost and the falling piece.
func renderField(dst *core.Screen, r core.Rect, snap engine.Snapshot) {
	dst.DrawBoxColored(r, accent)
	inner := r.Inset(1)

	for y, row := range snap.Board {
		for x, k := range row {
			switch {
			case k != engine.KindNone:
				drawCell(dst, inner, x, y, blockRune, k.TermColor())
			case snap.Flash:
				drawCell(dst, inner, x, y, flashRune, core.ColorBrightWhite)
			default:
				dst.SetColored(inner.X+x*cellW+1, inner.Y+y, gridRune, core.ColorGrid)
			}
		}
	}

	if snap.GameOver {
		return
	}
	color := snap.Piece.Kind.TermColor()
	for _, c := range snap.GhostCells {
		drawCell(dst, inner, c.X, c.Y, ghostRune, color)
	}
	for _, c := range snap.PieceCells {
		drawCell(dst, inner, c.X, c.Y, blockRune, color)
	}
}

// drawCell fills one board cell. Cells above the field are skipped.
func drawCell(dst *core.Screen, inner core.Rect, x, y int, r rune, c core.Color) {
	if y < 0 {
		return
	}
	sx := inner.X + x*cellW
	for i := range cellW {
		dst.SetColored(sx+i, inner.Y+y, r, c)
	}
}

// renderPreview draws a titled panel with the first frame of k centered in it.
func renderPreview(dst *core.Screen, r core.Rect, title string, k engine.Kind, c core.Color) {
	dst.DrawBoxColored(r, accent)
	drawCentered(dst, r, r.Y+1, title, core.ColorWhite)
	if !k.Valid() {
		return
	}

	cells := engine.FrameAt(k, 0).Cells()
	minX, minY := cells[0].X, cells[0].Y
	maxX, maxY := minX, minY
	for _, p := range cells[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	area := core.NewRect(r.X+1, r.Y+2, r.W-2, r.H-3)
	ox := area.X + (area.W-(maxX-minX+1)*cellW)/2
	oy := area.Y + (area.H-(maxY-minY+1))/2
	for _, p := range cells {
		sx := ox + (p.X-minX)*cellW
		for i := range cellW {
			dst.SetColored(sx+i, oy+p.Y-minY, blockRune, c)
		}
	}
}

// renderStats draws the level, score and lines panel.
func renderStats(dst *core.Screen, r core.Rect, snap engine.Snapshot) {
	dst.DrawBoxColored(r, accent)
	rows := []struct {
		label string
		value int
	}{
		{"LEVEL", snap.Level},
		{"SCORE", snap.Score},
		{"LINES", snap.Lines},
	}
	for i, row := range rows {
		y := r.Y + 1 + i*2
		drawCentered(dst, r, y, row.label, core.ColorGray)
		drawCentered(dst, r, y+1, strconv.Itoa(row.value), core.ColorBrightWhite)
	}
}

// renderOverlay draws a message box over the middle of the field.
func renderOverlay(dst *core.Screen, field core.Rect, c core.Color, title string, lines ...string) {
	h := len(lines) + 4
	box := core.NewRect(field.X+2, field.Y+(field.H-h)/2, field.W-4, h)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, c)
	drawCentered(dst, box, box.Y+1, title, c)
	for i, line := range lines {
		drawCentered(dst, box, box.Y+3+i, line, core.ColorWhite)
	}
}

// drawCentered writes text centered within r on row y.
func drawCentered(dst *core.Screen, r core.Rect, y int, text string, c core.Color) {
	x := r.X + (r.W-len([]rune(text)))/2
	dst.DrawTextColored(x, y, text, c)
}
