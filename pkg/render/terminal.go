// pkg/render/terminal.go
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/arcade-forge/go-skystrike/pkg/engine"
	"github.com/arcade-forge/go-skystrike/pkg/entity"
)

// TerminalRenderer provides a simple ASCII-based rendering for terminals
type TerminalRenderer struct {
	cols   int
	rows   int
	buffer [][]rune
	out    io.Writer
}

// archetypeGlyphs maps each enemy archetype to its terminal symbol.
var archetypeGlyphs = map[entity.Archetype]rune{
	entity.Small:    's',
	entity.Medium:   'm',
	entity.Large:    'L',
	entity.Boss:     'B',
	entity.Homing:   'h',
	entity.Circle:   'o',
	entity.Pentagon: 'p',
}

// NewTerminalRenderer creates a terminal renderer drawing into a grid
// of the given character dimensions.
func NewTerminalRenderer(cols, rows int, out io.Writer) *TerminalRenderer {
	if cols < 10 {
		cols = 10
	}
	if rows < 5 {
		rows = 5
	}
	buffer := make([][]rune, rows)
	for i := range buffer {
		buffer[i] = make([]rune, cols)
	}
	return &TerminalRenderer{
		cols:   cols,
		rows:   rows,
		buffer: buffer,
		out:    out,
	}
}

// worldToScreen maps a logical playfield position onto the character
// grid.
func (r *TerminalRenderer) worldToScreen(x, y, screenW, screenH float64) (int, int) {
	col := int(x / screenW * float64(r.cols))
	row := int(y / screenH * float64(r.rows))
	return col, row
}

// plot writes a glyph if the cell is on the grid.
func (r *TerminalRenderer) plot(col, row int, glyph rune) {
	if col >= 0 && col < r.cols && row >= 0 && row < r.rows {
		r.buffer[row][col] = glyph
	}
}

// clear resets the buffer to spaces.
func (r *TerminalRenderer) clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// Render implements Renderer: it redraws the full frame with a border
// and a status line.
func (r *TerminalRenderer) Render(snap *engine.Snapshot) {
	if snap == nil {
		return
	}
	r.clear()

	w, h := snap.ScreenWidth, snap.ScreenHeight

	for _, b := range snap.PlayerBullets {
		col, row := r.worldToScreen(b.Position.X, b.Position.Y, w, h)
		r.plot(col, row, '-')
	}
	for _, b := range snap.EnemyBullets {
		col, row := r.worldToScreen(b.Position.X, b.Position.Y, w, h)
		r.plot(col, row, '*')
	}
	for _, e := range snap.Enemies {
		glyph, ok := archetypeGlyphs[e.Archetype]
		if !ok {
			glyph = '?'
		}
		col, row := r.worldToScreen(e.Position.X, e.Position.Y, w, h)
		r.plot(col, row, glyph)
	}
	if snap.State == engine.StatePlaying || snap.State == engine.StatePaused {
		col, row := r.worldToScreen(snap.Player.Position.X, snap.Player.Position.Y, w, h)
		r.plot(col, row, '>')
	}

	// Home the cursor and clear the terminal before redrawing.
	fmt.Fprint(r.out, "\033[H\033[2J")
	fmt.Fprintln(r.out, "+"+strings.Repeat("-", r.cols)+"+")
	for y := range r.buffer {
		fmt.Fprintln(r.out, "|"+string(r.buffer[y])+"|")
	}
	fmt.Fprintln(r.out, "+"+strings.Repeat("-", r.cols)+"+")
	fmt.Fprintf(r.out, "score: %d  state: %s  tick: %d\n",
		snap.Score, snap.State, snap.Tick)
}

// Close implements Renderer.
func (r *TerminalRenderer) Close() error { return nil }
