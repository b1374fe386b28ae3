package tui

import "github.com/jmhart/weft/pkg/ui/backend"

// Cell is a single character cell.
type Cell struct {
	Rune  rune
	Style backend.Style
}

// Buffer is the cell grid backing one window. Windows draw into their
// own buffer each pass, then present it into the root's screen buffer,
// which is flushed to the surface once per render. There is no dirty
// tracking: every pass is a full redraw.
type Buffer struct {
	cells []Cell
	w, h  int
}

// NewBuffer creates a buffer with the given dimensions.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{cells: make([]Cell, w*h), w: w, h: h}
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.w, b.h
}

// Resize reallocates the grid. Content is discarded; the next render
// pass repaints everything anyway.
func (b *Buffer) Resize(w, h int) {
	if w == b.w && h == b.h {
		return
	}
	b.cells = make([]Cell, w*h)
	b.w = w
	b.h = h
}

// Fill sets every cell to the rune and style.
func (b *Buffer) Fill(r rune, s backend.Style) {
	cell := Cell{Rune: r, Style: s}
	for i := range b.cells {
		b.cells[i] = cell
	}
}

// Set writes one cell. Out-of-bounds writes are clipped.
func (b *Buffer) Set(x, y int, r rune, s backend.Style) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.cells[y*b.w+x] = Cell{Rune: r, Style: s}
}

// Get returns the cell at (x, y), or an empty cell out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return Cell{Rune: ' '}
	}
	return b.cells[y*b.w+x]
}

type boxGlyphs struct {
	tl, tr, bl, br, h, v rune
}

var (
	solidBox  = boxGlyphs{tl: '┌', tr: '┐', bl: '└', br: '┘', h: '─', v: '│'}
	dashedBox = boxGlyphs{tl: '┌', tr: '┐', bl: '└', br: '┘', h: '┄', v: '┆'}
)

// DrawBorder draws a one-cell border along the buffer's edge. The dashed
// flag selects the glyph set.
func (b *Buffer) DrawBorder(s backend.Style, dashed bool) {
	if b.w < 2 || b.h < 2 {
		return
	}
	g := solidBox
	if dashed {
		g = dashedBox
	}

	b.Set(0, 0, g.tl, s)
	b.Set(b.w-1, 0, g.tr, s)
	b.Set(0, b.h-1, g.bl, s)
	b.Set(b.w-1, b.h-1, g.br, s)

	for x := 1; x < b.w-1; x++ {
		b.Set(x, 0, g.h, s)
		b.Set(x, b.h-1, g.h, s)
	}
	for y := 1; y < b.h-1; y++ {
		b.Set(0, y, g.v, s)
		b.Set(b.w-1, y, g.v, s)
	}
}

// BlitTo copies this buffer into dst with its origin at (atX, atY),
// clipped to dst's bounds.
func (b *Buffer) BlitTo(dst *Buffer, atX, atY int) {
	for y := 0; y < b.h; y++ {
		dy := atY + y
		if dy < 0 || dy >= dst.h {
			continue
		}
		for x := 0; x < b.w; x++ {
			dx := atX + x
			if dx < 0 || dx >= dst.w {
				continue
			}
			dst.cells[dy*dst.w+dx] = b.cells[y*b.w+x]
		}
	}
}

// FlushTo writes every cell to the surface. Unset cells flush as spaces.
func (b *Buffer) FlushTo(surf backend.Surface) {
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			cell := b.cells[y*b.w+x]
			if cell.Rune == 0 {
				cell.Rune = ' '
			}
			surf.SetContent(x, y, cell.Rune, nil, cell.Style)
		}
	}
}
