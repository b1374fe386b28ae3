package tui

import "github.com/jmhart/weft/pkg/ui/backend"

// Color is a foreground/background channel pair. A channel holding
// backend.ColorDefault is transparent: during a render pass it inherits
// the corresponding channel of the active color. Colors are never stored
// resolved; resolution happens transiently while rendering.
type Color struct {
	FG backend.Color
	BG backend.Color
}

// ColorNone is fully transparent (both channels inherit).
var ColorNone = Color{FG: backend.ColorDefault, BG: backend.ColorDefault}

// Resolve substitutes transparent channels from the active color. The
// result is both the color to paint with and the active color for the
// rest of the subtree.
func (c Color) Resolve(active Color) Color {
	if c.FG == backend.ColorDefault {
		c.FG = active.FG
	}
	if c.BG == backend.ColorDefault {
		c.BG = active.BG
	}
	return c
}

// Style converts a color to a drawing style.
func (c Color) Style() backend.Style {
	return backend.Style{FG: c.FG, BG: c.BG}
}

// MaxColors is the size of the named palette (indices 0..7; -1 is the
// terminal default).
const MaxColors = 8

// PairIndex maps the pair to its flat palette-pair index. Surfaces that
// require pre-registered color pairs register one per (fg, bg)
// combination, including pairs with default channels, and look them up
// by this index.
func (c Color) PairIndex() int {
	return (int(c.FG)+1)*(MaxColors+1) + (int(c.BG) + 1)
}

// Pairs enumerates every registerable (fg, bg) combination in pair-index
// order, default channels included.
func Pairs() []Color {
	pairs := make([]Color, 0, (MaxColors+1)*(MaxColors+1))
	for fg := -1; fg < MaxColors; fg++ {
		for bg := -1; bg < MaxColors; bg++ {
			pairs = append(pairs, Color{FG: backend.Color(fg), BG: backend.Color(bg)})
		}
	}
	return pairs
}
