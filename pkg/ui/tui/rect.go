package tui

// Rect is a declared geometry specification for a window. It is resolved
// against the owning container by the layout solver on every render:
//
//   - W or H of zero or below means the parent's inner dimension plus
//     that value (0 fills, -2 fills minus two cells).
//   - Negative X or Y anchors from the right/bottom edge of the parent
//     (Y of -1 with H of 1 is the parent's bottom row).
//
// The none marker (RectNone) leaves geometry entirely to the solver,
// which distributes such windows along the container's axis.
type Rect struct {
	W, H int
	X, Y int
	none bool
}

// RectNone returns the unspecified rect.
func RectNone() Rect {
	return Rect{none: true}
}

// IsNone reports whether the rect is unspecified.
func (r Rect) IsNone() bool {
	return r.none
}

// Frame is a concrete, screen-absolute rectangle produced by the layout
// solver. Each window caches its last frame; the cache is owned by the
// window and recomputed on layout, never read by other windows.
type Frame struct {
	X, Y, W, H int
}

func (f Frame) inset(n int) Frame {
	return Frame{
		X: f.X + n,
		Y: f.Y + n,
		W: max(0, f.W-2*n),
		H: max(0, f.H-2*n),
	}
}
