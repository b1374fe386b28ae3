// Package tui models a tree of rectangular windows (containers and text
// leaves), composes their colors and borders, reflows text inside them,
// and redraws the whole tree to a terminal surface on every update.
package tui

import (
	"fmt"

	"github.com/jmhart/weft/pkg/ui/reflow"
	"github.com/jmhart/weft/pkg/ui/terminal"
)

// Handler reacts to a key delivered to its window. Returning true stops
// propagation of the key.
type Handler func(n Node, key terminal.KeyEvent) bool

// Pos places content along one dimension: a text block vertically inside
// its window, or children across a container's cross axis. The values
// double as the shift factor in position arithmetic.
type Pos int

const (
	PosStart  Pos = 0
	PosCenter Pos = 1
	PosEnd    Pos = 2
)

// Align distributes content along a dimension: text lines horizontally,
// or children along a container's main axis.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignBetween
	AlignAround
	AlignEvenly
)

// Border decorates a container's edge. It is owned exclusively by its
// container and destroyed with it.
type Border struct {
	Color  Color
	Dashed bool
}

// Node is a window in the tree: either a *Text leaf or a *Parent
// container.
type Node interface {
	// Base returns the shared window head.
	Base() *Window
}

// Window is the head shared by both window variants. It carries
// identity, visibility, declared and cached geometry, color, the
// optional key handler, non-owning back-references, and an opaque slot
// for auxiliary data owned by whoever attached it.
type Window struct {
	name    string
	visible bool
	rect    Rect
	frame   Frame
	color   Color
	handler Handler
	buf     *Buffer
	tui     *Tui
	parent  *Parent

	// Data is auxiliary state attached by the caller (an input editor,
	// a selection list). The window does not own it.
	Data any

	destroyed bool
}

// Base returns the window head itself.
func (w *Window) Base() *Window { return w }

// Name returns the window's identity.
func (w *Window) Name() string { return w.name }

// Visible reports whether the window takes part in rendering.
func (w *Window) Visible() bool { return w.visible }

// SetVisible shows or hides the window.
func (w *Window) SetVisible(v bool) { w.visible = v }

// Rect returns the declared geometry.
func (w *Window) Rect() Rect { return w.rect }

// SetRect replaces the declared geometry. Takes effect on the next
// render.
func (w *Window) SetRect(r Rect) { w.rect = r }

// Frame returns the concrete geometry from the last layout pass.
func (w *Window) Frame() Frame { return w.frame }

// Color returns the declared color.
func (w *Window) Color() Color { return w.color }

// SetColor replaces the declared color.
func (w *Window) SetColor(c Color) { w.color = c }

// SetHandler replaces the window's key handler.
func (w *Window) SetHandler(h Handler) { w.handler = h }

// Root returns the owning root.
func (w *Window) Root() *Tui { return w.tui }

// Container returns the owning container, or nil for a top-level
// window.
func (w *Window) Container() *Parent { return w.parent }

// Destroyed reports whether the window has been torn down.
func (w *Window) Destroyed() bool { return w.destroyed }

func (w *Window) ensureBuffer(width, height int) {
	if w.buf == nil {
		w.buf = NewBuffer(width, height)
		return
	}
	w.buf.Resize(width, height)
}

// Text is a leaf window rendering a display string, which may embed
// ANSI color escapes. Geometry is computed from the plain-text
// projection of the string.
type Text struct {
	Window
	content string
	plain   string
	pos     Pos
	align   Align
}

// Text returns the display string.
func (t *Text) Text() string { return t.content }

// SetText replaces the display string and recomputes the plain-text
// cache.
func (t *Text) SetText(s string) {
	t.content = s
	t.plain = reflow.StripEscapes(s)
}

// Plain returns the display string with escapes stripped.
func (t *Text) Plain() string { return t.plain }

// SetPos changes the vertical position policy.
func (t *Text) SetPos(p Pos) { t.pos = p }

// SetAlign changes the horizontal alignment policy.
func (t *Text) SetAlign(a Align) { t.align = a }

// Parent is a container window stacking children along one axis.
// Children are owned exclusively; insertion order is paint and focus
// order.
type Parent struct {
	Window
	children []Node
	vertical bool
	border   *Border
	padding  bool
	pos      Pos
	align    Align
}

// Children returns the ordered child sequence.
func (p *Parent) Children() []Node { return p.children }

// Vertical reports whether children stack top to bottom.
func (p *Parent) Vertical() bool { return p.vertical }

// Border returns the container's border, or nil.
func (p *Parent) Border() *Border { return p.border }

// TextConfig configures a text window.
type TextConfig struct {
	Name    string
	Rect    Rect
	Color   Color
	Hidden  bool
	Handler Handler
	Text    string
	Pos     Pos
	Align   Align
}

// ParentConfig configures a container window.
type ParentConfig struct {
	Name     string
	Rect     Rect
	Color    Color
	Hidden   bool
	Handler  Handler
	Vertical bool
	Border   *Border
	Padding  bool
	Pos      Pos
	Align    Align
}

// NewText creates a text window owned by this container.
func (p *Parent) NewText(cfg TextConfig) (*Text, error) {
	if p.destroyed {
		return nil, fmt.Errorf("tui: container %q is destroyed", p.name)
	}
	w := p.tui.newText(cfg, p)
	p.children = append(p.children, w)
	return w, nil
}

// NewParent creates a container window owned by this container.
func (p *Parent) NewParent(cfg ParentConfig) (*Parent, error) {
	if p.destroyed {
		return nil, fmt.Errorf("tui: container %q is destroyed", p.name)
	}
	w := p.tui.newParent(cfg, p)
	p.children = append(p.children, w)
	return w, nil
}
