package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/jmhart/weft/pkg/ui/backend"
	"github.com/jmhart/weft/pkg/ui/terminal"
)

// RootHandler reacts to a key before it reaches the active menu or the
// focused window.
type RootHandler func(t *Tui, key terminal.KeyEvent) bool

// Config configures a root.
type Config struct {
	// Surface is the terminal to draw to. It must already be
	// initialized; the caller keeps responsibility for Fini.
	Surface backend.Surface

	// Color is the base active color each render pass starts from.
	Color Color

	// Handler is consulted first on every key press.
	Handler RootHandler

	// Log receives render and dispatch diagnostics. Nil discards.
	Log *slog.Logger
}

// Tui is the root of the window tree. It owns all menus and
// always-visible top-level windows, tracks the active menu and the
// focused window, and drives rendering and key dispatch. All operations
// are single-threaded; rendering, dispatch, and tree mutation happen
// between input reads.
type Tui struct {
	surface backend.Surface
	log     *slog.Logger

	w, h    int
	menus   []*Menu
	windows []Node
	menu    *Menu
	focused Node
	handler RootHandler
	base    Color
	screen  *Buffer

	running   bool
	live      int
	destroyed bool
}

// New creates a root against an initialized surface and snapshots its
// dimensions.
func New(cfg Config) (*Tui, error) {
	if cfg.Surface == nil {
		return nil, errors.New("tui: surface is required")
	}
	log := cfg.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	w, h := cfg.Surface.Size()
	return &Tui{
		surface: cfg.Surface,
		log:     log,
		w:       w,
		h:       h,
		handler: cfg.Handler,
		base:    cfg.Color,
		screen:  NewBuffer(w, h),
	}, nil
}

// Size returns the terminal dimensions snapshot.
func (t *Tui) Size() (w, h int) {
	return t.w, t.h
}

// Windows returns the always-visible top-level windows in insertion
// order.
func (t *Tui) Windows() []Node { return t.windows }

// Menus returns all menus in creation order.
func (t *Tui) Menus() []*Menu { return t.menus }

// ActiveMenu returns the active menu, or nil.
func (t *Tui) ActiveMenu() *Menu { return t.menu }

// SetMenu activates a menu (or none, with nil). The menu must belong to
// this root.
func (t *Tui) SetMenu(m *Menu) {
	t.menu = m
}

// ActivateMenu activates the named menu. Returns false if no such menu
// exists.
func (t *Tui) ActivateMenu(name string) bool {
	for _, m := range t.menus {
		if m.name == name {
			t.menu = m
			return true
		}
	}
	return false
}

// Focused returns the focused window, or nil.
func (t *Tui) Focused() Node { return t.focused }

// SetFocus moves focus to a window reachable from the tree, or clears
// it with nil.
func (t *Tui) SetFocus(n Node) {
	t.focused = n
}

// LiveNodes returns the number of window handles currently alive.
func (t *Tui) LiveNodes() int { return t.live }

// SetHandler replaces the root key handler.
func (t *Tui) SetHandler(h RootHandler) { t.handler = h }

// Log returns the root's logger.
func (t *Tui) Log() *slog.Logger { return t.log }

// Running reports whether the input loop is active.
func (t *Tui) Running() bool { return t.running }

// Stop flips the running flag; the input loop exits after the current
// iteration.
func (t *Tui) Stop() {
	t.running = false
}

// NewMenu creates a menu owned by this root.
func (t *Tui) NewMenu(cfg MenuConfig) (*Menu, error) {
	if t.destroyed {
		return nil, errors.New("tui: root is destroyed")
	}
	if cfg.Name == "" {
		return nil, errors.New("tui: menu name is required")
	}
	for _, m := range t.menus {
		if m.name == cfg.Name {
			return nil, fmt.Errorf("tui: menu %q already exists", cfg.Name)
		}
	}
	m := &Menu{name: cfg.Name, handler: cfg.Handler, tui: t}
	t.menus = append(t.menus, m)
	return m, nil
}

// NewText creates an always-visible top-level text window.
func (t *Tui) NewText(cfg TextConfig) (*Text, error) {
	if t.destroyed {
		return nil, errors.New("tui: root is destroyed")
	}
	w := t.newText(cfg, nil)
	t.windows = append(t.windows, w)
	return w, nil
}

// NewParent creates an always-visible top-level container window.
func (t *Tui) NewParent(cfg ParentConfig) (*Parent, error) {
	if t.destroyed {
		return nil, errors.New("tui: root is destroyed")
	}
	w := t.newParent(cfg, nil)
	t.windows = append(t.windows, w)
	return w, nil
}

func (t *Tui) newHead(name string, rect Rect, color Color, hidden bool, handler Handler, parent *Parent) Window {
	t.live++
	return Window{
		name:    name,
		visible: !hidden,
		rect:    rect,
		color:   color,
		handler: handler,
		tui:     t,
		parent:  parent,
	}
}

func (t *Tui) newText(cfg TextConfig, parent *Parent) *Text {
	w := &Text{
		Window: t.newHead(cfg.Name, cfg.Rect, cfg.Color, cfg.Hidden, cfg.Handler, parent),
		pos:    cfg.Pos,
		align:  cfg.Align,
	}
	w.SetText(cfg.Text)
	return w
}

func (t *Tui) newParent(cfg ParentConfig, parent *Parent) *Parent {
	var border *Border
	if cfg.Border != nil {
		b := *cfg.Border
		border = &b
	}
	return &Parent{
		Window:   t.newHead(cfg.Name, cfg.Rect, cfg.Color, cfg.Hidden, cfg.Handler, parent),
		vertical: cfg.Vertical,
		border:   border,
		padding:  cfg.Padding,
		pos:      cfg.Pos,
		align:    cfg.Align,
	}
}

// DestroyWindow detaches a window from its owner and tears it down
// recursively: children first (depth-first), then the border, then the
// backing buffer. The handle is unusable afterwards.
func (t *Tui) DestroyWindow(n Node) {
	if n == nil || n.Base().destroyed {
		return
	}
	t.detach(n)
	t.free(n)
}

// DestroyMenu tears down a menu and every window it owns.
func (t *Tui) DestroyMenu(m *Menu) {
	if m == nil || m.destroyed {
		return
	}
	for _, w := range m.windows {
		t.free(w)
	}
	m.windows = nil
	m.handler = nil
	m.destroyed = true
	if t.menu == m {
		t.menu = nil
	}
	t.menus = slices.DeleteFunc(t.menus, func(x *Menu) bool { return x == m })
}

// Destroy tears the whole tree down: all menus, then all top-level
// windows. The root is unusable afterwards.
func (t *Tui) Destroy() {
	if t.destroyed {
		return
	}
	for len(t.menus) > 0 {
		t.DestroyMenu(t.menus[0])
	}
	for _, w := range t.windows {
		t.free(w)
	}
	t.windows = nil
	t.menu = nil
	t.focused = nil
	t.screen = nil
	t.destroyed = true
	t.running = false
}

// detach removes the window from its parent's child sequence, or from
// the root's or a menu's top-level list.
func (t *Tui) detach(n Node) {
	head := n.Base()
	if p := head.parent; p != nil {
		p.children = slices.DeleteFunc(p.children, func(c Node) bool { return c == n })
		return
	}
	before := len(t.windows)
	t.windows = slices.DeleteFunc(t.windows, func(c Node) bool { return c == n })
	if len(t.windows) != before {
		return
	}
	for _, m := range t.menus {
		m.windows = slices.DeleteFunc(m.windows, func(c Node) bool { return c == n })
	}
}

// free releases a detached subtree depth-first. Back-references are
// never followed; each node clears its own state only.
func (t *Tui) free(n Node) {
	if p, ok := n.(*Parent); ok {
		for _, c := range p.children {
			t.free(c)
		}
		p.children = nil
		p.border = nil
	}
	if txt, ok := n.(*Text); ok {
		txt.plain = ""
	}
	head := n.Base()
	head.buf = nil
	head.handler = nil
	head.parent = nil
	head.Data = nil
	head.destroyed = true
	if t.focused == n {
		t.focused = nil
	}
	t.live--
}

// Run drives the input loop: block for a key, dispatch it, redraw.
// Stops when Stop is called, the surface shuts down, or the context is
// cancelled. Resize events re-snapshot the terminal dimensions.
func (t *Tui) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	t.running = true
	t.Render()

	for t.running {
		if err := ctx.Err(); err != nil {
			t.running = false
			return err
		}
		ev := t.surface.PollEvent()
		if ev == nil {
			t.running = false
			return nil
		}
		switch e := ev.(type) {
		case terminal.KeyEvent:
			t.Dispatch(e)
			t.Render()
		case terminal.ResizeEvent:
			t.w, t.h = e.Width, e.Height
			t.log.Debug("terminal resized", "w", t.w, "h", t.h)
			t.Render()
		}
	}
	return nil
}
