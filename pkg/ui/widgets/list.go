package widgets

import (
	"github.com/jmhart/weft/pkg/ui/terminal"
	"github.com/jmhart/weft/pkg/ui/tui"
)

// List cycles root focus through a fixed sequence of windows. It is the
// glue for tab-navigation between a handful of focusable panes.
type List struct {
	root    *tui.Tui
	items   []tui.Node
	current int
}

// NewList builds a focus cycle over the given windows and focuses the
// first one.
func NewList(root *tui.Tui, items ...tui.Node) *List {
	l := &List{root: root, items: items, current: -1}
	if len(items) > 0 {
		l.Select(0)
	}
	return l
}

// Items returns the cycle in order.
func (l *List) Items() []tui.Node { return l.items }

// Current returns the selected window, or nil for an empty list.
func (l *List) Current() tui.Node {
	if l.current < 0 || l.current >= len(l.items) {
		return nil
	}
	return l.items[l.current]
}

// Select focuses the i-th window. Out-of-range indexes are ignored.
func (l *List) Select(i int) {
	if i < 0 || i >= len(l.items) {
		return
	}
	l.current = i
	l.root.SetFocus(l.items[i])
}

// Next advances the selection, wrapping around.
func (l *List) Next() {
	if len(l.items) == 0 {
		return
	}
	l.Select((l.current + 1) % len(l.items))
}

// Prev moves the selection back, wrapping around.
func (l *List) Prev() {
	if len(l.items) == 0 {
		return
	}
	l.Select((l.current - 1 + len(l.items)) % len(l.items))
}

// HandleKey maps Tab and the arrow keys to selection moves. Reports
// whether the key moved the selection.
func (l *List) HandleKey(key terminal.KeyEvent) bool {
	switch key.Key {
	case terminal.KeyTab:
		if key.Shift {
			l.Prev()
		} else {
			l.Next()
		}
	case terminal.KeyDown, terminal.KeyRight:
		l.Next()
	case terminal.KeyUp, terminal.KeyLeft:
		l.Prev()
	default:
		return false
	}
	return true
}
