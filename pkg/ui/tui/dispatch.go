package tui

import (
	"github.com/jmhart/weft/pkg/ui/terminal"
)

// Dispatch offers a key to the handler chain: root first, then the
// active menu, then the focused window. The first handler returning
// true consumes the key; Dispatch reports whether anyone did.
func (t *Tui) Dispatch(key terminal.KeyEvent) bool {
	if t.destroyed {
		return false
	}
	if t.handler != nil && t.handler(t, key) {
		t.log.Debug("key consumed by root handler", "key", key.Key, "rune", key.Rune)
		return true
	}
	if t.menu != nil && t.menu.handler != nil && t.menu.handler(t.menu, key) {
		t.log.Debug("key consumed by menu handler", "menu", t.menu.name)
		return true
	}
	if f := t.focused; f != nil {
		head := f.Base()
		if !head.destroyed && head.handler != nil && head.handler(f, key) {
			t.log.Debug("key consumed by window handler", "window", head.name)
			return true
		}
	}
	return false
}
