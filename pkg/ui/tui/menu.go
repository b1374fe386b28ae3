package tui

import (
	"fmt"

	"github.com/jmhart/weft/pkg/ui/terminal"
)

// MenuHandler reacts to a key delivered to its menu.
type MenuHandler func(m *Menu, key terminal.KeyEvent) bool

// Menu is a named, independently activatable set of top-level windows.
// It owns its windows exclusively; destroying the menu destroys them
// all.
type Menu struct {
	name      string
	windows   []Node
	handler   MenuHandler
	tui       *Tui
	destroyed bool
}

// MenuConfig configures a menu.
type MenuConfig struct {
	Name    string
	Handler MenuHandler
}

// Name returns the menu's name.
func (m *Menu) Name() string { return m.name }

// Windows returns the menu's top-level windows in insertion order.
func (m *Menu) Windows() []Node { return m.windows }

// SetHandler replaces the menu's key handler.
func (m *Menu) SetHandler(h MenuHandler) { m.handler = h }

// Destroyed reports whether the menu has been torn down.
func (m *Menu) Destroyed() bool { return m.destroyed }

// NewText creates a top-level text window owned by this menu.
func (m *Menu) NewText(cfg TextConfig) (*Text, error) {
	if m.destroyed {
		return nil, fmt.Errorf("tui: menu %q is destroyed", m.name)
	}
	w := m.tui.newText(cfg, nil)
	m.windows = append(m.windows, w)
	return w, nil
}

// NewParent creates a top-level container window owned by this menu.
func (m *Menu) NewParent(cfg ParentConfig) (*Parent, error) {
	if m.destroyed {
		return nil, fmt.Errorf("tui: menu %q is destroyed", m.name)
	}
	w := m.tui.newParent(cfg, nil)
	m.windows = append(m.windows, w)
	return w, nil
}
