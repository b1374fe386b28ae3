// Package widgets builds small interactive components on top of the
// window tree: a single-line editor and a selection list. Widgets keep
// their own state and push a display string into the window they are
// bound to.
package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jmhart/weft/pkg/ui/terminal"
	"github.com/jmhart/weft/pkg/ui/tui"
)

// Input is a single-line editor bound to a text window. Every edit
// re-renders the buffer into the window, marking the cursor cell with
// a reverse-video escape.
type Input struct {
	win    *tui.Text
	runes  []rune
	cursor int
	max    int
}

// InputConfig configures an editor.
type InputConfig struct {
	// Window receives the rendered buffer. Required.
	Window *tui.Text

	// Max caps the buffer length in runes. Zero means unlimited.
	Max int

	// Text seeds the buffer; the cursor starts at its end.
	Text string
}

// NewInput binds an editor to a text window.
func NewInput(cfg InputConfig) *Input {
	in := &Input{
		win:   cfg.Window,
		runes: []rune(cfg.Text),
		max:   cfg.Max,
	}
	in.cursor = len(in.runes)
	in.sync()
	return in
}

// Text returns the buffer contents.
func (in *Input) Text() string { return string(in.runes) }

// SetText replaces the buffer and moves the cursor to the end.
func (in *Input) SetText(s string) {
	in.runes = []rune(s)
	if in.max > 0 && len(in.runes) > in.max {
		in.runes = in.runes[:in.max]
	}
	in.cursor = len(in.runes)
	in.sync()
}

// Cursor returns the cursor position in runes.
func (in *Input) Cursor() int { return in.cursor }

// Width returns the display width of the buffer in cells.
func (in *Input) Width() int { return runewidth.StringWidth(string(in.runes)) }

// HandleKey applies one key to the buffer. Reports whether the key was
// an editing key; unrecognized keys fall through for other handlers.
func (in *Input) HandleKey(key terminal.KeyEvent) bool {
	switch key.Key {
	case terminal.KeyRune:
		if key.Rune < ' ' {
			return false
		}
		in.insert(key.Rune)
	case terminal.KeyBackspace:
		in.backspace()
	case terminal.KeyDelete:
		in.delete()
	case terminal.KeyLeft:
		if in.cursor > 0 {
			in.cursor--
		}
	case terminal.KeyRight:
		if in.cursor < len(in.runes) {
			in.cursor++
		}
	case terminal.KeyHome:
		in.cursor = 0
	case terminal.KeyEnd:
		in.cursor = len(in.runes)
	default:
		return false
	}
	in.sync()
	return true
}

func (in *Input) insert(r rune) {
	if in.max > 0 && len(in.runes) >= in.max {
		return
	}
	in.runes = append(in.runes, 0)
	copy(in.runes[in.cursor+1:], in.runes[in.cursor:])
	in.runes[in.cursor] = r
	in.cursor++
}

func (in *Input) backspace() {
	if in.cursor == 0 {
		return
	}
	in.runes = append(in.runes[:in.cursor-1], in.runes[in.cursor:]...)
	in.cursor--
}

func (in *Input) delete() {
	if in.cursor >= len(in.runes) {
		return
	}
	in.runes = append(in.runes[:in.cursor], in.runes[in.cursor+1:]...)
}

// sync renders the buffer into the bound window. The cursor cell is
// wrapped in a reverse-video escape; at the end of the buffer the
// cursor occupies a trailing marker cell.
func (in *Input) sync() {
	if in.win == nil || in.win.Destroyed() {
		return
	}
	var b strings.Builder
	for i, r := range in.runes {
		if i == in.cursor {
			b.WriteString("\x1b[7m")
			b.WriteRune(r)
			b.WriteString("\x1b[27m")
			continue
		}
		b.WriteRune(r)
	}
	if in.cursor == len(in.runes) {
		b.WriteString("\x1b[7m \x1b[27m")
	}
	in.win.SetText(b.String())
}
