// Package tcell provides a Surface implementation using tcell.
package tcell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/jmhart/weft/pkg/ui/backend"
	"github.com/jmhart/weft/pkg/ui/terminal"
)

// Surface implements backend.Surface on a tcell screen.
type Surface struct {
	screen tcell.Screen
}

// New creates a surface for the attached terminal.
func New() (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Surface{screen: screen}, nil
}

// NewWithScreen wraps an existing tcell screen (used by the simulation
// surface and by tests).
func NewWithScreen(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Init enters raw mode and the alternate screen. On failure tcell leaves
// the terminal in its original mode and the error is returned as-is.
func (s *Surface) Init() error {
	return s.screen.Init()
}

// Fini restores the terminal.
func (s *Surface) Fini() {
	s.screen.Fini()
}

// Size returns the terminal dimensions.
func (s *Surface) Size() (width, height int) {
	return s.screen.Size()
}

// SetContent sets a cell.
func (s *Surface) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
	s.screen.SetContent(x, y, mainc, comb, toTcellStyle(style))
}

// Show flushes pending cells to the terminal.
func (s *Surface) Show() {
	s.screen.Show()
}

// Clear clears the screen.
func (s *Surface) Clear() {
	s.screen.Clear()
}

// HideCursor hides the cursor.
func (s *Surface) HideCursor() {
	s.screen.HideCursor()
}

// ShowCursor shows the cursor at its last position.
func (s *Surface) ShowCursor() {
	// tcell shows the cursor when its position is set
}

// SetCursorPos moves (and shows) the cursor.
func (s *Surface) SetCursorPos(x, y int) {
	s.screen.ShowCursor(x, y)
}

// PollEvent blocks for the next input event.
func (s *Surface) PollEvent() terminal.Event {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if converted := convertEvent(ev); converted != nil {
			return converted
		}
	}
}

// PostEvent injects an event into the queue.
func (s *Surface) PostEvent(ev terminal.Event) error {
	tev := reverseConvertEvent(ev)
	if tev != nil {
		return s.screen.PostEvent(tev)
	}
	return nil
}

// Sync forces a full repaint on the next Show.
func (s *Surface) Sync() {
	s.screen.Sync()
}

func toTcellStyle(s backend.Style) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(toTcellColor(s.FG)).
		Background(toTcellColor(s.BG))

	if s.Has(backend.AttrBold) {
		style = style.Bold(true)
	}
	if s.Has(backend.AttrDim) {
		style = style.Dim(true)
	}
	if s.Has(backend.AttrItalic) {
		style = style.Italic(true)
	}
	if s.Has(backend.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Has(backend.AttrBlink) {
		style = style.Blink(true)
	}
	if s.Has(backend.AttrReverse) {
		style = style.Reverse(true)
	}
	return style
}

func toTcellColor(c backend.Color) tcell.Color {
	if c == backend.ColorDefault {
		return tcell.ColorDefault
	}
	if c.IsRGB() {
		r, g, b := c.Components()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.PaletteColor(int(c))
}

func convertEvent(ev tcell.Event) terminal.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return terminal.KeyEvent{
			Key:   convertKey(e.Key()),
			Rune:  e.Rune(),
			Alt:   e.Modifiers()&tcell.ModAlt != 0,
			Ctrl:  e.Modifiers()&tcell.ModCtrl != 0,
			Shift: e.Modifiers()&tcell.ModShift != 0,
		}
	case *tcell.EventResize:
		w, h := e.Size()
		return terminal.ResizeEvent{Width: w, Height: h}
	default:
		return nil
	}
}

func convertKey(k tcell.Key) terminal.Key {
	switch k {
	case tcell.KeyRune:
		return terminal.KeyRune
	case tcell.KeyEnter:
		return terminal.KeyEnter
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return terminal.KeyBackspace
	case tcell.KeyTab:
		return terminal.KeyTab
	case tcell.KeyEscape:
		return terminal.KeyEscape
	case tcell.KeyUp:
		return terminal.KeyUp
	case tcell.KeyDown:
		return terminal.KeyDown
	case tcell.KeyLeft:
		return terminal.KeyLeft
	case tcell.KeyRight:
		return terminal.KeyRight
	case tcell.KeyHome:
		return terminal.KeyHome
	case tcell.KeyEnd:
		return terminal.KeyEnd
	case tcell.KeyDelete:
		return terminal.KeyDelete
	case tcell.KeyCtrlC:
		return terminal.KeyCtrlC
	case tcell.KeyCtrlD:
		return terminal.KeyCtrlD
	case tcell.KeyCtrlS:
		return terminal.KeyCtrlS
	case tcell.KeyCtrlZ:
		return terminal.KeyCtrlZ
	default:
		return terminal.KeyNone
	}
}

func reverseConvertEvent(ev terminal.Event) tcell.Event {
	switch e := ev.(type) {
	case terminal.KeyEvent:
		return tcell.NewEventKey(reverseConvertKey(e.Key), e.Rune, tcell.ModNone)
	case terminal.ResizeEvent:
		return tcell.NewEventResize(e.Width, e.Height)
	default:
		return nil
	}
}

func reverseConvertKey(k terminal.Key) tcell.Key {
	switch k {
	case terminal.KeyRune:
		return tcell.KeyRune
	case terminal.KeyEnter:
		return tcell.KeyEnter
	case terminal.KeyBackspace:
		return tcell.KeyBackspace2
	case terminal.KeyTab:
		return tcell.KeyTab
	case terminal.KeyEscape:
		return tcell.KeyEscape
	case terminal.KeyUp:
		return tcell.KeyUp
	case terminal.KeyDown:
		return tcell.KeyDown
	case terminal.KeyLeft:
		return tcell.KeyLeft
	case terminal.KeyRight:
		return tcell.KeyRight
	case terminal.KeyHome:
		return tcell.KeyHome
	case terminal.KeyEnd:
		return tcell.KeyEnd
	case terminal.KeyDelete:
		return tcell.KeyDelete
	case terminal.KeyCtrlC:
		return tcell.KeyCtrlC
	case terminal.KeyCtrlD:
		return tcell.KeyCtrlD
	case terminal.KeyCtrlS:
		return tcell.KeyCtrlS
	case terminal.KeyCtrlZ:
		return tcell.KeyCtrlZ
	default:
		return tcell.KeyNUL
	}
}

var _ backend.Surface = (*Surface)(nil)
