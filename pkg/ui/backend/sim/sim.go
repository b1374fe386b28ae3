// Package sim provides an in-memory surface for tests, built on tcell's
// simulation screen. Tests inject keys and capture rendered frames
// without a real terminal.
package sim

import (
	"strings"
	"sync"

	tcellv2 "github.com/gdamore/tcell/v2"

	"github.com/jmhart/weft/pkg/ui/backend"
	"github.com/jmhart/weft/pkg/ui/backend/tcell"
	"github.com/jmhart/weft/pkg/ui/terminal"
)

// Surface is a testable surface backed by a simulation screen.
type Surface struct {
	*tcell.Surface
	screen tcellv2.SimulationScreen
	w, h   int
	mu     sync.Mutex
}

// New creates a simulation surface with the given dimensions.
func New(width, height int) *Surface {
	screen := tcellv2.NewSimulationScreen("")
	screen.SetSize(width, height)
	return &Surface{
		Surface: tcell.NewWithScreen(screen),
		screen:  screen,
		w:       width,
		h:       height,
	}
}

// Init initializes the simulation screen. The screen resets itself to
// its stock dimensions on Init, so the requested size is re-applied.
func (s *Surface) Init() error {
	if err := s.Surface.Init(); err != nil {
		return err
	}
	s.mu.Lock()
	s.screen.SetSize(s.w, s.h)
	s.mu.Unlock()
	return nil
}

// Resize changes the simulated terminal size.
func (s *Surface) Resize(width, height int) {
	s.mu.Lock()
	s.w, s.h = width, height
	s.screen.SetSize(width, height)
	s.mu.Unlock()
	s.PostEvent(terminal.ResizeEvent{Width: width, Height: height})
}

// InjectKey injects a key event.
func (s *Surface) InjectKey(key terminal.Key, r rune) {
	s.PostEvent(terminal.KeyEvent{Key: key, Rune: r})
}

// InjectRune injects a regular character keypress.
func (s *Surface) InjectRune(r rune) {
	s.InjectKey(terminal.KeyRune, r)
}

// InjectString injects a string as a sequence of key events.
func (s *Surface) InjectString(str string) {
	for _, r := range str {
		s.InjectRune(r)
	}
}

// Capture returns the current screen content as newline-joined rows.
func (s *Surface) Capture() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := s.screen.Size()
	var lines []string
	for y := 0; y < h; y++ {
		var line strings.Builder
		for x := 0; x < w; x++ {
			mainc, comb, _, _ := s.screen.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
			for _, c := range comb {
				line.WriteRune(c)
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// CaptureCell returns the rune and style of a single cell.
func (s *Surface) CaptureCell(x, y int) (mainc rune, style backend.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, _, ts, _ := s.screen.GetContent(x, y)
	return m, fromTcellStyle(ts)
}

// CaptureRegion captures a rectangular region of the screen.
func (s *Surface) CaptureRegion(x, y, w, h int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lines []string
	for row := y; row < y+h; row++ {
		var line strings.Builder
		for col := x; col < x+w; col++ {
			mainc, _, _, _ := s.screen.GetContent(col, row)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// FindText returns the position of text on screen, or (-1, -1).
func (s *Surface) FindText(text string) (x, y int) {
	for row, line := range strings.Split(s.Capture(), "\n") {
		if col := strings.Index(line, text); col >= 0 {
			return col, row
		}
	}
	return -1, -1
}

// ContainsText reports whether text appears anywhere on screen.
func (s *Surface) ContainsText(text string) bool {
	x, y := s.FindText(text)
	return x >= 0 && y >= 0
}

func fromTcellStyle(ts tcellv2.Style) backend.Style {
	fg, bg, attrs := ts.Decompose()
	style := backend.DefaultStyle().
		Foreground(fromTcellColor(fg)).
		Background(fromTcellColor(bg))

	if attrs&tcellv2.AttrBold != 0 {
		style = style.With(backend.AttrBold)
	}
	if attrs&tcellv2.AttrDim != 0 {
		style = style.With(backend.AttrDim)
	}
	if attrs&tcellv2.AttrItalic != 0 {
		style = style.With(backend.AttrItalic)
	}
	if attrs&tcellv2.AttrUnderline != 0 {
		style = style.With(backend.AttrUnderline)
	}
	if attrs&tcellv2.AttrBlink != 0 {
		style = style.With(backend.AttrBlink)
	}
	if attrs&tcellv2.AttrReverse != 0 {
		style = style.With(backend.AttrReverse)
	}
	return style
}

func fromTcellColor(tc tcellv2.Color) backend.Color {
	if tc == tcellv2.ColorDefault {
		return backend.ColorDefault
	}
	if tc&tcellv2.ColorIsRGB != 0 {
		r, g, b := tc.RGB()
		return backend.RGB(uint8(r), uint8(g), uint8(b))
	}
	return backend.Color(tc & 0xFF)
}

var _ backend.Surface = (*Surface)(nil)
