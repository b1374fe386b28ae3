package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/jmhart/weft/pkg/ui/backend"
	"github.com/jmhart/weft/pkg/ui/reflow"
)

// Render redraws the whole tree: always-visible windows first, then the
// active menu's windows, each set in reverse insertion order so that
// earlier-inserted windows layer on top. Every pass is a full redraw;
// the shared screen buffer is flushed to the surface once at the end.
func (t *Tui) Render() {
	if t.destroyed {
		return
	}
	t.surface.HideCursor()
	t.layout()

	t.screen.Resize(t.w, t.h)
	t.screen.Fill(' ', t.base.Style())

	for i := len(t.windows) - 1; i >= 0; i-- {
		t.renderNode(t.windows[i], t.base)
	}
	if t.menu != nil {
		for i := len(t.menu.windows) - 1; i >= 0; i-- {
			t.renderNode(t.menu.windows[i], t.base)
		}
	}

	t.screen.FlushTo(t.surface)
	t.surface.Show()
}

// renderNode draws one window into its backing buffer and presents the
// buffer into the screen buffer. The active color is threaded down the
// recursion explicitly: a container's effective color becomes the
// active color for its children, restored simply by returning.
func (t *Tui) renderNode(n Node, active Color) {
	head := n.Base()
	if head.destroyed || !head.visible || head.buf == nil {
		return
	}
	effective := head.color.Resolve(active)
	head.buf.Fill(' ', effective.Style())

	switch v := n.(type) {
	case *Parent:
		if v.border != nil {
			borderColor := v.border.Color.Resolve(effective)
			head.buf.DrawBorder(borderColor.Style(), v.border.Dashed)
		}
		head.buf.BlitTo(t.screen, head.frame.X, head.frame.Y)
		for _, c := range v.children {
			t.renderNode(c, effective)
		}
	case *Text:
		v.plain = reflow.StripEscapes(v.content)
		if err := drawText(v, effective); err != nil {
			// Content that cannot be wrapped is a content error, not a
			// render failure; the leaf stays blank.
			t.log.Warn("text does not fit its window",
				"window", head.name, "width", head.frame.W, "err", err)
		}
		head.buf.BlitTo(t.screen, head.frame.X, head.frame.Y)
	}
}

// drawText maps the display string onto the geometry computed from its
// plain-text projection. Escape sequences adjust the drawing style
// without advancing the line cursor; a space at the start of a line is
// invisible; reaching a line's recorded width starts the next line.
func drawText(v *Text, effective Color) error {
	frame := v.frame
	if frame.W < 1 || frame.H < 1 {
		return nil
	}
	h, err := reflow.HeightForWidth(v.plain, frame.W)
	if err != nil {
		return err
	}
	ws := reflow.LineWidths(v.plain, h)

	state := sgrState{color: effective}
	runes := []rune(v.content)
	li, lineW, y := 0, 0, 0

	for i := 0; i < len(runes) && li < len(ws); i++ {
		r := runes[i]
		if r == 0x1b {
			j := i
			for j < len(runes) && runes[j] != 'm' {
				j++
			}
			if j < len(runes) {
				state = state.apply(runes[i:j+1], effective)
			}
			i = j
			continue
		}

		switch {
		case r == ' ' && lineW == 0:
			// Leading space from wrapping: skip without advancing.
		case lineW >= ws[li]:
			// Line complete; this rune is the break that triggered it
			// (the newline or the break space) and is consumed.
			li++
			lineW = 0
			y++
		default:
			xShift := alignShift(v.align, frame.W, ws[li])
			yShift := int(v.pos) * (frame.H - h) / 2
			v.buf.Set(xShift+lineW, yShift+y, r, state.style())
			lineW += runewidth.RuneWidth(r)
		}
	}
	return nil
}

// alignShift places one line of the given width inside the window.
func alignShift(a Align, frameW, lineW int) int {
	switch a {
	case AlignStart:
		return 0
	case AlignEnd:
		return frameW - lineW
	default:
		return (frameW - lineW) / 2
	}
}

// sgrState is the running style while walking a display string.
type sgrState struct {
	color Color
	attrs backend.AttrMask
}

func (s sgrState) style() backend.Style {
	return s.color.Style().With(s.attrs)
}

// apply interprets one SGR sequence (ESC through 'm'). Supported codes:
// reset, bold, dim, underline, reverse and their off codes, and the
// 30/40-series palette colors; 39/49 restore the window's effective
// channel.
func (s sgrState) apply(seq []rune, effective Color) sgrState {
	// Strip "ESC [" and the trailing "m".
	body := seq
	if len(body) > 0 && body[0] == 0x1b {
		body = body[1:]
	}
	if len(body) > 0 && body[0] == '[' {
		body = body[1:]
	}
	if len(body) > 0 && body[len(body)-1] == 'm' {
		body = body[:len(body)-1]
	}

	code := 0
	flush := func() {
		switch {
		case code == 0:
			s = sgrState{color: effective}
		case code == 1:
			s.attrs |= backend.AttrBold
		case code == 2:
			s.attrs |= backend.AttrDim
		case code == 4:
			s.attrs |= backend.AttrUnderline
		case code == 7:
			s.attrs |= backend.AttrReverse
		case code == 22:
			s.attrs &^= backend.AttrBold | backend.AttrDim
		case code == 24:
			s.attrs &^= backend.AttrUnderline
		case code == 27:
			s.attrs &^= backend.AttrReverse
		case code >= 30 && code <= 37:
			s.color.FG = backend.Color(code - 30)
		case code == 39:
			s.color.FG = effective.FG
		case code >= 40 && code <= 47:
			s.color.BG = backend.Color(code - 40)
		case code == 49:
			s.color.BG = effective.BG
		}
		code = 0
	}

	for _, r := range body {
		switch {
		case r >= '0' && r <= '9':
			code = code*10 + int(r-'0')
		case r == ';':
			flush()
		}
	}
	flush()
	return s
}
