package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jmhart/weft/pkg/ui/reflow"
)

// The layout solver turns declared rects into concrete frames. It runs
// at the start of every render pass, against the current terminal
// dimensions.
//
// Top-level windows resolve against the full screen; an unspecified
// rect fills it. Children with explicit rects resolve against the
// container's inner frame (inside border and padding). Children with
// unspecified rects are sized to their content and distributed along
// the container's main axis according to its Align policy; the Pos
// policy places each of them across the cross axis. Integer remainders
// from gap division go to the earliest gaps.

func (t *Tui) layout() {
	screen := Frame{X: 0, Y: 0, W: t.w, H: t.h}
	for _, n := range t.windows {
		layoutNode(n, screen)
	}
	if t.menu != nil {
		for _, n := range t.menu.windows {
			layoutNode(n, screen)
		}
	}
}

func layoutNode(n Node, avail Frame) {
	assignFrame(n, resolveRect(n.Base().rect, avail))
}

func assignFrame(n Node, f Frame) {
	head := n.Base()
	head.frame = f
	head.ensureBuffer(f.W, f.H)
	if p, ok := n.(*Parent); ok {
		layoutChildren(p)
	}
}

// resolveRect produces a screen-absolute frame from a declared rect.
// Dimensions at or below zero are parent-relative fills; negative
// offsets anchor from the far edge.
func resolveRect(r Rect, parent Frame) Frame {
	if r.IsNone() {
		return parent
	}
	w, h, x, y := r.W, r.H, r.X, r.Y
	if w <= 0 {
		w = parent.W + w
	}
	if h <= 0 {
		h = parent.H + h
	}
	if x < 0 {
		x = parent.W + x
	}
	if y < 0 {
		y = parent.H + y
	}
	x = max(0, min(x, parent.W))
	y = max(0, min(y, parent.H))
	w = max(0, min(w, parent.W-x))
	h = max(0, min(h, parent.H-y))
	return Frame{X: parent.X + x, Y: parent.Y + y, W: w, H: h}
}

func layoutChildren(p *Parent) {
	inner := p.frame
	if p.border != nil {
		inner = inner.inset(1)
	}
	if p.padding {
		inner = inner.inset(1)
	}

	var flex []Node
	for _, c := range p.children {
		if c.Base().rect.IsNone() {
			flex = append(flex, c)
		} else {
			layoutNode(c, inner)
		}
	}
	if len(flex) == 0 {
		return
	}

	innerMain, innerCross := inner.W, inner.H
	if p.vertical {
		innerMain, innerCross = inner.H, inner.W
	}

	// Content sizes along both axes, clamped to the inner frame. When
	// the children overflow, later ones are squeezed.
	mains := make([]int, len(flex))
	crosses := make([]int, len(flex))
	remaining := innerMain
	for i, c := range flex {
		w, h := preferredSize(c)
		m, cr := w, h
		if p.vertical {
			m, cr = h, w
		}
		mains[i] = min(m, remaining)
		remaining -= mains[i]
		crosses[i] = min(cr, innerCross)
	}

	gaps := distribute(p.align, remaining, len(flex))

	offset := gaps[0]
	for i, c := range flex {
		crossOff := int(p.pos) * (innerCross - crosses[i]) / 2

		var f Frame
		if p.vertical {
			f = Frame{X: inner.X + crossOff, Y: inner.Y + offset, W: crosses[i], H: mains[i]}
		} else {
			f = Frame{X: inner.X + offset, Y: inner.Y + crossOff, W: mains[i], H: crosses[i]}
		}
		assignFrame(c, f)
		offset += mains[i] + gaps[i+1]
	}
}

// distribute splits leftover main-axis space into n+1 gaps (before,
// between, and after the children) according to the alignment policy.
func distribute(align Align, leftover, n int) []int {
	gaps := make([]int, n+1)
	if leftover <= 0 {
		return gaps
	}

	weights := make([]int, n+1)
	switch align {
	case AlignStart:
		weights[n] = 1
	case AlignCenter:
		weights[0] = 1
		weights[n] = 1
	case AlignEnd:
		weights[0] = 1
	case AlignBetween:
		if n == 1 {
			// A single child has nothing to be between; center it.
			weights[0] = 1
			weights[n] = 1
			break
		}
		for i := 1; i < n; i++ {
			weights[i] = 1
		}
	case AlignAround:
		weights[0] = 1
		weights[n] = 1
		for i := 1; i < n; i++ {
			weights[i] = 2
		}
	case AlignEvenly:
		for i := range weights {
			weights[i] = 1
		}
	}

	total := 0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return gaps
	}

	spent := 0
	for i, w := range weights {
		gaps[i] = leftover * w / total
		spent += gaps[i]
	}
	// Remainder goes to the earliest weighted gaps.
	for i := 0; spent < leftover; i = (i + 1) % (n + 1) {
		if weights[i] > 0 {
			gaps[i]++
			spent++
		}
	}
	return gaps
}

// preferredSize is the content size of a window: for text, the
// unwrapped line extents of the plain projection; for a container, its
// children stacked along the axis plus border and padding insets.
// Absolutely positioned children do not contribute.
func preferredSize(n Node) (w, h int) {
	switch v := n.(type) {
	case *Text:
		lines := strings.Split(reflow.StripEscapes(v.content), "\n")
		for _, line := range lines {
			w = max(w, runewidth.StringWidth(line))
		}
		h = len(lines)
	case *Parent:
		for _, c := range v.children {
			if !c.Base().rect.IsNone() {
				continue
			}
			cw, ch := preferredSize(c)
			if v.vertical {
				w = max(w, cw)
				h += ch
			} else {
				w += cw
				h = max(h, ch)
			}
		}
		if v.border != nil {
			w += 2
			h += 2
		}
		if v.padding {
			w += 2
			h += 2
		}
	}
	return w, h
}
