// Package reflow computes wrap geometry for text drawn into fixed-size
// rectangles: greedy word wrapping, the minimal width that achieves a
// target height, and per-line width tables. All functions operate on
// plain text; color escape sequences are stripped with StripEscapes
// before any geometry is computed. Widths are terminal cells, not runes.
package reflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ErrUnwrappable reports that a single unbroken word is wider than the
// available width, so no line break can be placed.
var ErrUnwrappable = errors.New("reflow: word wider than available width")

// StripEscapes returns s with ANSI color escape sequences removed.
// A sequence runs from ESC through the terminating 'm'.
func StripEscapes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == 0x1b {
			for i < len(runes) && runes[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// HeightForWidth returns the number of lines text occupies when greedily
// wrapped into maxW cells. Breaks happen at the most recent space; a
// literal newline always starts a new line. If a single word alone
// exceeds maxW the text cannot be wrapped and ErrUnwrappable is returned.
func HeightForWidth(text string, maxW int) (int, error) {
	if maxW < 1 {
		return 0, fmt.Errorf("%w: max width %d", ErrUnwrappable, maxW)
	}

	runes := []rune(text)
	h := 1
	lineW := 0
	spaceIdx := 0
	lastSpaceIdx := spaceIdx

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == ' ' {
			spaceIdx = i
		}

		switch {
		case r == '\n':
			lineW = 0
			h++
		case lineW >= maxW:
			lineW = 0
			h++
			// No space since the last break: the word itself is too wide.
			if spaceIdx == lastSpaceIdx {
				return 0, fmt.Errorf("%w: max width %d", ErrUnwrappable, maxW)
			}
			i = spaceIdx
			lastSpaceIdx = spaceIdx
		default:
			lineW += runewidth.RuneWidth(r)
		}
	}
	return h, nil
}

// MinWidthForHeight returns the smallest width at which text wraps into
// at most targetH lines. Relies on wrap height being non-increasing as
// width grows; binary searches candidate widths in [1, width(text)].
// Falls back to the full unwrapped width when nothing narrower fits.
func MinWidthForHeight(text string, targetH int) int {
	left := 1
	right := runewidth.StringWidth(text)
	minW := right

	for left <= right {
		mid := (left + right) / 2
		h, err := HeightForWidth(text, mid)
		if err != nil || h > targetH {
			// Too narrow to wrap, or too tall: widen.
			left = mid + 1
		} else {
			minW = mid
			right = mid - 1
		}
	}
	return minW
}

// LineWidths returns the width of each of the h lines text occupies when
// wrapped at MinWidthForHeight(text, h). A trailing partial word at a
// forced break belongs to the next line, and a space at the start of a
// wrapped line is invisible.
func LineWidths(text string, h int) []int {
	maxW := MinWidthForHeight(text, h)
	runes := []rune(text)
	ws := make([]int, h)

	li := 0
	lineW := 0
	spaceIdx := 0

	for i := 0; i < len(runes) && li < h; i++ {
		r := runes[i]
		if r == ' ' {
			spaceIdx = i
		}

		switch {
		case r == ' ' && lineW == 0:
			// Leading space introduced by wrapping: not drawn, not counted.
		case r == '\n':
			ws[li] = lineW
			li++
			lineW = 0
		case lineW >= maxW:
			// Completed line minus the partial word carried to the next one.
			ws[li] = lineW - spanWidth(runes, spaceIdx, i)
			li++
			lineW = 0
			i = spaceIdx
		default:
			lineW += runewidth.RuneWidth(r)
		}

		if i+1 == len(runes) && li < h {
			ws[li] = lineW
		}
	}
	return ws
}

func spanWidth(runes []rune, from, to int) int {
	w := 0
	for _, r := range runes[from:to] {
		w += runewidth.RuneWidth(r)
	}
	return w
}
