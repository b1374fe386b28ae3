package backend

// Color represents a terminal color. ColorDefault (-1) is the terminal's
// own default; 0-255 are palette colors; values with the RGB bit set are
// true colors.
type Color int32

const (
	ColorDefault Color = -1
	ColorBlack   Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7

	ColorBrightBlack   Color = 8
	ColorBrightRed     Color = 9
	ColorBrightGreen   Color = 10
	ColorBrightYellow  Color = 11
	ColorBrightBlue    Color = 12
	ColorBrightMagenta Color = 13
	ColorBrightCyan    Color = 14
	ColorBrightWhite   Color = 15
)

const rgbBit = 0x01000000

// RGB creates a true color from components.
func RGB(r, g, b uint8) Color {
	return Color(int32(r)<<16 | int32(g)<<8 | int32(b) | rgbBit)
}

// IsRGB reports whether this is a true color rather than a palette entry.
func (c Color) IsRGB() bool {
	return c > 0 && c&rgbBit != 0
}

// Components returns the red, green, blue parts of a true color,
// or zeros for palette colors.
func (c Color) Components() (r, g, b uint8) {
	if !c.IsRGB() {
		return 0, 0, 0
	}
	return uint8((c >> 16) & 0xFF), uint8((c >> 8) & 0xFF), uint8(c & 0xFF)
}

// AttrMask is a bit set of text attributes.
type AttrMask uint16

const (
	AttrBold AttrMask = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
)

// Style is the complete visual treatment of one cell: foreground,
// background, and attributes. The zero value is black on black; use
// DefaultStyle for the terminal's default colors.
type Style struct {
	FG    Color
	BG    Color
	Attrs AttrMask
}

// DefaultStyle returns a style with default colors and no attributes.
func DefaultStyle() Style {
	return Style{FG: ColorDefault, BG: ColorDefault}
}

// Foreground returns a copy with the foreground color replaced.
func (s Style) Foreground(c Color) Style {
	s.FG = c
	return s
}

// Background returns a copy with the background color replaced.
func (s Style) Background(c Color) Style {
	s.BG = c
	return s
}

// With returns a copy with the given attributes added.
func (s Style) With(attrs AttrMask) Style {
	s.Attrs |= attrs
	return s
}

// Without returns a copy with the given attributes removed.
func (s Style) Without(attrs AttrMask) Style {
	s.Attrs &^= attrs
	return s
}

// Has reports whether every attribute in attrs is set.
func (s Style) Has(attrs AttrMask) bool {
	return s.Attrs&attrs == attrs
}
