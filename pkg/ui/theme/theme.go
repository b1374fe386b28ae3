// Package theme loads named color schemes from YAML and resolves them
// to window colors. Color names follow the eight-color terminal
// palette; "default" (or "none") leaves a channel inheriting.
package theme

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmhart/weft/pkg/ui/backend"
	"github.com/jmhart/weft/pkg/ui/tui"
)

var names = map[string]backend.Color{
	"default": backend.ColorDefault,
	"none":    backend.ColorDefault,
	"black":   backend.ColorBlack,
	"red":     backend.ColorRed,
	"green":   backend.ColorGreen,
	"yellow":  backend.ColorYellow,
	"blue":    backend.ColorBlue,
	"magenta": backend.ColorMagenta,
	"cyan":    backend.ColorCyan,
	"white":   backend.ColorWhite,
}

// ParseColor resolves a palette color name. Matching is
// case-insensitive.
func ParseColor(name string) (backend.Color, error) {
	c, ok := names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return backend.ColorDefault, fmt.Errorf("theme: unknown color %q", name)
	}
	return c, nil
}

// Pair is a YAML-addressable fg/bg pair. Empty fields inherit.
type Pair struct {
	FG string `yaml:"fg,omitempty"`
	BG string `yaml:"bg,omitempty"`
}

// Color resolves the pair to a window color.
func (p Pair) Color() (tui.Color, error) {
	c := tui.ColorNone
	if p.FG != "" {
		fg, err := ParseColor(p.FG)
		if err != nil {
			return tui.ColorNone, err
		}
		c.FG = fg
	}
	if p.BG != "" {
		bg, err := ParseColor(p.BG)
		if err != nil {
			return tui.ColorNone, err
		}
		c.BG = bg
	}
	return c, nil
}

// Theme names the colors an application draws with.
type Theme struct {
	Base    Pair            `yaml:"base,omitempty"`
	Accent  Pair            `yaml:"accent,omitempty"`
	Border  Pair            `yaml:"border,omitempty"`
	Extra   map[string]Pair `yaml:"extra,omitempty"`
	applied map[string]tui.Color
}

// Default is the scheme used when no theme file is given: white on the
// terminal's own background, yellow accents.
func Default() *Theme {
	t := &Theme{
		Base:   Pair{FG: "white"},
		Accent: Pair{FG: "yellow"},
		Border: Pair{FG: "white"},
	}
	// Defaults always resolve.
	_ = t.resolve()
	return t
}

// Load reads a theme from a YAML file and resolves every color name.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and resolves a theme from YAML bytes.
func Parse(data []byte) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("theme: parse: %w", err)
	}
	if err := t.resolve(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Theme) resolve() error {
	t.applied = make(map[string]tui.Color, 3+len(t.Extra))
	for name, p := range map[string]Pair{"base": t.Base, "accent": t.Accent, "border": t.Border} {
		c, err := p.Color()
		if err != nil {
			return fmt.Errorf("theme: %s: %w", name, err)
		}
		t.applied[name] = c
	}
	for name, p := range t.Extra {
		c, err := p.Color()
		if err != nil {
			return fmt.Errorf("theme: extra %s: %w", name, err)
		}
		t.applied[name] = c
	}
	return nil
}

// BaseColor returns the resolved base color.
func (t *Theme) BaseColor() tui.Color { return t.applied["base"] }

// AccentColor returns the resolved accent color.
func (t *Theme) AccentColor() tui.Color { return t.applied["accent"] }

// BorderColor returns the resolved border color.
func (t *Theme) BorderColor() tui.Color { return t.applied["border"] }

// Lookup returns a named color from the scheme, falling back to the
// base color for unknown names.
func (t *Theme) Lookup(name string) tui.Color {
	if c, ok := t.applied[name]; ok {
		return c
	}
	return t.applied["base"]
}
