package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmhart/weft/pkg/ui/backend"
	"github.com/jmhart/weft/pkg/ui/tui"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want backend.Color
	}{
		{"black", backend.ColorBlack},
		{"red", backend.ColorRed},
		{"white", backend.ColorWhite},
		{"default", backend.ColorDefault},
		{"none", backend.ColorDefault},
		{"RED", backend.ColorRed},
		{" cyan ", backend.ColorCyan},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseColor_Unknown(t *testing.T) {
	_, err := ParseColor("chartreuse")
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	th := Default()

	assert.Equal(t, tui.Color{FG: backend.ColorWhite, BG: backend.ColorDefault}, th.BaseColor())
	assert.Equal(t, tui.Color{FG: backend.ColorYellow, BG: backend.ColorDefault}, th.AccentColor())
	assert.Equal(t, tui.Color{FG: backend.ColorWhite, BG: backend.ColorDefault}, th.BorderColor())
}

func TestParse(t *testing.T) {
	th, err := Parse([]byte(`
base:
  fg: white
  bg: black
accent:
  fg: yellow
border:
  fg: cyan
extra:
  alert:
    fg: red
    bg: white
`))
	require.NoError(t, err)

	assert.Equal(t, tui.Color{FG: backend.ColorWhite, BG: backend.ColorBlack}, th.BaseColor())
	assert.Equal(t, tui.Color{FG: backend.ColorYellow, BG: backend.ColorDefault}, th.AccentColor())
	assert.Equal(t, tui.Color{FG: backend.ColorCyan, BG: backend.ColorDefault}, th.BorderColor())
	assert.Equal(t, tui.Color{FG: backend.ColorRed, BG: backend.ColorWhite}, th.Lookup("alert"))
}

func TestParse_UnknownColorName(t *testing.T) {
	_, err := Parse([]byte("base:\n  fg: mauve\n"))
	assert.ErrorContains(t, err, "mauve")
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("base: [not a mapping"))
	assert.Error(t, err)
}

func TestLookup_FallsBackToBase(t *testing.T) {
	th := Default()
	assert.Equal(t, th.BaseColor(), th.Lookup("no-such-name"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("accent:\n  fg: green\n"), 0o644))

	th, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, tui.Color{FG: backend.ColorGreen, BG: backend.ColorDefault}, th.AccentColor())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
