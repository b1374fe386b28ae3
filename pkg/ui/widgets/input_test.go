package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmhart/weft/pkg/ui/backend/sim"
	"github.com/jmhart/weft/pkg/ui/terminal"
	"github.com/jmhart/weft/pkg/ui/tui"
)

func newTextWindow(t *testing.T) *tui.Text {
	t.Helper()
	surf := sim.New(40, 10)
	require.NoError(t, surf.Init())
	t.Cleanup(surf.Fini)

	root, err := tui.New(tui.Config{Surface: surf})
	require.NoError(t, err)

	win, err := root.NewText(tui.TextConfig{Name: "input", Rect: tui.Rect{W: 0, H: 1}})
	require.NoError(t, err)
	return win
}

func typeString(in *Input, s string) {
	for _, r := range s {
		in.HandleKey(terminal.KeyEvent{Key: terminal.KeyRune, Rune: r})
	}
}

func TestInput_Typing(t *testing.T) {
	in := NewInput(InputConfig{Window: newTextWindow(t)})

	typeString(in, "hello")

	assert.Equal(t, "hello", in.Text())
	assert.Equal(t, 5, in.Cursor())
	assert.Equal(t, 5, in.Width())
}

func TestInput_SeedText(t *testing.T) {
	in := NewInput(InputConfig{Window: newTextWindow(t), Text: "seed"})

	assert.Equal(t, "seed", in.Text())
	assert.Equal(t, 4, in.Cursor())
}

func TestInput_InsertAtCursor(t *testing.T) {
	in := NewInput(InputConfig{Window: newTextWindow(t), Text: "hllo"})

	in.HandleKey(terminal.KeyEvent{Key: terminal.KeyHome})
	in.HandleKey(terminal.KeyEvent{Key: terminal.KeyRight})
	typeString(in, "e")

	assert.Equal(t, "hello", in.Text())
	assert.Equal(t, 2, in.Cursor())
}

func TestInput_Backspace(t *testing.T) {
	in := NewInput(InputConfig{Window: newTextWindow(t), Text: "abc"})

	in.HandleKey(terminal.KeyEvent{Key: terminal.KeyBackspace})
	assert.Equal(t, "ab", in.Text())

	in.HandleKey(terminal.KeyEvent{Key: terminal.KeyHome})
	in.HandleKey(terminal.KeyEvent{Key: terminal.KeyBackspace})
	assert.Equal(t, "ab", in.Text(), "backspace at the start is a no-op")
}

func TestInput_Delete(t *testing.T) {
	in := NewInput(InputConfig{Window: newTextWindow(t), Text: "abc"})

	in.HandleKey(terminal.KeyEvent{Key: terminal.KeyHome})
	in.HandleKey(terminal.KeyEvent{Key: terminal.KeyDelete})
	assert.Equal(t, "bc", in.Text())

	in.HandleKey(terminal.KeyEvent{Key: terminal.KeyEnd})
	in.HandleKey(terminal.KeyEvent{Key: terminal.KeyDelete})
	assert.Equal(t, "bc", in.Text(), "delete at the end is a no-op")
}

func TestInput_CursorMovement(t *testing.T) {
	in := NewInput(InputConfig{Window: newTextWindow(t), Text: "abc"})

	in.HandleKey(terminal.KeyEvent{Key: terminal.KeyLeft})
	assert.Equal(t, 2, in.Cursor())

	in.HandleKey(terminal.KeyEvent{Key: terminal.KeyHome})
	assert.Equal(t, 0, in.Cursor())
	in.HandleKey(terminal.KeyEvent{Key: terminal.KeyLeft})
	assert.Equal(t, 0, in.Cursor(), "left at the start is a no-op")

	in.HandleKey(terminal.KeyEvent{Key: terminal.KeyEnd})
	assert.Equal(t, 3, in.Cursor())
	in.HandleKey(terminal.KeyEvent{Key: terminal.KeyRight})
	assert.Equal(t, 3, in.Cursor(), "right at the end is a no-op")
}

func TestInput_MaxLength(t *testing.T) {
	in := NewInput(InputConfig{Window: newTextWindow(t), Max: 3})

	typeString(in, "abcdef")

	assert.Equal(t, "abc", in.Text())
}

func TestInput_UnhandledKeysFallThrough(t *testing.T) {
	in := NewInput(InputConfig{Window: newTextWindow(t)})

	assert.False(t, in.HandleKey(terminal.KeyEvent{Key: terminal.KeyEnter}))
	assert.False(t, in.HandleKey(terminal.KeyEvent{Key: terminal.KeyEscape}))
	assert.False(t, in.HandleKey(terminal.KeyEvent{Key: terminal.KeyRune, Rune: '\x01'}),
		"control runes are not text")
}

func TestInput_SyncMarksCursor(t *testing.T) {
	win := newTextWindow(t)
	in := NewInput(InputConfig{Window: win})

	typeString(in, "ab")

	// The cursor sits after the text, shown as a reverse-video space.
	assert.Equal(t, "ab\x1b[7m \x1b[27m", win.Text())
	assert.Equal(t, "ab ", win.Plain())

	in.HandleKey(terminal.KeyEvent{Key: terminal.KeyLeft})
	assert.Equal(t, "a\x1b[7mb\x1b[27m", win.Text())
}

func TestInput_SetText(t *testing.T) {
	in := NewInput(InputConfig{Window: newTextWindow(t), Max: 4})

	in.SetText("toolong")

	assert.Equal(t, "tool", in.Text())
	assert.Equal(t, 4, in.Cursor())
}
