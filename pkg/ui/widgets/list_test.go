package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmhart/weft/pkg/ui/backend/sim"
	"github.com/jmhart/weft/pkg/ui/terminal"
	"github.com/jmhart/weft/pkg/ui/tui"
)

func listFixture(t *testing.T, n int) (*tui.Tui, []tui.Node) {
	t.Helper()
	surf := sim.New(40, 10)
	require.NoError(t, surf.Init())
	t.Cleanup(surf.Fini)

	root, err := tui.New(tui.Config{Surface: surf})
	require.NoError(t, err)

	var items []tui.Node
	for i := 0; i < n; i++ {
		win, err := root.NewText(tui.TextConfig{Rect: tui.Rect{W: 5, H: 1, Y: i}})
		require.NoError(t, err)
		items = append(items, win)
	}
	return root, items
}

func TestList_FocusesFirstItem(t *testing.T) {
	root, items := listFixture(t, 3)
	l := NewList(root, items...)

	assert.Equal(t, items[0], l.Current())
	assert.Equal(t, items[0], root.Focused())
}

func TestList_NextPrevWrap(t *testing.T) {
	root, items := listFixture(t, 3)
	l := NewList(root, items...)

	l.Next()
	assert.Equal(t, items[1], root.Focused())
	l.Next()
	l.Next()
	assert.Equal(t, items[0], root.Focused(), "Next wraps to the first item")

	l.Prev()
	assert.Equal(t, items[2], root.Focused(), "Prev wraps to the last item")
}

func TestList_HandleKey(t *testing.T) {
	root, items := listFixture(t, 2)
	l := NewList(root, items...)

	assert.True(t, l.HandleKey(terminal.KeyEvent{Key: terminal.KeyTab}))
	assert.Equal(t, items[1], root.Focused())

	assert.True(t, l.HandleKey(terminal.KeyEvent{Key: terminal.KeyTab, Shift: true}))
	assert.Equal(t, items[0], root.Focused())

	assert.True(t, l.HandleKey(terminal.KeyEvent{Key: terminal.KeyDown}))
	assert.Equal(t, items[1], root.Focused())
	assert.True(t, l.HandleKey(terminal.KeyEvent{Key: terminal.KeyUp}))
	assert.Equal(t, items[0], root.Focused())

	assert.False(t, l.HandleKey(terminal.KeyEvent{Key: terminal.KeyEnter}))
}

func TestList_Empty(t *testing.T) {
	root, _ := listFixture(t, 0)
	l := NewList(root)

	assert.Nil(t, l.Current())
	l.Next()
	l.Prev()
	assert.Nil(t, root.Focused())
}

func TestList_SelectOutOfRangeIgnored(t *testing.T) {
	root, items := listFixture(t, 2)
	l := NewList(root, items...)

	l.Select(5)
	assert.Equal(t, items[0], l.Current())
	l.Select(-1)
	assert.Equal(t, items[0], l.Current())
}
