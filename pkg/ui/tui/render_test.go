package tui

import (
	"strings"
	"testing"

	"github.com/jmhart/weft/pkg/ui/backend"
	"github.com/jmhart/weft/pkg/ui/backend/sim"
)

func renderFixture(t *testing.T, w, h int, base Color) (*Tui, *sim.Surface) {
	t.Helper()
	surf := sim.New(w, h)
	if err := surf.Init(); err != nil {
		t.Fatalf("init surface: %v", err)
	}
	t.Cleanup(surf.Fini)

	root, err := New(Config{Surface: surf, Color: base})
	if err != nil {
		t.Fatalf("create root: %v", err)
	}
	return root, surf
}

func TestRender_CenteredText(t *testing.T) {
	root, surf := renderFixture(t, 20, 5, ColorNone)
	if _, err := root.NewText(TextConfig{
		Text:  "hi",
		Rect:  Rect{W: 0, H: 0},
		Pos:   PosCenter,
		Align: AlignCenter,
	}); err != nil {
		t.Fatal(err)
	}

	root.Render()

	x, y := surf.FindText("hi")
	if x != 9 || y != 2 {
		t.Errorf("text at (%d, %d), want (9, 2)", x, y)
	}
}

func TestRender_BottomAlignedText(t *testing.T) {
	root, surf := renderFixture(t, 10, 3, ColorNone)
	if _, err := root.NewText(TextConfig{
		Text: "low",
		Rect: Rect{W: 10, H: 3},
		Pos:  PosEnd,
	}); err != nil {
		t.Fatal(err)
	}

	root.Render()

	if _, y := surf.FindText("low"); y != 2 {
		t.Errorf("text on row %d, want 2", y)
	}
}

func TestRender_WrappedText(t *testing.T) {
	root, surf := renderFixture(t, 20, 5, ColorNone)
	if _, err := root.NewText(TextConfig{
		Text: "one two three",
		Rect: Rect{W: 7, H: 2},
	}); err != nil {
		t.Fatal(err)
	}

	root.Render()

	got := surf.CaptureRegion(0, 0, 7, 2)
	want := "one two\nthree  "
	if got != want {
		t.Errorf("region = %q, want %q", got, want)
	}
}

func TestRender_Border(t *testing.T) {
	root, surf := renderFixture(t, 10, 6, ColorNone)
	if _, err := root.NewParent(ParentConfig{
		Rect:   Rect{W: 5, H: 4, X: 1, Y: 0},
		Border: &Border{},
	}); err != nil {
		t.Fatal(err)
	}

	root.Render()

	if r, _ := surf.CaptureCell(1, 0); r != '┌' {
		t.Errorf("top-left = %c, want ┌", r)
	}
	if r, _ := surf.CaptureCell(5, 3); r != '┘' {
		t.Errorf("bottom-right = %c, want ┘", r)
	}
	if r, _ := surf.CaptureCell(3, 0); r != '─' {
		t.Errorf("top edge = %c, want ─", r)
	}
	if r, _ := surf.CaptureCell(1, 2); r != '│' {
		t.Errorf("left edge = %c, want │", r)
	}
}

func TestRender_ColorInheritance(t *testing.T) {
	base := Color{FG: backend.ColorWhite, BG: backend.ColorDefault}
	root, surf := renderFixture(t, 10, 4, base)

	p, err := root.NewParent(ParentConfig{
		Rect:  Rect{W: 10, H: 4},
		Color: Color{FG: backend.ColorDefault, BG: backend.ColorRed},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.NewText(TextConfig{
		Text: "x",
		Rect: Rect{W: 10, H: 2, X: 0, Y: 2},
	}); err != nil {
		t.Fatal(err)
	}

	root.Render()

	// The container resolves to white on red against the base.
	if _, style := surf.CaptureCell(5, 0); style.FG != backend.ColorWhite || style.BG != backend.ColorRed {
		t.Errorf("container cell = %+v, want white on red", style)
	}
	// The fully transparent child inherits both channels.
	if _, style := surf.CaptureCell(5, 2); style.FG != backend.ColorWhite || style.BG != backend.ColorRed {
		t.Errorf("child cell = %+v, want white on red", style)
	}
}

func TestRender_FirstDeclaredWindowOnTop(t *testing.T) {
	root, surf := renderFixture(t, 10, 2, ColorNone)
	if _, err := root.NewText(TextConfig{Text: "AAAAA", Rect: Rect{W: 5, H: 1}}); err != nil {
		t.Fatal(err)
	}
	if _, err := root.NewText(TextConfig{Text: "BBBBB", Rect: Rect{W: 5, H: 1}}); err != nil {
		t.Fatal(err)
	}

	root.Render()

	if !surf.ContainsText("AAAAA") {
		t.Error("first window should be on top")
	}
	if surf.ContainsText("BBBBB") {
		t.Error("second window should be covered")
	}
}

func TestRender_HiddenWindowSkipped(t *testing.T) {
	root, surf := renderFixture(t, 10, 2, ColorNone)
	win, err := root.NewText(TextConfig{Text: "peek", Rect: Rect{W: 4, H: 1}})
	if err != nil {
		t.Fatal(err)
	}

	win.SetVisible(false)
	root.Render()
	if surf.ContainsText("peek") {
		t.Error("hidden window was rendered")
	}

	win.SetVisible(true)
	root.Render()
	if !surf.ContainsText("peek") {
		t.Error("shown window was not rendered")
	}
}

func TestRender_DestroyedWindowGone(t *testing.T) {
	root, surf := renderFixture(t, 10, 2, ColorNone)
	win, err := root.NewText(TextConfig{Text: "bye", Rect: Rect{W: 3, H: 1}})
	if err != nil {
		t.Fatal(err)
	}

	root.Render()
	if !surf.ContainsText("bye") {
		t.Fatal("window missing before destruction")
	}

	root.DestroyWindow(win)
	root.Render()
	if surf.ContainsText("bye") {
		t.Error("destroyed window still rendered")
	}
}

func TestRender_DestroyedChildGone(t *testing.T) {
	root, surf := renderFixture(t, 20, 6, ColorNone)
	p, err := root.NewParent(ParentConfig{
		Rect:     Rect{W: 20, H: 6},
		Vertical: true,
		Border:   &Border{},
		Align:    AlignStart,
	})
	if err != nil {
		t.Fatal(err)
	}
	keep, err := p.NewText(TextConfig{Text: "keep", Rect: RectNone()})
	if err != nil {
		t.Fatal(err)
	}
	drop, err := p.NewText(TextConfig{Text: "drop", Rect: RectNone()})
	if err != nil {
		t.Fatal(err)
	}

	root.Render()
	if !surf.ContainsText("keep") || !surf.ContainsText("drop") {
		t.Fatalf("children missing before destruction:\n%s", surf.Capture())
	}

	root.DestroyWindow(drop)
	root.Render()

	if !surf.ContainsText("keep") || surf.ContainsText("drop") {
		t.Errorf("screen after child destruction:\n%s", surf.Capture())
	}
	if len(p.Children()) != 1 || p.Children()[0] != Node(keep) {
		t.Errorf("children = %v, want just keep", p.Children())
	}
}

func TestRender_MenuWindowsFollowActivation(t *testing.T) {
	root, surf := renderFixture(t, 20, 4, ColorNone)

	first, err := root.NewMenu(MenuConfig{Name: "first"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := root.NewMenu(MenuConfig{Name: "second"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := first.NewText(TextConfig{Text: "alpha", Rect: Rect{W: 5, H: 1}}); err != nil {
		t.Fatal(err)
	}
	if _, err := second.NewText(TextConfig{Text: "omega", Rect: Rect{W: 5, H: 1}}); err != nil {
		t.Fatal(err)
	}

	root.Render()
	if surf.ContainsText("alpha") || surf.ContainsText("omega") {
		t.Error("menu windows rendered with no active menu")
	}

	root.SetMenu(first)
	root.Render()
	if !surf.ContainsText("alpha") || surf.ContainsText("omega") {
		t.Error("active menu should show alpha only")
	}

	if !root.ActivateMenu("second") {
		t.Fatal("ActivateMenu failed")
	}
	root.Render()
	if surf.ContainsText("alpha") || !surf.ContainsText("omega") {
		t.Error("active menu should show omega only")
	}
}

func TestRender_EscapeColorsText(t *testing.T) {
	root, surf := renderFixture(t, 20, 1, ColorNone)
	if _, err := root.NewText(TextConfig{
		Text: "\x1b[31mred\x1b[0m plain",
		Rect: Rect{W: 0, H: 1},
	}); err != nil {
		t.Fatal(err)
	}

	root.Render()

	// "red plain" with the first word colored.
	if !strings.HasPrefix(surf.Capture(), "red plain") {
		t.Fatalf("screen = %q", surf.Capture())
	}
	if _, style := surf.CaptureCell(0, 0); style.FG != backend.ColorRed {
		t.Errorf("colored cell fg = %v, want red", style.FG)
	}
	if _, style := surf.CaptureCell(4, 0); style.FG != backend.ColorDefault {
		t.Errorf("reset cell fg = %v, want default", style.FG)
	}
}

func TestRender_EscapeAttributes(t *testing.T) {
	root, surf := renderFixture(t, 10, 1, ColorNone)
	if _, err := root.NewText(TextConfig{
		Text: "\x1b[1mB\x1b[22mn",
		Rect: Rect{W: 0, H: 1},
	}); err != nil {
		t.Fatal(err)
	}

	root.Render()

	if _, style := surf.CaptureCell(0, 0); !style.Has(backend.AttrBold) {
		t.Error("first cell should be bold")
	}
	if _, style := surf.CaptureCell(1, 0); style.Has(backend.AttrBold) {
		t.Error("second cell should not be bold")
	}
}

func TestRender_UnwrappableTextLeavesWindowBlank(t *testing.T) {
	root, surf := renderFixture(t, 20, 2, ColorNone)
	if _, err := root.NewText(TextConfig{
		Text: "unbreakable",
		Rect: Rect{W: 4, H: 1},
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := root.NewText(TextConfig{
		Text: "ok",
		Rect: Rect{W: 2, H: 1, Y: 1},
	}); err != nil {
		t.Fatal(err)
	}

	root.Render()

	if surf.ContainsText("unbr") {
		t.Error("oversized word should not be drawn")
	}
	if !surf.ContainsText("ok") {
		t.Error("remaining windows should still render")
	}
}

func TestRender_SetTextTakesEffect(t *testing.T) {
	root, surf := renderFixture(t, 10, 1, ColorNone)
	win, err := root.NewText(TextConfig{Text: "before", Rect: Rect{W: 0, H: 1}})
	if err != nil {
		t.Fatal(err)
	}

	root.Render()
	if !surf.ContainsText("before") {
		t.Fatal("initial text missing")
	}

	win.SetText("after")
	root.Render()
	if !surf.ContainsText("after") || surf.ContainsText("before") {
		t.Errorf("screen = %q", surf.Capture())
	}
}
