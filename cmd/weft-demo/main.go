// Command weft-demo exercises the window tree interactively: a banner
// with a live input line, two bordered boxes of items, a numbered
// footer, and tab-cycled focus. Ctrl+S or Ctrl+C quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tcellbackend "github.com/jmhart/weft/pkg/ui/backend/tcell"
	"github.com/jmhart/weft/pkg/ui/terminal"
	"github.com/jmhart/weft/pkg/ui/theme"
	"github.com/jmhart/weft/pkg/ui/tui"
	"github.com/jmhart/weft/pkg/ui/widgets"
)

var (
	logPath   = flag.String("log", "debug.log", "path for diagnostic output")
	themePath = flag.String("theme", "", "path to a YAML theme file")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log: %v\n", err)
		return 1
	}
	defer logFile.Close()
	log := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))

	scheme := theme.Default()
	if *themePath != "" {
		scheme, err = theme.Load(*themePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load theme: %v\n", err)
			return 1
		}
	}

	surface, err := tcellbackend.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create terminal: %v\n", err)
		return 1
	}
	if err := surface.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init terminal: %v\n", err)
		return 1
	}
	defer surface.Fini()

	root, err := tui.New(tui.Config{
		Surface: surface,
		Color:   scheme.BaseColor(),
		Log:     log,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "create ui: %v\n", err)
		return 2
	}
	defer root.Destroy()

	if err := buildTree(root, scheme); err != nil {
		fmt.Fprintf(os.Stderr, "build ui: %v\n", err)
		return 2
	}

	root.SetHandler(func(t *tui.Tui, key terminal.KeyEvent) bool {
		switch key.Key {
		case terminal.KeyCtrlS, terminal.KeyCtrlC:
			t.Stop()
			return true
		}
		return false
	})

	if err := root.Run(context.Background()); err != nil {
		log.Error("ui loop failed", "err", err)
		return 2
	}
	return 0
}

func buildTree(root *tui.Tui, scheme *theme.Theme) error {
	menu, err := root.NewMenu(tui.MenuConfig{Name: "main"})
	if err != nil {
		return err
	}
	root.SetMenu(menu)

	banner, err := menu.NewParent(tui.ParentConfig{
		Name:     "banner",
		Rect:     tui.Rect{W: 0, H: 7, X: 0, Y: 0},
		Vertical: true,
		Border:   &tui.Border{Color: scheme.BorderColor()},
		Pos:      tui.PosCenter,
		Align:    tui.AlignAround,
	})
	if err != nil {
		return err
	}
	if _, err := banner.NewText(tui.TextConfig{
		Name:  "title",
		Rect:  tui.RectNone(),
		Text:  "\x1b[1mweft\x1b[0m interactive demo",
		Align: tui.AlignCenter,
	}); err != nil {
		return err
	}
	inputWin, err := banner.NewText(tui.TextConfig{
		Name:  "input",
		Rect:  tui.RectNone(),
		Align: tui.AlignCenter,
	})
	if err != nil {
		return err
	}
	editor := widgets.NewInput(widgets.InputConfig{Window: inputWin, Max: 64})
	inputWin.SetHandler(func(n tui.Node, key terminal.KeyEvent) bool {
		return editor.HandleKey(key)
	})

	body, err := menu.NewParent(tui.ParentConfig{
		Name:  "body",
		Rect:  tui.Rect{W: 0, H: -9, X: 0, Y: 7},
		Pos:   tui.PosCenter,
		Align: tui.AlignEvenly,
	})
	if err != nil {
		return err
	}

	box1, err := body.NewParent(tui.ParentConfig{
		Name:     "fruit",
		Rect:     tui.RectNone(),
		Vertical: true,
		Border:   &tui.Border{Color: scheme.AccentColor()},
		Padding:  true,
		Pos:      tui.PosCenter,
		Align:    tui.AlignCenter,
	})
	if err != nil {
		return err
	}
	for _, item := range []string{"[+] Apple", "[+] Pear", "[+] Banana"} {
		if _, err := box1.NewText(tui.TextConfig{Text: item, Rect: tui.RectNone()}); err != nil {
			return err
		}
	}

	box2, err := body.NewParent(tui.ParentConfig{
		Name:     "tools",
		Rect:     tui.RectNone(),
		Vertical: true,
		Border:   &tui.Border{Color: scheme.BorderColor(), Dashed: true},
		Padding:  true,
		Pos:      tui.PosStart,
		Align:    tui.AlignBetween,
	})
	if err != nil {
		return err
	}
	if _, err := box2.NewText(tui.TextConfig{
		Text:  "\x1b[4mTools\x1b[0m",
		Rect:  tui.RectNone(),
		Align: tui.AlignCenter,
	}); err != nil {
		return err
	}
	for _, item := range []string{"hammer", "wrench", "pliers", "chisel", "level", "saw"} {
		if _, err := box2.NewText(tui.TextConfig{Text: item, Rect: tui.RectNone()}); err != nil {
			return err
		}
	}

	footer, err := menu.NewParent(tui.ParentConfig{
		Name:  "footer",
		Rect:  tui.Rect{W: 0, H: 1, X: 0, Y: -1},
		Color: scheme.AccentColor(),
		Align: tui.AlignBetween,
	})
	if err != nil {
		return err
	}
	for i := 1; i <= 9; i++ {
		if _, err := footer.NewText(tui.TextConfig{Text: fmt.Sprintf("%d", i), Rect: tui.RectNone()}); err != nil {
			return err
		}
	}

	cycle := widgets.NewList(root, inputWin, box1, box2)
	menu.SetHandler(func(m *tui.Menu, key terminal.KeyEvent) bool {
		if key.Key == terminal.KeyTab {
			return cycle.HandleKey(key)
		}
		return false
	})

	return nil
}
