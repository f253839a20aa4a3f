package main

import (
	"fmt"
	"os"
	"strings"

	"gridsel/clipboardx"
	"gridsel/grid"
	"gridsel/ui"

	"github.com/gdamore/tcell/v2"
)

var sample = []string{
	"Drag with the mouse to select cells.",
	"",
	"A click on its own selects nothing; cells count as",
	"selected once the drag passes over them, whichever",
	"direction you drag in.",
	"",
	"Wide runes take two cells: 日本語のテキスト",
	"",
	"c copies the selection, wheel clears it, q quits.",
}

func main() {
	lines := sample
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		text := strings.ReplaceAll(string(data), "\r\n", "\n")
		lines = strings.Split(strings.TrimRight(text, "\n"), "\n")
	}

	if err := run(lines); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(lines []string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	w, _ := screen.Size()
	view := ui.NewGridView(0, 0, grid.Column(w))
	view.SetLines(lines)

	for {
		screen.Clear()
		view.Render(screen)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			w, _ := ev.Size()
			view.SetWidth(grid.Column(w))
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				return nil
			case ev.Rune() == 'c':
				if text, ok := view.SelectedText(); ok {
					clipboardx.Write(text)
				}
			}
		case *tcell.EventMouse:
			view.HandleMouse(ev)
		}
	}
}
