package ui

import (
	"strings"
	"sync"

	"gridsel/grid"
	"gridsel/selection"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const tabStop = 4

// GridView displays lines of text as a fixed-width character grid and
// drives a selection from mouse events. It is the owner of the
// Selection value and the synchronization point for it.
type GridView struct {
	mu    sync.Mutex
	x, y  int
	width grid.Column
	lines []string
	rows  [][]rune // wide runes are followed by a 0 continuation cell

	sel      *selection.Selection
	dragging bool
	anchor   grid.Point
}

func NewGridView(x, y int, width grid.Column) *GridView {
	return &GridView{
		x:     x,
		y:     y,
		width: width,
		sel:   selection.New(),
	}
}

// SetLines replaces the displayed text and drops any selection.
func (v *GridView) SetLines(lines []string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.lines = lines
	v.rebuild()
}

// SetWidth changes the grid width. The text reflows, so the selection
// is dropped.
func (v *GridView) SetWidth(width grid.Column) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if width == v.width {
		return
	}
	v.width = width
	v.rebuild()
}

func (v *GridView) rebuild() {
	v.rows = make([][]rune, len(v.lines))
	for i, line := range v.lines {
		line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabStop))
		row := make([]rune, 0, len(line))
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if len(row)+w > int(v.width) {
				break
			}
			row = append(row, r)
			if w == 2 {
				row = append(row, 0)
			}
		}
		v.rows[i] = row
	}
	v.sel.Clear()
	v.dragging = false
}

// HandleMouse feeds a mouse event into the selection. Returns true if
// the event was consumed.
func (v *GridView) HandleMouse(ev *tcell.EventMouse) bool {
	mx, my := ev.Position()
	btn := ev.Buttons()

	v.mu.Lock()
	defer v.mu.Unlock()

	switch {
	case btn&(tcell.WheelUp|tcell.WheelDown) != 0:
		// Scrolling moves the content out from under the selection.
		v.sel.Clear()
		v.dragging = false
		return true
	case btn&tcell.Button1 != 0:
		p, ok := v.cellAt(mx, my)
		if !ok {
			return false
		}
		if !v.dragging {
			v.dragging = true
			v.anchor = p
			v.sel.Clear()
			return true
		}
		v.extend(p)
		return true
	default:
		v.dragging = false
		return true
	}
}

// extend replays the drag from the anchor so the anchored cell keeps
// the side facing away from the pointer: every cell the drag has
// passed over counts as covered.
func (v *GridView) extend(p grid.Point) {
	anchorSide, side := grid.SideLeft, grid.SideRight
	if p.Before(v.anchor) {
		anchorSide, side = grid.SideRight, grid.SideLeft
	}
	v.sel.Clear()
	v.sel.Update(v.anchor, anchorSide)
	v.sel.Update(p, side)
}

// cellAt maps a screen position to a grid point. The continuation cell
// of a wide rune maps to the rune's head cell.
func (v *GridView) cellAt(mx, my int) (grid.Point, bool) {
	line := my - v.y
	col := mx - v.x
	if line < 0 || line >= len(v.rows) || col < 0 || col >= int(v.width) {
		return grid.Point{}, false
	}
	row := v.rows[line]
	if col < len(row) && row[col] == 0 {
		col--
	}
	return grid.Point{Line: grid.Line(line), Col: grid.Column(col)}, true
}

// ClearSelection drops the selection, e.g. on a click-off or an edit.
func (v *GridView) ClearSelection() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sel.Clear()
	v.dragging = false
}

// HasSelection reports whether the current drag resolves to any cells.
func (v *GridView) HasSelection() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	_, ok := v.sel.Span()
	return ok
}

// SelectedText extracts the covered cells as text, one string per grid
// line with trailing blanks trimmed.
func (v *GridView) SelectedText() (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	span, ok := v.sel.Span()
	if !ok {
		return "", false
	}
	start, end := span.Range(v.width)
	if end < start {
		// The inclusion policy excluded every cell.
		return "", false
	}

	var out []string
	var buf []rune
	cur := grid.Line(int(start) / int(v.width))
	for o := start; o <= end; o++ {
		line := grid.Line(int(o) / int(v.width))
		col := int(o) % int(v.width)
		if line != cur {
			out = append(out, strings.TrimRight(string(buf), " "))
			buf = buf[:0]
			cur = line
		}
		if int(line) >= len(v.rows) {
			break
		}
		row := v.rows[line]
		switch {
		case col >= len(row):
			buf = append(buf, ' ')
		case row[col] == 0:
			// continuation cell of a wide rune already emitted
		default:
			buf = append(buf, row[col])
		}
	}
	out = append(out, strings.TrimRight(string(buf), " "))
	return strings.Join(out, "\n"), true
}

// Render draws the grid, reversing the style of selected cells.
func (v *GridView) Render(screen tcell.Screen) {
	v.mu.Lock()
	defer v.mu.Unlock()

	start, end := grid.Linear(0), grid.Linear(-1)
	if span, ok := v.sel.Span(); ok {
		start, end = span.Range(v.width)
	}

	for line, row := range v.rows {
		for col := 0; col < int(v.width); col++ {
			ch := ' '
			if col < len(row) {
				ch = row[col]
			}
			if ch == 0 {
				// drawn as part of the preceding wide rune
				continue
			}
			style := tcell.StyleDefault
			o := grid.Point{Line: grid.Line(line), Col: grid.Column(col)}.Linear(v.width)
			if o >= start && o <= end {
				style = style.Reverse(true)
			}
			screen.SetContent(v.x+col, v.y+line, ch, nil, style)
		}
	}
}
