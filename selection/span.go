package selection

import "gridsel/grid"

// SpanType says whether the cells at a span's two boundaries are part
// of the selection.
type SpanType int

const (
	// SpanInclusive covers both boundary cells.
	SpanInclusive SpanType = iota
	// SpanExclusive covers neither boundary cell.
	SpanExclusive
	// SpanExcludeFront covers the tail cell but not the front.
	SpanExcludeFront
	// SpanExcludeTail covers the front cell but not the tail.
	SpanExcludeTail
)

func (t SpanType) String() string {
	switch t {
	case SpanInclusive:
		return "inclusive"
	case SpanExclusive:
		return "exclusive"
	case SpanExcludeFront:
		return "exclude-front"
	case SpanExcludeTail:
		return "exclude-tail"
	default:
		return "unknown"
	}
}

// Span is a resolved selection boundary. Front never comes after Tail;
// Type says how the two boundary cells are counted.
type Span struct {
	Front grid.Point
	Tail  grid.Point
	Type  SpanType
}

// Locations returns the first and last fully selected cells, stepping
// over excluded boundary cells per Type. width is the grid's column
// count; stepping past the end of a line wraps to the next.
func (sp Span) Locations(width grid.Column) (grid.Point, grid.Point) {
	switch sp.Type {
	case SpanExclusive:
		return advance(sp.Front, width), retreat(sp.Tail, width)
	case SpanExcludeFront:
		return advance(sp.Front, width), sp.Tail
	case SpanExcludeTail:
		return sp.Front, retreat(sp.Tail, width)
	default:
		return sp.Front, sp.Tail
	}
}

// Range flattens the span into an inclusive interval of linear grid
// offsets, applying the same boundary policy as Locations. The interval
// can come out inverted (start > end) when exclusion eats the whole
// span; callers treat that as empty.
func (sp Span) Range(width grid.Column) (grid.Linear, grid.Linear) {
	start := sp.Front.Linear(width)
	end := sp.Tail.Linear(width)

	switch sp.Type {
	case SpanExclusive:
		return excludeStart(start), excludeEnd(end)
	case SpanExcludeFront:
		return excludeStart(start), end
	case SpanExcludeTail:
		return start, excludeEnd(end)
	default:
		return start, end
	}
}

func advance(p grid.Point, width grid.Column) grid.Point {
	if p.Col == width-1 {
		return grid.Point{Line: p.Line + 1}
	}
	p.Col++
	return p
}

// retreat steps back one cell. Retreating from column 0 lands one past
// the previous line's last column; from the grid origin it stays put
// rather than underflowing.
func retreat(p grid.Point, width grid.Column) grid.Point {
	if p.Col == 0 {
		if p.Line == 0 {
			return p
		}
		return grid.Point{Line: p.Line - 1, Col: width}
	}
	p.Col--
	return p
}

func excludeStart(x grid.Linear) grid.Linear {
	return x + 1
}

func excludeEnd(x grid.Linear) grid.Linear {
	if x > 0 {
		return x - 1
	}
	return x
}
