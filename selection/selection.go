package selection

import "gridsel/grid"

// Selection tracks the two endpoints of a pointer-driven selection over
// a character grid. The zero value is empty. The first Update anchors
// both endpoints at the pointer; every later Update moves only the end,
// so a drag redefines the far endpoint while the near one stays fixed.
//
// A cell counts as selected only once the drag has passed its visual
// midpoint: SideLeft means the pointer sat before the midpoint,
// SideRight after it.
//
// A Selection is owned by whoever feeds it pointer events; it does no
// locking of its own.
type Selection struct {
	active    bool
	start     grid.Point
	end       grid.Point
	startSide grid.Side
	endSide   grid.Side
}

func New() *Selection {
	return &Selection{}
}

// Update records a pointer position. Never fails.
func (s *Selection) Update(p grid.Point, side grid.Side) {
	if !s.active {
		s.active = true
		s.start, s.end = p, p
		s.startSide, s.endSide = side, side
		return
	}
	s.end = p
	s.endSide = side
}

// Clear drops any active selection. Callers invoke this on scroll,
// content changes, and click-off, none of which the selection itself
// can observe.
func (s *Selection) Clear() {
	*s = Selection{}
}

func (s *Selection) IsEmpty() bool {
	return !s.active
}

// Span resolves the current selection into a canonical span with
// Front ≤ Tail regardless of drag direction. The second return is
// false when nothing is selected: the selection is empty, the pointer
// never crossed a cell midpoint, or the drag covers only the seam
// between two adjacent cells.
func (s *Selection) Span() (Span, bool) {
	if !s.active {
		return Span{}, false
	}

	front, tail, frontSide, tailSide := ordered(s.start, s.end, s.startSide, s.endSide)

	// A single cell is selected only if the pointer crossed its midpoint.
	if front == tail {
		if frontSide == tailSide {
			return Span{}, false
		}
		return Span{Front: front, Tail: tail, Type: SpanInclusive}, true
	}

	// Two adjacent cells grabbed only between their midpoints cover
	// nothing: [ F][T ].
	if front.Line == tail.Line && tail.Col-front.Col == 1 &&
		frontSide == grid.SideRight && tailSide == grid.SideLeft {
		return Span{}, false
	}

	span := Span{Front: front, Tail: tail}
	switch {
	case frontSide == grid.SideLeft && tailSide == grid.SideRight:
		// [FX][XX][XT]
		span.Type = SpanInclusive
	case frontSide == grid.SideRight && tailSide == grid.SideLeft:
		// [ F][XX][T ]
		span.Type = SpanExclusive
	case frontSide == grid.SideLeft && tailSide == grid.SideLeft:
		// [FX][XX][T ]
		span.Type = SpanExcludeTail
	default:
		// [ F][XX][XT]
		span.Type = SpanExcludeFront
	}
	return span, true
}

// ordered puts the endpoints in reading order, swapping the sides
// together with the points.
func ordered(start, end grid.Point, startSide, endSide grid.Side) (front, tail grid.Point, frontSide, tailSide grid.Side) {
	if end.Before(start) {
		return end, start, endSide, startSide
	}
	return start, end, startSide, endSide
}
