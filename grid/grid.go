package grid

// Line is a row index into the grid, counted from the top.
type Line int

// Column is a cell index within a line, counted from the left.
type Column int

// Linear is a flattened grid offset, line*width + column, so a
// two-dimensional region can be walked as one contiguous interval.
type Linear int

// Side is the half of a character cell an endpoint refers to: before
// (SideLeft) or after (SideRight) the cell's visual midpoint.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Point is a (line, column) grid coordinate, ordered by line then column.
type Point struct {
	Line Line
	Col  Column
}

func (p Point) Before(other Point) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

func (p Point) After(other Point) bool {
	return other.Before(p)
}

func (p Point) Equal(other Point) bool {
	return p == other
}

// Linear flattens the point onto a grid of the given width.
func (p Point) Linear(width Column) Linear {
	return Linear(int(p.Line)*int(width) + int(p.Col))
}
