package board

// Category groups lines the way the generated checks are ordered.
type Category int

const (
	Row Category = iota
	Column
	Diagonal
)

// Categories lists the line categories in emission order.
var Categories = [...]Category{Row, Column, Diagonal}

func (c Category) String() string {
	switch c {
	case Row:
		return "row"
	case Column:
		return "column"
	case Diagonal:
		return "diagonal"
	default:
		return "?"
	}
}

// Line is a triple of cells whose joint ownership wins the game.
type Line struct {
	Category Category
	Cells    [3]Position
}

// Mask returns the win mask of the line for player.
func (l Line) Mask(player Player) Mask {
	return CheckPositions(l.Cells[0], l.Cells[1], l.Cells[2], player)
}

var lines = [...]Line{
	{Row, [3]Position{1, 2, 3}},
	{Row, [3]Position{4, 5, 6}},
	{Row, [3]Position{7, 8, 9}},
	{Column, [3]Position{1, 4, 7}},
	{Column, [3]Position{2, 5, 8}},
	{Column, [3]Position{3, 6, 9}},
	{Diagonal, [3]Position{1, 5, 9}},
	{Diagonal, [3]Position{3, 5, 7}},
}

// Lines returns the lines of one category in table order.
func Lines(c Category) []Line {
	var out []Line
	for _, l := range lines {
		if l.Category == c {
			out = append(out, l)
		}
	}
	return out
}

// AllLines returns all eight lines: rows, then columns, then diagonals.
func AllLines() []Line {
	out := make([]Line, len(lines))
	copy(out, lines[:])
	return out
}
