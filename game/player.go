package game

// Player identifies one of the two sides. Black moves first.
type Player uint8

const (
	Black Player = iota
	White
)

func (p Player) Opponent() Player {
	return p ^ 1
}

func (p Player) String() string {
	if p == Black {
		return "black"
	}
	return "white"
}

// Cell is the content of one board intersection.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

// CellOf returns the cell content for a stone of p.
func CellOf(p Player) Cell {
	return Cell(p) + 1
}
