package game

// Rules holds the win condition for a connect-in-a-row game on a square
// board: place winLength stones of one color in a straight line.
type Rules struct {
	size      int
	winLength int
}

func NewRules(size, winLength int) Rules {
	if size < 1 || winLength < 1 || winLength > size {
		panic("invalid board size or win length")
	}
	return Rules{size: size, winLength: winLength}
}

// legalActions enumerates the empty cells in row-major order. The order is
// part of the oracle contract: it fixes which branches the searcher explores
// first.
func (r Rules) legalActions(board Board) []Action {
	actions := make([]Action, 0, board.CountEmpty())
	for row := 0; row < r.size; row++ {
		for col := 0; col < r.size; col++ {
			if board.IsEmpty(row, col) {
				actions = append(actions, Point{Row: row, Col: col})
			}
		}
	}
	return actions
}

var lineDirections = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// winner scans for a completed line and returns its owner.
func (r Rules) winner(board Board) (Player, bool) {
	for row := 0; row < r.size; row++ {
		for col := 0; col < r.size; col++ {
			cell := board.At(row, col)
			if cell == CellEmpty {
				continue
			}
			for _, dir := range lineDirections {
				if r.lineFrom(board, row, col, dir[0], dir[1], cell) {
					if cell == CellBlack {
						return Black, true
					}
					return White, true
				}
			}
		}
	}
	return Black, false
}

func (r Rules) lineFrom(board Board, row, col, dRow, dCol int, cell Cell) bool {
	endRow := row + (r.winLength-1)*dRow
	endCol := col + (r.winLength-1)*dCol
	if !board.InBounds(endRow, endCol) {
		return false
	}
	for i := 1; i < r.winLength; i++ {
		if board.At(row+i*dRow, col+i*dCol) != cell {
			return false
		}
	}
	return true
}

// over reports whether the game ended: a completed line or a full board.
func (r Rules) over(board Board) bool {
	if _, won := r.winner(board); won {
		return true
	}
	return board.CountEmpty() == 0
}
