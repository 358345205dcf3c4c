package game

// StateHash identifies a position for tree-reuse lookups.
type StateHash uint64

// State is a snapshot of a position: the player to move plus the board.
// States stored in the search tree are never mutated; every transition
// produces a new value.
type State interface {
	Player() Player
	Hash() StateHash
	Clone() State
}

// Position implements State for gomoku.
type Position struct {
	toMove Player
	board  Board
}

func NewPosition(size int) *Position {
	return &Position{toMove: Black, board: NewBoard(size)}
}

func (p *Position) Player() Player {
	return p.toMove
}

func (p *Position) Board() Board {
	return p.board
}

func (p *Position) Hash() StateHash {
	return computeHash(p.board, p.toMove)
}

func (p *Position) Clone() State {
	return &Position{toMove: p.toMove, board: p.board.Clone()}
}

// play returns the position after the mover's stone lands on pt.
func (p *Position) play(pt Point) *Position {
	board := p.board.Clone()
	board.Set(pt.Row, pt.Col, CellOf(p.toMove))
	return &Position{toMove: p.toMove.Opponent(), board: board}
}
