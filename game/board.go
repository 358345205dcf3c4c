package game

type Board struct {
	size  int
	cells []Cell
}

func NewBoard(size int) Board {
	return Board{size: size, cells: make([]Cell, size*size)}
}

func (b Board) Size() int {
	return b.size
}

func (b Board) At(row, col int) Cell {
	return b.cells[row*b.size+col]
}

func (b *Board) Set(row, col int, value Cell) {
	b.cells[row*b.size+col] = value
}

func (b Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.size && col < b.size
}

func (b Board) IsEmpty(row, col int) bool {
	return b.At(row, col) == CellEmpty
}

func (b Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == CellEmpty {
			count++
		}
	}
	return count
}

func (b Board) Clone() Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Board{size: b.size, cells: cells}
}
