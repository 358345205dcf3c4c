package game

import "sync"

// Zobrist hashing over (cell, stone) pairs plus a side-to-move key. Tables
// are derived from a fixed seed so hashes are stable across processes.

type zobristTable struct {
	size  int
	cells []uint64
	side  uint64
}

type zobristStore struct {
	mu     sync.Mutex
	tables map[int]*zobristTable
}

var zobristTables = &zobristStore{tables: make(map[int]*zobristTable)}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func zobristFor(size int) *zobristTable {
	zobristTables.mu.Lock()
	defer zobristTables.mu.Unlock()
	if table, ok := zobristTables.tables[size]; ok {
		return table
	}
	rng := splitmix64{state: 0x9e3779b97f4a7c15 ^ uint64(size)}
	table := &zobristTable{size: size, cells: make([]uint64, size*size*2)}
	for i := range table.cells {
		table.cells[i] = rng.next()
	}
	table.side = rng.next()
	zobristTables.tables[size] = table
	return table
}

func (z *zobristTable) stone(row, col int, p Player) uint64 {
	idx := (row*z.size + col) * 2
	if p == White {
		idx++
	}
	return z.cells[idx]
}

func computeHash(board Board, toMove Player) StateHash {
	z := zobristFor(board.Size())
	var hash uint64
	size := board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			switch board.At(row, col) {
			case CellBlack:
				hash ^= z.stone(row, col, Black)
			case CellWhite:
				hash ^= z.stone(row, col, White)
			}
		}
	}
	if toMove == White {
		hash ^= z.side
	}
	return StateHash(hash)
}
