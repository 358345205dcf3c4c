package game

import "fmt"

// Action is a single move. Implementations must be comparable values so that
// actions can key maps and be compared for equality.
type Action interface {
	String() string
}

// Point places the mover's stone at (Row, Col).
type Point struct {
	Row int
	Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
