package model

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Count returns the cell's contribution to a neighbor sum: 1 for Alive, 0 for Dead
func (c Cell) Count() uint8 {
	if c == Alive {
		return 1
	}
	return 0
}

// Coord addresses a cell by row and column
type Coord struct {
	Row uint32
	Col uint32
}
