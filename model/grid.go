package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-universe/rules"
)

const (
	defaultWidth  = 64
	defaultHeight = 64
)

// ErrOutOfBounds is returned when a coordinate falls outside the grid
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Universe is a fixed-size toroidal Game of Life board
type Universe struct {
	width  uint32
	height uint32
	cells  []Cell

	pool *BufferPool
}

// New creates a 64x64 universe seeded with the default pattern:
// the cell at linear index i is alive when i%2 == 0 or i%7 == 0
func New() *Universe {
	u := &Universe{
		width:  defaultWidth,
		height: defaultHeight,
		cells:  make([]Cell, defaultWidth*defaultHeight),
	}
	for i := range u.cells {
		if i%2 == 0 || i%7 == 0 {
			u.cells[i] = Alive
		}
	}
	return u
}

// NewWithSize creates an all-dead universe with the specified dimensions
func NewWithSize(width, height uint32) *Universe {
	return &Universe{
		width:  width,
		height: height,
		cells:  make([]Cell, int(width)*int(height)),
	}
}

// UsePool makes Tick draw its next-generation buffer from p.
// A nil pool allocates a fresh buffer per generation.
func (u *Universe) UsePool(p *BufferPool) {
	u.pool = p
}

// Width returns the width of the universe
func (u *Universe) Width() uint32 {
	return u.width
}

// Height returns the height of the universe
func (u *Universe) Height() uint32 {
	return u.height
}

// SetWidth resizes the universe; every cell is reset to Dead
func (u *Universe) SetWidth(width uint32) {
	u.width = width
	u.cells = make([]Cell, int(width)*int(u.height))
}

// SetHeight resizes the universe; every cell is reset to Dead
func (u *Universe) SetHeight(height uint32) {
	u.height = height
	u.cells = make([]Cell, int(u.width)*int(height))
}

// Cells exposes the current buffer without copying. The slice is only valid
// until the next call to Tick, SetWidth or SetHeight.
func (u *Universe) Cells() []Cell {
	return u.cells
}

// Cell returns the state at (row, col), or Dead outside the grid
func (u *Universe) Cell(row, col uint32) Cell {
	if row >= u.height || col >= u.width {
		return Dead
	}
	return u.cells[u.index(row, col)]
}

// SetCellsAlive marks every given coordinate Alive. All coordinates are
// checked first; if any is out of range nothing is written.
func (u *Universe) SetCellsAlive(coords ...Coord) error {
	for _, c := range coords {
		if c.Row >= u.height || c.Col >= u.width {
			return errors.Wrapf(ErrOutOfBounds, "[SetCellsAlive] (%d, %d) in %dx%d grid",
				c.Row, c.Col, u.width, u.height)
		}
	}
	for _, c := range coords {
		u.cells[u.index(c.Row, c.Col)] = Alive
	}
	return nil
}

// Clear sets every cell to Dead, keeping the dimensions
func (u *Universe) Clear() {
	for i := range u.cells {
		u.cells[i] = Dead
	}
}

func (u *Universe) index(row, col uint32) int {
	return int(row)*int(u.width) + int(col)
}

// liveNeighborCount sums the 8 wrapped neighbors of (row, col).
// height-1 and width-1 act as -1 under the modulo.
func (u *Universe) liveNeighborCount(row, col uint32) uint8 {
	var count uint8
	for _, dRow := range [3]uint32{u.height - 1, 0, 1} {
		for _, dCol := range [3]uint32{u.width - 1, 0, 1} {
			if dRow == 0 && dCol == 0 {
				continue
			}
			neighborRow := (row + dRow) % u.height
			neighborCol := (col + dCol) % u.width
			count += u.cells[u.index(neighborRow, neighborCol)].Count()
		}
	}
	return count
}

// Tick advances the universe one generation
func (u *Universe) Tick() {
	next := u.pool.Get(len(u.cells))

	for row := range u.height {
		for col := range u.width {
			idx := u.index(row, col)
			alive := rules.Next(u.cells[idx] == Alive, u.liveNeighborCount(row, col))
			if alive {
				next[idx] = Alive
			} else {
				next[idx] = Dead
			}
		}
	}

	prev := u.cells
	u.cells = next
	u.pool.Put(prev)
}

// Population returns the number of living cells
func (u *Universe) Population() (count int) {
	for _, c := range u.cells {
		count += int(c.Count())
	}
	return
}

// Hash returns an MD5 digest of the current generation
func (u *Universe) Hash() string {
	h := md5.New()
	buf := make([]byte, len(u.cells))
	for i, c := range u.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
