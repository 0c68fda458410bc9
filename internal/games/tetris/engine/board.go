package engine

import "fmt"

// Board dimensions.
const (
	Width  = 10
	Height = 20
)

// Point is a board coordinate (or a frame offset). Y grows downward and may
// be negative above the visible field.
type Point struct {
	X, Y int
}

// Board is the grid of locked cells. Each cell holds KindNone or the kind
// of the block that locked there.
type Board struct {
	cells [Height][Width]Kind
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// IsInside reports whether (x, y) is within the horizontal bounds and above
// the floor. Rows above the field (y < 0) count as inside.
func (b *Board) IsInside(x, y int) bool {
	return x >= 0 && x < Width && y < Height
}

// IsOccupied reports whether a locked block sits at (x, y). Cells above the
// field are never occupied. Panics when (x, y) is not inside.
func (b *Board) IsOccupied(x, y int) bool {
	if !b.IsInside(x, y) {
		panic(fmt.Sprintf("engine: IsOccupied(%d, %d) outside board", x, y))
	}
	if y < 0 {
		return false
	}
	return b.cells[y][x] != KindNone
}

// At returns the kind locked at (x, y). Panics outside the visible grid.
func (b *Board) At(x, y int) Kind {
	b.mustBeVisible(x, y)
	return b.cells[y][x]
}

// Set writes a cell. Panics outside the visible grid.
func (b *Board) Set(x, y int, k Kind) {
	b.mustBeVisible(x, y)
	b.cells[y][x] = k
}

func (b *Board) mustBeVisible(x, y int) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		panic(fmt.Sprintf("engine: cell (%d, %d) outside %dx%d board", x, y, Width, Height))
	}
}

// rowFull reports whether row y has no empty cell.
func (b *Board) rowFull(y int) bool {
	for _, k := range b.cells[y] {
		if k == KindNone {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifts the remaining rows down in
// their original order and inserts as many empty rows at the top.
// Returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	var kept [Height][Width]Kind
	n := Height
	cleared := 0

	// Walk bottom-up so kept rows fill from the floor.
	for y := Height - 1; y >= 0; y-- {
		if b.rowFull(y) {
			cleared++
			continue
		}
		n--
		kept[n] = b.cells[y]
	}

	if cleared > 0 {
		b.cells = kept
	}
	return cleared
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	n := 0
	for y := range Height {
		for x := range Width {
			if b.cells[y][x] != KindNone {
				n++
			}
		}
	}
	return n
}

// Rows returns a copy of the grid, top row first.
func (b *Board) Rows() [Height][Width]Kind {
	return b.cells
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}
