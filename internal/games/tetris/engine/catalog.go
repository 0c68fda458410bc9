// Package engine implements the falling-block puzzle rules: the shape catalog,
// the board, piece movement with wall kicks, locking and line clears, scoring,
// the hold slot, the level curve and the auto-shift input timer.
//
// The engine performs no I/O and never blocks. A Session is driven by one
// caller per tick and is not safe for concurrent use.
package engine

import (
	"slices"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// FrameSize is the side of the square occupancy pattern of every frame.
const FrameSize = 5

// Kind identifies a piece shape. The zero value marks an empty board cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindT
	KindL
	KindJ
	KindS
	KindZ
	KindO
)

// KindCount is the number of playable kinds.
const KindCount = 7

// Frame is one rotation state: a 5x5 occupancy pattern indexed [row][col].
type Frame [FrameSize][FrameSize]bool

// RGB is a 24-bit block color.
type RGB struct {
	R, G, B uint8
}

// Shape is a catalog entry.
type Shape struct {
	Kind   Kind
	Frames []Frame
	Color  RGB
	Term   core.Color // Terminal color used by renderers
}

// parseFrames builds frames from rows of 'O' (filled) and '.' (empty).
func parseFrames(rows ...[FrameSize]string) []Frame {
	frames := make([]Frame, len(rows))
	for f, pattern := range rows {
		for i, line := range pattern {
			for j := 0; j < FrameSize && j < len(line); j++ {
				frames[f][i][j] = line[j] == 'O'
			}
		}
	}
	return frames
}

// catalog is indexed by Kind. Rotation orders are the game's own table,
// not a standard rotation system.
var catalog = [KindCount + 1]Shape{
	KindNone: {Kind: KindNone},
	KindI: {
		Kind: KindI,
		Frames: parseFrames(
			[FrameSize]string{".....", ".....", "OOOO.", ".....", "....."},
			[FrameSize]string{"..O..", "..O..", "..O..", "..O..", "....."},
		),
		Color: RGB{255, 105, 180},
		Term:  core.ColorPink,
	},
	KindT: {
		Kind: KindT,
		Frames: parseFrames(
			[FrameSize]string{".....", "..O..", ".OOO.", ".....", "....."},
			[FrameSize]string{"..O..", "..OO.", "..O..", ".....", "....."},
			[FrameSize]string{".....", ".OOO.", "..O..", ".....", "....."},
			[FrameSize]string{"..O..", ".OO..", "..O..", ".....", "....."},
		),
		Color: RGB{0, 200, 255},
		Term:  core.ColorSky,
	},
	KindL: {
		Kind: KindL,
		Frames: parseFrames(
			[FrameSize]string{".....", "...O.", ".OOO.", ".....", "....."},
			[FrameSize]string{"..O..", "..O..", "..OO.", ".....", "....."},
			[FrameSize]string{".....", ".OOO.", ".O...", ".....", "....."},
			[FrameSize]string{".OO..", "..O..", "..O..", ".....", "....."},
		),
		Color: RGB{255, 180, 0},
		Term:  core.ColorAmber,
	},
	KindJ: {
		Kind: KindJ,
		Frames: parseFrames(
			[FrameSize]string{".....", ".O...", ".OOO.", ".....", "....."},
			[FrameSize]string{"..OO.", "..O..", "..O..", ".....", "....."},
			[FrameSize]string{".....", ".OOO.", "...O.", ".....", "....."},
			[FrameSize]string{"..O..", "..O..", ".OO..", ".....", "....."},
		),
		Color: RGB{100, 255, 100},
		Term:  core.ColorLime,
	},
	KindS: {
		Kind: KindS,
		Frames: parseFrames(
			[FrameSize]string{".....", "..OO.", ".OO..", ".....", "....."},
			[FrameSize]string{".O...", ".OO..", "..O..", ".....", "....."},
		),
		Color: RGB{255, 255, 0},
		Term:  core.ColorLemon,
	},
	KindZ: {
		Kind: KindZ,
		Frames: parseFrames(
			[FrameSize]string{".....", ".OO..", "..OO.", ".....", "....."},
			[FrameSize]string{"..O..", ".OO..", ".O...", ".....", "....."},
		),
		Color: RGB{150, 0, 255},
		Term:  core.ColorViolet,
	},
	KindO: {
		Kind: KindO,
		Frames: parseFrames(
			[FrameSize]string{".....", "..OO.", "..OO.", ".....", "....."},
		),
		Color: RGB{255, 50, 150},
		Term:  core.ColorRose,
	},
}

// Kinds returns the playable kinds in catalog order.
func Kinds() []Kind {
	return []Kind{KindI, KindT, KindL, KindJ, KindS, KindZ, KindO}
}

// Valid reports whether k is a playable kind.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindO
}

// Shape returns the catalog entry for k. Panics for KindNone or unknown kinds.
func (k Kind) Shape() Shape {
	if !k.Valid() {
		panic("engine: no shape for kind " + k.String())
	}
	return catalog[k]
}

// Frames returns a copy of the rotation frames of k in rotation order.
func Frames(k Kind) []Frame {
	return slices.Clone(k.Shape().Frames)
}

// FrameCount returns how many rotation frames k has.
func FrameCount(k Kind) int {
	return len(k.Shape().Frames)
}

// FrameAt returns the frame for a rotation index, taken modulo the frame count.
func FrameAt(k Kind, rotation int) Frame {
	frames := k.Shape().Frames
	return frames[mod(rotation, len(frames))]
}

// Color returns the block color of k.
func (k Kind) Color() RGB {
	return k.Shape().Color
}

// TermColor returns the terminal color of k, or the default color for KindNone.
func (k Kind) TermColor() core.Color {
	if !k.Valid() {
		return core.ColorDefault
	}
	return catalog[k].Term
}

// String returns the kind's letter.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "-"
	case KindI:
		return "I"
	case KindT:
		return "T"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindO:
		return "O"
	default:
		return "?"
	}
}

// Cells returns the (col, row) offsets of the filled cells of f, row by row.
func (f Frame) Cells() []Point {
	cells := make([]Point, 0, 4)
	for i := range FrameSize {
		for j := range FrameSize {
			if f[i][j] {
				cells = append(cells, Point{X: j, Y: i})
			}
		}
	}
	return cells
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
