package engine

// SpawnX is the anchor column of a freshly spawned piece.
const SpawnX = Width/2 - 2

// Piece is the falling piece: a kind, the top-left anchor of its 5x5 frame
// in board space, and a rotation index in [0, FrameCount(Kind)).
type Piece struct {
	Kind     Kind
	X, Y     int
	Rotation int
}

// SpawnPiece returns a piece of kind k at the spawn position with rotation 0.
func SpawnPiece(k Kind) Piece {
	return Piece{Kind: k, X: SpawnX, Y: 0}
}

// Frame returns the piece's active frame.
func (p Piece) Frame() Frame {
	return FrameAt(p.Kind, p.Rotation)
}

// Cells returns the absolute board coordinates of the active frame.
func (p Piece) Cells() []Point {
	return p.cellsAt(0, 0, 0)
}

// cellsAt returns the absolute coordinates the piece would cover after
// moving by (dx, dy) and rotating by drot.
func (p Piece) cellsAt(dx, dy, drot int) []Point {
	offsets := FrameAt(p.Kind, p.Rotation+drot).Cells()
	for i := range offsets {
		offsets[i].X += p.X + dx
		offsets[i].Y += p.Y + dy
	}
	return offsets
}
