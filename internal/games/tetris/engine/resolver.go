package engine

// Kick is a translation tried when a plain rotation does not fit.
type Kick struct {
	DX, DY int
}

// WallKicks lists the rotation fallbacks in the order they are tried:
// single-cell shifts, then double-cell shifts, then one row up.
// The list is shared by every kind.
var WallKicks = [...]Kick{
	{DX: -1, DY: 0},
	{DX: 1, DY: 0},
	{DX: -2, DY: 0},
	{DX: 2, DY: 0},
	{DX: 0, DY: -1},
}

// Fits reports whether p moved by (dx, dy) and rotated by drot stays within
// the walls and floor and overlaps no locked block. Cells above the field
// never collide.
func Fits(b *Board, p Piece, dx, dy, drot int) bool {
	for _, c := range p.cellsAt(dx, dy, drot) {
		if c.X < 0 || c.X >= Width || c.Y >= Height {
			return false
		}
		if c.Y >= 0 && b.IsOccupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// TryMove applies the move to p when it fits and reports whether it did.
// A rejected move leaves p untouched.
func TryMove(b *Board, p *Piece, dx, dy, drot int) bool {
	if !Fits(b, *p, dx, dy, drot) {
		return false
	}
	p.X += dx
	p.Y += dy
	p.Rotation = mod(p.Rotation+drot, FrameCount(p.Kind))
	return true
}

// RotateCW rotates p one frame forward. When the plain rotation does not fit,
// the first WallKicks offset that fits is applied together with the rotation.
// Returns false and leaves p untouched when nothing fits.
func RotateCW(b *Board, p *Piece) bool {
	if TryMove(b, p, 0, 0, 1) {
		return true
	}
	for _, k := range WallKicks {
		if TryMove(b, p, k.DX, k.DY, 1) {
			return true
		}
	}
	return false
}

// GhostRow returns the row p would come to rest on if dropped straight down.
// p itself is not modified.
func GhostRow(b *Board, p Piece) int {
	for range Height + 1 {
		if !TryMove(b, &p, 0, 1, 0) {
			break
		}
	}
	return p.Y
}
