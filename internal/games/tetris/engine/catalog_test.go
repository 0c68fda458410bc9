package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestFrameCounts(t *testing.T) {
	want := map[Kind]int{
		KindI: 2,
		KindT: 4,
		KindL: 4,
		KindJ: 4,
		KindS: 2,
		KindZ: 2,
		KindO: 1,
	}
	for k, n := range want {
		assert.Equal(t, n, FrameCount(k), "kind %s", k)
	}
	assert.Len(t, Kinds(), KindCount)
}

func TestEveryFrameHasFourCells(t *testing.T) {
	for _, k := range Kinds() {
		for r, f := range Frames(k) {
			assert.Len(t, f.Cells(), 4, "kind %s rotation %d", k, r)
		}
	}
}

func TestTRotationOrder(t *testing.T) {
	// Up, right, down, left.
	want := [][]Point{
		{{2, 1}, {1, 2}, {2, 2}, {3, 2}},
		{{2, 0}, {2, 1}, {3, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {3, 1}, {2, 2}},
		{{2, 0}, {1, 1}, {2, 1}, {2, 2}},
	}
	for r, cells := range want {
		assert.Equal(t, cells, FrameAt(KindT, r).Cells(), "rotation %d", r)
	}
}

func TestFrameAtWrapsRotation(t *testing.T) {
	assert.Equal(t, FrameAt(KindO, 0), FrameAt(KindO, 3))
	assert.Equal(t, FrameAt(KindS, 0), FrameAt(KindS, 2))
	assert.Equal(t, FrameAt(KindL, 3), FrameAt(KindL, -1))
}

func TestFramesReturnsCopy(t *testing.T) {
	frames := Frames(KindI)
	frames[0][2][0] = false

	assert.True(t, FrameAt(KindI, 0)[2][0], "catalog must not change through a returned slice")
}

func TestKindColors(t *testing.T) {
	assert.Equal(t, RGB{255, 105, 180}, KindI.Color())
	assert.Equal(t, RGB{0, 200, 255}, KindT.Color())
	assert.Equal(t, RGB{255, 50, 150}, KindO.Color())
	assert.Equal(t, core.ColorPink, KindI.TermColor())
	assert.Equal(t, core.ColorDefault, KindNone.TermColor())
}

func TestShapePanicsForNone(t *testing.T) {
	require.Panics(t, func() { KindNone.Shape() })
	require.False(t, KindNone.Valid())
	require.True(t, KindO.Valid())
}
