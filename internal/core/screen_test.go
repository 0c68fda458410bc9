package core

import (
	"strings"
	"testing"
)

// cellAt is a test shorthand for GetCell.
func cellAt(s *Screen, x, y int) Cell {
	return s.GetCell(x, y)
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	want := strings.Repeat(" ", 6) + "\n" + strings.Repeat(" ", 6) + "\n" + strings.Repeat(" ", 6)
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSetColoredAndGetCell(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 2, '█', ColorSky)

	if got := cellAt(s, 1, 2); got != (Cell{Rune: '█', Color: ColorSky}) {
		t.Errorf("cell = %+v, want sky block", got)
	}

	// Out of bounds writes are dropped and reads are blank
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		s.SetColored(p[0], p[1], 'X', ColorRed)
		if got := cellAt(s, p[0], p[1]); got != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v, want blank", p[0], p[1], got)
		}
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out of bounds write leaked into the buffer")
	}
}

func TestDrawTextColoredClips(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawTextColored(5, 0, "SCORE", ColorGray)

	if got := s.String(); got != "     SCO" {
		t.Errorf("String() = %q, want clipped text", got)
	}
	if got := cellAt(s, 5, 0).Color; got != ColorGray {
		t.Errorf("color = %v, want ColorGray", got)
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(12, 1)
	s.DrawTextCentered(0, "PAUSED")

	if got := s.String(); got != "   PAUSED   " {
		t.Errorf("String() = %q", got)
	}
	if got := cellAt(s, 3, 0).Color; got != ColorDefault {
		t.Errorf("color = %v, want default", got)
	}
}

func TestDrawRectClearsArea(t *testing.T) {
	s := NewScreen(5, 4)
	for y := range 4 {
		s.DrawTextColored(0, y, "█████", ColorLime)
	}

	s.DrawRect(NewRect(1, 1, 3, 2), ' ')

	want := "█████\n█   █\n█   █\n█████"
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if got := cellAt(s, 2, 1); got != blankCell {
		t.Errorf("filled cell = %+v, want blank", got)
	}
}

func TestDrawBoxColored(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBoxColored(NewRect(0, 0, 6, 4), ColorPink)

	want := "┌────┐\n│    │\n│    │\n└────┘"
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}

	for _, p := range [][2]int{{0, 0}, {5, 0}, {0, 3}, {5, 3}, {2, 0}, {0, 2}} {
		if got := cellAt(s, p[0], p[1]).Color; got != ColorPink {
			t.Errorf("border cell (%d, %d) color = %v, want ColorPink", p[0], p[1], got)
		}
	}
	if got := cellAt(s, 2, 1); got != blankCell {
		t.Errorf("inside cell = %+v, want blank", got)
	}
}

func TestResizeKeepsColoredCells(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, '▓', ColorBrightWhite)
	s.SetColored(3, 3, '█', ColorAmber)

	s.Resize(3, 5)

	if s.Width() != 3 || s.Height() != 5 {
		t.Fatalf("size = %dx%d, want 3x5", s.Width(), s.Height())
	}
	if got := cellAt(s, 1, 1); got != (Cell{Rune: '▓', Color: ColorBrightWhite}) {
		t.Errorf("kept cell = %+v", got)
	}
	if got := cellAt(s, 2, 4); got != blankCell {
		t.Errorf("new row cell = %+v, want blank", got)
	}

	// Same size is a no-op
	s.Resize(3, 5)
	if got := cellAt(s, 1, 1).Rune; got != '▓' {
		t.Errorf("rune after no-op resize = %q", got)
	}
}

func TestClearResetsColors(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColored(0, 0, "abc", ColorRed)

	s.Clear()

	for y := range 2 {
		for x := range 3 {
			if got := cellAt(s, x, y); got != blankCell {
				t.Fatalf("cell (%d, %d) = %+v, want blank", x, y, got)
			}
		}
	}
}
