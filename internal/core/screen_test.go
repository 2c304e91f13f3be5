package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds writes are silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	// Out of bounds reads return a blank
	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(2, 3, '▓', ColorGreen)

	cell := s.GetCell(2, 3)
	if cell.Rune != '▓' || cell.Color != ColorGreen {
		t.Errorf("GetCell(2, 3) = %+v, expected colored rune", cell)
	}

	// Plain Set uses the default color
	s.Set(2, 3, 'x')
	if got := s.GetCell(2, 3).Color; got != ColorDefault {
		t.Errorf("Set should reset color to default, got %v", got)
	}

	if got := s.GetCell(-1, -1); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v, expected blank default", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("Clear left %+v at (%d, %d)", cell, x, y)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "hello")
	if s.Row(1) != "  hello             " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}

	// Clipping at the right edge
	s.DrawText(18, 2, "abc")
	if s.Get(18, 2) != 'a' || s.Get(19, 2) != 'b' {
		t.Error("DrawText should clip at the screen edge")
	}

	s.DrawTextColored(0, 3, "hi", ColorYellow)
	if s.GetCell(0, 3).Color != ColorYellow {
		t.Error("DrawTextColored should set the color")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("centered text misplaced: row=%q", s.Row(1))
	}
}

func TestScreenDrawRectAndBox(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawRect(NewRect(1, 1, 3, 2), '#')
	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			if s.Get(x, y) != '#' {
				t.Fatalf("DrawRect missed (%d, %d)", x, y)
			}
		}
	}

	s.Clear()
	s.DrawBox(NewRect(0, 0, 5, 4))
	if s.Get(0, 0) != '┌' || s.Get(4, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(4, 3) != '┘' {
		t.Error("DrawBox corners misplaced")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("DrawBox edges misplaced")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawHLine(0, 1, 10, '═')

	for x := 0; x < 10; x++ {
		if s.Get(x, 1) != '═' {
			t.Fatalf("DrawHLine missed x=%d", x)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}

	if lines := strings.Split(s.String(), "\n"); len(lines) != 2 {
		t.Errorf("String() should have one line per row, got %d", len(lines))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 2, 'X')

	s.Resize(5, 5)
	if s.Width() != 5 || s.Height() != 5 {
		t.Errorf("Resize to 5x5 got %dx%d", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'X' {
		t.Error("Resize should preserve surviving content")
	}

	s.Resize(20, 20)
	if s.Get(2, 2) != 'X' {
		t.Error("growing should preserve content")
	}
	if s.Get(15, 15) != ' ' {
		t.Error("new cells should be blank")
	}
}
