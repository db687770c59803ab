package buffer

import "testing"

func TestLine_Move_Grapheme(t *testing.T) {
	l := New("ab")
	l.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got, want := l.Cursor(), 1; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}

	v := l.Version()
	l.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	l.Move(Move{Unit: MoveGrapheme, Dir: DirRight}) // clamped at end
	if got, want := l.Cursor(), 2; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
	if got, want := l.Version(), v+1; got != want {
		t.Fatalf("version=%d, want %d", got, want)
	}
}

func TestLine_Move_HomeEndAndWord(t *testing.T) {
	l := New("12 345 6")
	l.Move(Move{Unit: MoveLine, Dir: DirHome})
	if got := l.Cursor(); got != 0 {
		t.Fatalf("home cursor=%d, want 0", got)
	}

	l.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got, want := l.Cursor(), 2; got != want {
		t.Fatalf("word right cursor=%d, want %d", got, want)
	}
	l.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got, want := l.Cursor(), 6; got != want {
		t.Fatalf("second word right cursor=%d, want %d", got, want)
	}
	l.Move(Move{Unit: MoveWord, Dir: DirLeft})
	if got, want := l.Cursor(), 3; got != want {
		t.Fatalf("word left cursor=%d, want %d", got, want)
	}

	l.Move(Move{Unit: MoveLine, Dir: DirEnd})
	if got, want := l.Cursor(), 8; got != want {
		t.Fatalf("end cursor=%d, want %d", got, want)
	}
}

func TestLine_Move_ExtendKeepsAnchor(t *testing.T) {
	l := New("1234")
	l.SetCursor(1)

	l.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	l.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	r, ok := l.Selection()
	if !ok {
		t.Fatalf("expected active selection")
	}
	if want := (Range{Start: 1, End: 3}); r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
	if got, want := l.SelectedText(), "23"; got != want {
		t.Fatalf("selected text=%q, want %q", got, want)
	}

	l.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if _, ok := l.Selection(); ok {
		t.Fatalf("plain move should clear selection")
	}
}

func TestLine_SelectAll(t *testing.T) {
	l := New("-42")
	l.SetCursor(0)
	l.SelectAll()

	r, ok := l.Selection()
	if !ok {
		t.Fatalf("expected active selection")
	}
	if want := (Range{Start: 0, End: 3}); r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
	if got, want := l.Cursor(), 3; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}

	l.InsertText("7")
	if got, want := l.Text(), "7"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestLine_SetSelection_EmptyIsInactive(t *testing.T) {
	l := New("12")
	v := l.Version()
	l.SetSelection(Range{Start: 1, End: 1})
	if _, ok := l.Selection(); ok {
		t.Fatalf("empty selection should be inactive")
	}
	if got := l.Version(); got != v {
		t.Fatalf("empty selection bumped version: got %d, want %d", got, v)
	}
}
