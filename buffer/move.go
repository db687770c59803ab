package buffer

import "github.com/iw2rmb/numfield/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome // line start
	DirEnd  // line end
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (l *Line) Move(m Move) {
	prevCursor := l.cursor
	prevSel := l.sel

	nextCursor := clampInt(l.moveCursor(prevCursor, m), 0, len(l.clusters))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	}

	if prevCursor == nextCursor && selectionStateEqual(prevSel, nextSel) {
		return
	}

	l.cursor = nextCursor
	l.sel = nextSel
	l.version++
}

func (l *Line) moveCursor(col int, m Move) int {
	switch m.Dir {
	case DirHome:
		return 0
	case DirEnd:
		return len(l.clusters)
	}

	switch m.Unit {
	case MoveGrapheme:
		if m.Dir == DirLeft {
			return col - 1
		}
		return col + 1
	case MoveWord:
		if m.Dir == DirLeft {
			return prevWordBoundary(l.clusters, col)
		}
		return nextWordBoundary(l.clusters, col)
	case MoveLine:
		if m.Dir == DirLeft {
			return 0
		}
		return len(l.clusters)
	default:
		return col
	}
}

// Word boundary rules: skip whitespace, then skip non-whitespace.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
