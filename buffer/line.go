package buffer

import (
	"strings"

	"github.com/iw2rmb/numfield/internal/grapheme"
)

type selectionState struct {
	active bool
	anchor int
	end    int
}

// Line is the pure single-line state: clusters, cursor, and selection.
type Line struct {
	clusters []string
	version  uint64

	cursor int
	sel    selectionState

	lastChange    Change
	hasLastChange bool
}

// New returns a Line holding text with the cursor placed at its end.
// Line breaks in text are dropped.
func New(text string) *Line {
	clusters := grapheme.Split(stripLineBreaks(text))
	return &Line{
		clusters: clusters,
		cursor:   len(clusters),
	}
}

func (l *Line) Text() string { return grapheme.Join(l.clusters) }

// Len returns the number of grapheme clusters in the line.
func (l *Line) Len() int { return len(l.clusters) }

// Clusters returns a copy of the line's grapheme clusters.
func (l *Line) Clusters() []string {
	return append([]string(nil), l.clusters...)
}

func (l *Line) Version() uint64 { return l.version }

func (l *Line) Cursor() int { return l.cursor }

func (l *Line) SetCursor(col int) {
	next := clampInt(col, 0, len(l.clusters))
	if next == l.cursor {
		return
	}
	l.cursor = next
	l.version++
}

func (l *Line) Selection() (Range, bool) {
	if !l.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: l.sel.anchor, End: l.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the raw selection anchor/end without normalization.
//
// Shift+click uses it to keep the original anchor when extending.
func (l *Line) SelectionRaw() (Range, bool) {
	if !l.sel.active || l.sel.anchor == l.sel.end {
		return Range{}, false
	}
	return Range{Start: l.sel.anchor, End: l.sel.end}, true
}

func (l *Line) SetSelection(r Range) {
	clamped := ClampRange(r, len(l.clusters))
	next := selectionState{}
	if !clamped.IsEmpty() {
		next = selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	}
	if selectionStateEqual(l.sel, next) {
		return
	}
	prevRange, prevOK := l.Selection()
	l.sel = next
	nextRange, nextOK := l.Selection()
	if prevOK == nextOK && prevRange == nextRange {
		return
	}
	l.version++
}

// SelectAll selects the whole line and moves the cursor to its end.
func (l *Line) SelectAll() {
	l.SetCursor(len(l.clusters))
	l.SetSelection(Range{Start: 0, End: len(l.clusters)})
}

func (l *Line) ClearSelection() {
	if !l.sel.active {
		return
	}
	_, ok := l.Selection()
	l.sel = selectionState{}
	if ok {
		l.version++
	}
}

// SelectedText returns the text covered by the active selection.
func (l *Line) SelectedText() string {
	r, ok := l.Selection()
	if !ok {
		return ""
	}
	return grapheme.Join(l.clusters[r.Start:r.End])
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}

func stripLineBreaks(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.NewReplacer("\r\n", "", "\r", "", "\n", "").Replace(s)
}
