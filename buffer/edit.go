package buffer

import "github.com/iw2rmb/numfield/internal/grapheme"

// InsertText inserts text at the cursor, or replaces the active selection.
// Line breaks are dropped.
func (l *Line) InsertText(s string) {
	s = stripLineBreaks(s)
	if s == "" {
		l.DeleteSelection()
		return
	}

	r, ok := l.Selection()
	if !ok {
		r = Range{Start: l.cursor, End: l.cursor}
	}
	l.replace(r, s, ChangeSourceLocal)
}

// DeleteBackward applies backspace semantics.
func (l *Line) DeleteBackward() {
	if _, ok := l.Selection(); ok {
		l.DeleteSelection()
		return
	}
	if l.cursor == 0 {
		return
	}
	l.replace(Range{Start: l.cursor - 1, End: l.cursor}, "", ChangeSourceLocal)
}

// DeleteForward applies delete-key semantics.
func (l *Line) DeleteForward() {
	if _, ok := l.Selection(); ok {
		l.DeleteSelection()
		return
	}
	if l.cursor == len(l.clusters) {
		return
	}
	l.replace(Range{Start: l.cursor, End: l.cursor + 1}, "", ChangeSourceLocal)
}

// DeleteSelection deletes the active selection, if any.
func (l *Line) DeleteSelection() {
	r, ok := l.Selection()
	if !ok {
		return
	}
	l.replace(r, "", ChangeSourceLocal)
}

// SetText replaces the whole line. The cursor moves to the end and the
// selection is cleared. Replacing text with itself is a no-op.
func (l *Line) SetText(s string) {
	s = stripLineBreaks(s)
	if s == l.Text() {
		return
	}
	l.replace(Range{Start: 0, End: len(l.clusters)}, s, ChangeSourceProgrammatic)
}

func (l *Line) replace(r Range, text string, source ChangeSource) {
	r = NormalizeRange(ClampRange(r, len(l.clusters)))
	if r.IsEmpty() && text == "" {
		return
	}
	if grapheme.Join(l.clusters[r.Start:r.End]) == text {
		return
	}

	change := l.beginChange(source)

	ins := grapheme.Split(text)
	out := make([]string, 0, len(l.clusters)-r.Len()+len(ins))
	out = append(out, l.clusters[:r.Start]...)
	out = append(out, ins...)
	out = append(out, l.clusters[r.End:]...)

	// Re-segment: an insertion may merge with a neighbouring cluster
	// (combining marks, ZWJ sequences).
	l.clusters = grapheme.Split(grapheme.Join(out))
	l.cursor = clampInt(r.Start+len(ins), 0, len(l.clusters))
	l.sel = selectionState{}
	l.version++
	l.commitChange(change)
}
