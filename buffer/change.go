package buffer

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	// ChangeSourceLocal marks edits made through typing, deletion or paste.
	ChangeSourceLocal ChangeSource = iota
	// ChangeSourceProgrammatic marks whole-line replacements made by the host.
	ChangeSourceProgrammatic
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceLocal:
		return "local"
	case ChangeSourceProgrammatic:
		return "programmatic"
	default:
		return "unknown"
	}
}

// Change is a normalized, versioned text mutation payload.
type Change struct {
	Source        ChangeSource
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  int
	CursorAfter   int
	TextBefore    string
	TextAfter     string
}

type changeBuilder struct {
	source        ChangeSource
	versionBefore uint64
	cursorBefore  int
	textBefore    string
}

// LastChange returns the most recent effective text change.
// Cursor and selection moves are not text changes.
func (l *Line) LastChange() (Change, bool) {
	if !l.hasLastChange {
		return Change{}, false
	}
	return l.lastChange, true
}

func (l *Line) beginChange(source ChangeSource) changeBuilder {
	return changeBuilder{
		source:        source,
		versionBefore: l.version,
		cursorBefore:  l.cursor,
		textBefore:    l.Text(),
	}
}

func (l *Line) commitChange(cb changeBuilder) {
	if l.version == cb.versionBefore {
		return
	}
	l.lastChange = Change{
		Source:        cb.source,
		VersionBefore: cb.versionBefore,
		VersionAfter:  l.version,
		CursorBefore:  cb.cursorBefore,
		CursorAfter:   l.cursor,
		TextBefore:    cb.textBefore,
		TextAfter:     l.Text(),
	}
	l.hasLastChange = true
}
