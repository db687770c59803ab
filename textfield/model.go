package textfield

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/numfield/buffer"
)

// Model is a Bubble Tea component that renders and edits a single line.
//
// Copies of a Model share the same *buffer.Line.
type Model struct {
	cfg  Config
	line *buffer.Line

	focused bool

	// x, y locate the field on screen for mouse hit tests.
	x, y int
	// offset is the first visible cluster when the line is wider than Width.
	offset int

	mouseAnchor   int
	mouseDragging bool
}

func New(cfg Config) Model {
	if reflect.DeepEqual(cfg.KeyMap, KeyMap{}) {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Handler == nil {
		cfg.Handler = NopHandler{}
	}
	m := Model{
		cfg:     cfg,
		line:    buffer.New(cfg.Text),
		focused: !cfg.Blurred,
	}
	m.followCursor()
	return m
}

// Line returns the backing line. Mutations through it are not reported to
// the Handler.
func (m Model) Line() *buffer.Line { return m.line }

// Value returns the current text.
func (m Model) Value() string { return m.line.Text() }

// SetText replaces the text without notifying the Handler.
func (m Model) SetText(s string) Model {
	m.line.SetText(s)
	m.followCursor()
	return m
}

// Sync re-derives scroll state after the line was mutated through Line().
func (m Model) Sync() Model {
	m.followCursor()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// SetWidth sets the total rendered width in cells. Zero disables clipping.
func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.cfg.Width = width
	m.followCursor()
	return m
}

func (m Model) Width() int { return m.cfg.Width }

// SetPosition records where the field is drawn, for mouse hit tests.
func (m Model) SetPosition(x, y int) Model {
	m.x, m.y = x, y
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur removes focus. A focused field reports FocusLost to its Handler.
func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.mouseDragging = false
		m.cfg.Handler.FocusLost()
		m.followCursor()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) ReadOnly() bool { return m.cfg.ReadOnly }

func (m Model) SetReadOnly(readOnly bool) Model {
	m.cfg.ReadOnly = readOnly
	return m
}

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	default:
		return m, nil
	}
	m.followCursor()
	return m, cmd
}

// HandleWheel dispatches a wheel event to the Handler. Hosts that route
// mouse input themselves inspect ev.Consumed afterwards.
func (m Model) HandleWheel(ev *WheelEvent) {
	if ev == nil {
		return
	}
	m.cfg.Handler.Wheel(ev)
}

// edit runs fn and reports TextChanged if it produced a local text change.
func (m Model) edit(fn func()) {
	if m.cfg.ReadOnly {
		return
	}
	before := m.line.Version()
	fn()
	if m.line.Version() == before {
		return
	}
	if ch, ok := m.line.LastChange(); ok && ch.Source == buffer.ChangeSourceLocal {
		m.cfg.Handler.TextChanged()
	}
}

func (m Model) filter(s string) string {
	if m.cfg.Accept == nil {
		return s
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if m.cfg.Accept(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

func (m *Model) followCursor() {
	m.offset, _ = visibleWindow(m.line.Clusters(), m.line.Cursor(), m.offset, m.textWidth())
}
