package numeric

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/numfield/textfield"
)

// ChangedMsg is sent after an update in which the change listener fired.
// Value is the last value reported during that update.
type ChangedMsg struct {
	ID    string
	Value int64
}

type notice struct {
	fired bool
	value int64
}

// Model is a Bubble Tea numeric entry field.
//
// Copies of a Model share the same Input.
type Model struct {
	id     string
	field  textfield.Model
	input  *Input
	notice *notice
}

func New(cfg Config) Model {
	in := newInput()
	field := textfield.New(textfield.Config{
		Text:      formatNumber(0),
		Prompt:    cfg.Prompt,
		Width:     cfg.Width,
		ReadOnly:  cfg.ReadOnly,
		KeyMap:    cfg.KeyMap,
		Style:     cfg.Style,
		Clipboard: cfg.Clipboard,
		Handler:   in,
		Blurred:   cfg.Blurred,
	})
	in.bind(field.Line())

	// Initial bounds and value are applied before any listener exists.
	if cfg.Min > cfg.Max {
		cfg.Max = cfg.Min
	}
	in.SetMin(cfg.Min)
	in.SetMax(cfg.Max)
	in.SetNumber(cfg.Value, NotifyNone)

	n := &notice{}
	user := cfg.OnNumberChanged
	in.SetOnNumberChanged(func(v int64) {
		n.fired = true
		n.value = v
		if user != nil {
			user(v)
		}
	})

	return Model{
		id:     cfg.ID,
		field:  field.Sync(),
		input:  in,
		notice: n,
	}
}

func (m Model) ID() string { return m.id }

// Input exposes the underlying state machine.
func (m Model) Input() *Input { return m.input }

// Field exposes the underlying text field.
func (m Model) Field() textfield.Model { return m.field }

func (m Model) Number() int64 { return m.input.Number() }

func (m Model) Min() int64 { return m.input.Min() }

func (m Model) Max() int64 { return m.input.Max() }

func (m Model) Text() string { return m.input.Text() }

func (m Model) NeedsTextReset() bool { return m.input.NeedsTextReset() }

func (m Model) Focused() bool { return m.field.Focused() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	changed := m.track(func() {
		m.field, cmd = m.field.Update(msg)
	})
	return m, tea.Batch(cmd, changed)
}

func (m Model) View() string { return m.field.View() }

func (m Model) Focus() Model {
	m.field = m.field.Focus()
	return m
}

// Blur removes focus, which is a commit point.
func (m Model) Blur() (Model, tea.Cmd) {
	cmd := m.track(func() { m.field = m.field.Blur() })
	return m, cmd
}

// Commit finalizes the text without changing focus.
func (m Model) Commit() (Model, tea.Cmd) {
	return m.mutate(m.input.Finalize)
}

func (m Model) SetNumber(n int64, notify Notify) (Model, tea.Cmd) {
	return m.mutate(func() { m.input.SetNumber(n, notify) })
}

func (m Model) SetMin(v int64) (Model, tea.Cmd) {
	return m.mutate(func() { m.input.SetMin(v) })
}

func (m Model) SetMax(v int64) (Model, tea.Cmd) {
	return m.mutate(func() { m.input.SetMax(v) })
}

func (m Model) StepUp() (Model, tea.Cmd) { return m.mutate(m.input.StepUp) }

func (m Model) StepDown() (Model, tea.Cmd) { return m.mutate(m.input.StepDown) }

func (m Model) SetWidth(width int) Model {
	m.field = m.field.SetWidth(width)
	return m
}

func (m Model) SetPosition(x, y int) Model {
	m.field = m.field.SetPosition(x, y)
	return m
}

// mutate runs fn and re-syncs the field's scroll state, which depends on
// text the Input may have rewritten.
func (m Model) mutate(fn func()) (Model, tea.Cmd) {
	cmd := m.track(fn)
	m.field = m.field.Sync()
	return m, cmd
}

// track runs fn and returns a command carrying the last value the listener
// saw during fn, or nil if it did not fire. A listener may call back into
// the Model; the nested call leaves the enclosing notice intact.
func (m Model) track(fn func()) tea.Cmd {
	outer := *m.notice
	*m.notice = notice{}
	fn()
	got := *m.notice
	if !got.fired {
		*m.notice = outer
		return nil
	}
	msg := ChangedMsg{ID: m.id, Value: got.value}
	return func() tea.Msg { return msg }
}
