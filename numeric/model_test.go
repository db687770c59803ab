package numeric

import (
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/numfield/textfield"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func boundedConfig(min, max int64) Config {
	cfg := DefaultConfig()
	cfg.Min = min
	cfg.Max = max
	cfg.Style = plainStyle()
	return cfg
}

func changedValue(t *testing.T, cmd tea.Cmd) (ChangedMsg, bool) {
	t.Helper()
	if cmd == nil {
		return ChangedMsg{}, false
	}
	msg, ok := cmd().(ChangedMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want ChangedMsg", cmd())
	}
	return msg, true
}

func TestNew_DefaultsAndInitialValue(t *testing.T) {
	var notes []int64
	cfg := boundedConfig(5, 10)
	cfg.Value = 42
	cfg.OnNumberChanged = func(v int64) { notes = append(notes, v) }

	m := New(cfg)
	if got := m.Number(); got != 10 {
		t.Fatalf("value: got %d, want 10", got)
	}
	if got := m.Text(); got != "10" {
		t.Fatalf("text: got %q, want %q", got, "10")
	}
	if len(notes) != 0 {
		t.Fatalf("construction notified: %v", notes)
	}

	d := New(DefaultConfig())
	if d.Min() != math.MinInt64 || d.Max() != math.MaxInt64 {
		t.Fatalf("default bounds: got [%d, %d]", d.Min(), d.Max())
	}
	if d.Number() != 0 || d.Text() != "0" {
		t.Fatalf("default value: got %d %q, want 0 %q", d.Number(), d.Text(), "0")
	}
}

func TestNew_InvertedBoundsCollapseToMin(t *testing.T) {
	m := New(boundedConfig(7, 3))
	if m.Min() != 7 || m.Max() != 7 || m.Number() != 7 {
		t.Fatalf("got [%d, %d] value %d, want [7, 7] value 7", m.Min(), m.Max(), m.Number())
	}
}

func TestModel_TypingClampsWithoutMessage(t *testing.T) {
	m := New(boundedConfig(0, 10))

	var cmd tea.Cmd
	m, cmd = m.Update(runes("1"))
	if _, ok := changedValue(t, cmd); ok {
		t.Fatalf("typing produced a ChangedMsg")
	}
	m, _ = m.Update(runes("5"))

	if got := m.Number(); got != 10 {
		t.Fatalf("value: got %d, want 10", got)
	}
	if got := m.Text(); got != "10" {
		t.Fatalf("text: got %q, want %q", got, "10")
	}
}

func TestModel_BareMinusResetOnBlur(t *testing.T) {
	cfg := boundedConfig(-5, 5)
	cfg.ID = "offset"
	m := New(cfg)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(runes("-"))
	if !m.NeedsTextReset() {
		t.Fatalf("expected provisional state")
	}
	if got := m.Text(); got != "-" {
		t.Fatalf("text: got %q, want %q", got, "-")
	}

	m, cmd := m.Blur()
	if got := m.Text(); got != "0" {
		t.Fatalf("text after blur: got %q, want %q", got, "0")
	}
	msg, ok := changedValue(t, cmd)
	if !ok {
		t.Fatalf("blur produced no ChangedMsg")
	}
	if want := (ChangedMsg{ID: "offset", Value: 0}); msg != want {
		t.Fatalf("msg: got %+v, want %+v", msg, want)
	}
	if m.Focused() {
		t.Fatalf("model still focused after blur")
	}
}

func TestModel_EnterAndEscapeCommit(t *testing.T) {
	var notes []int64
	cfg := boundedConfig(0, 100)
	cfg.OnNumberChanged = func(v int64) { notes = append(notes, v) }
	m := New(cfg)

	m, _ = m.Update(runes("a"))
	m, _ = m.Update(runes("4"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if msg, ok := changedValue(t, cmd); !ok || msg.Value != 4 {
		t.Fatalf("enter: got %+v (ok=%v), want value 4", msg, ok)
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if msg, ok := changedValue(t, cmd); !ok || msg.Value != 4 {
		t.Fatalf("escape: got %+v (ok=%v), want value 4", msg, ok)
	}

	if diff := cmp.Diff([]int64{4, 4}, notes); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestModel_UpDownKeysStep(t *testing.T) {
	cfg := boundedConfig(0, 1)
	m := New(cfg)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if msg, ok := changedValue(t, cmd); !ok || msg.Value != 1 {
		t.Fatalf("up: got %+v (ok=%v), want value 1", msg, ok)
	}
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if _, ok := changedValue(t, cmd); ok {
		t.Fatalf("up at max produced a ChangedMsg")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.Number(); got != 0 {
		t.Fatalf("value after down: got %d, want 0", got)
	}
}

func TestModel_WheelAccelerated(t *testing.T) {
	cfg := boundedConfig(0, 10)
	cfg.Value = 5
	m := New(cfg)

	m, cmd := m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp, Ctrl: true})
	if got := m.Number(); got != 10 {
		t.Fatalf("value: got %d, want 10", got)
	}
	if msg, ok := changedValue(t, cmd); !ok || msg.Value != 10 {
		t.Fatalf("wheel: got %+v (ok=%v), want value 10", msg, ok)
	}

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got := m.Number(); got != 9 {
		t.Fatalf("value after wheel down: got %d, want 9", got)
	}
}

func TestModel_ProgrammaticSetters(t *testing.T) {
	m := New(boundedConfig(0, 50))

	m, cmd := m.SetNumber(20, NotifyNone)
	if cmd != nil {
		t.Fatalf("silent set produced a command")
	}
	m, cmd = m.SetMax(10)
	if msg, ok := changedValue(t, cmd); !ok || msg.Value != 10 {
		t.Fatalf("set max: got %+v (ok=%v), want value 10", msg, ok)
	}
	m, _ = m.SetMin(3)
	m, _ = m.StepDown()
	m, _ = m.StepUp()
	m, _ = m.StepUp()
	if got := m.Number(); got != 10 {
		t.Fatalf("value: got %d, want 10", got)
	}
	if got := m.Text(); got != "10" {
		t.Fatalf("text: got %q, want %q", got, "10")
	}

	m, cmd = m.Commit()
	if msg, ok := changedValue(t, cmd); !ok || msg.Value != 10 {
		t.Fatalf("commit: got %+v (ok=%v), want value 10", msg, ok)
	}
}

func TestModel_CopiesShareInput(t *testing.T) {
	a := New(boundedConfig(0, 10))
	b := a
	a, _ = a.SetNumber(4, NotifyNone)
	if got := b.Number(); got != 4 {
		t.Fatalf("copy value: got %d, want 4", got)
	}
	if a.Input() != b.Input() {
		t.Fatalf("copies should share the Input")
	}
}

func TestModel_ViewShowsPromptAndValue(t *testing.T) {
	cfg := boundedConfig(-10, 10)
	cfg.Prompt = "n> "
	cfg.Value = -3
	m := New(cfg)
	m, _ = m.Blur()

	if got, want := m.View(), "n> -3"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func plainStyle() textfield.Style { return textfield.Style{} }

func TestModel_ListenerCallingBackKeepsChangedMsg(t *testing.T) {
	var m Model
	cfg := boundedConfig(0, 20)
	cfg.Value = 10
	cfg.OnNumberChanged = func(int64) { m, _ = m.SetMax(100) }
	m = New(cfg)

	m, cmd := m.StepUp()
	if msg, ok := changedValue(t, cmd); !ok || msg.Value != 11 {
		t.Fatalf("step up: got %+v (ok=%v), want value 11", msg, ok)
	}
	if got := m.Max(); got != 100 {
		t.Fatalf("max: got %d, want 100", got)
	}
}

func TestModel_NestedNotificationReportsLastValue(t *testing.T) {
	var m Model
	cfg := boundedConfig(0, 20)
	cfg.Value = 10
	cfg.OnNumberChanged = func(v int64) {
		if v > 5 {
			m, _ = m.SetMax(5)
		}
	}
	m = New(cfg)

	m, cmd := m.StepUp()
	if msg, ok := changedValue(t, cmd); !ok || msg.Value != 5 {
		t.Fatalf("step up: got %+v (ok=%v), want value 5", msg, ok)
	}
	if got := m.Text(); got != "5" {
		t.Fatalf("text: got %q, want %q", got, "5")
	}
}

func TestNew_BlurredSkipsCommit(t *testing.T) {
	var notes []int64
	cfg := boundedConfig(0, 10)
	cfg.Value = 3
	cfg.Blurred = true
	cfg.OnNumberChanged = func(v int64) { notes = append(notes, v) }

	m := New(cfg)
	if m.Focused() {
		t.Fatalf("field should start unfocused")
	}
	m, cmd := m.Blur()
	if cmd != nil || len(notes) != 0 {
		t.Fatalf("blur of unfocused field committed: cmd=%v notes=%v", cmd != nil, notes)
	}
	if got := m.Focus().Focused(); !got {
		t.Fatalf("focus: got %v, want true", got)
	}
}
