package textfield

import tea "github.com/charmbracelet/bubbletea"

// Handler receives the field's semantic events.
//
// TextChanged fires only for effective local edits; SetText never fires it.
type Handler interface {
	TextChanged()
	FocusLost()
	AcceptPressed()
	CancelPressed()
	UpPressed()
	DownPressed()
	Wheel(ev *WheelEvent)
}

// NopHandler ignores every event. Embed it to implement a subset of Handler.
type NopHandler struct{}

func (NopHandler) TextChanged()      {}
func (NopHandler) FocusLost()        {}
func (NopHandler) AcceptPressed()    {}
func (NopHandler) CancelPressed()    {}
func (NopHandler) UpPressed()        {}
func (NopHandler) DownPressed()      {}
func (NopHandler) Wheel(*WheelEvent) {}

// Modifiers is the set of modifier keys held during an input event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
)

// WheelEvent is a vertical mouse wheel step over the field.
//
// DeltaY is negative for wheel up and positive for wheel down.
type WheelEvent struct {
	DeltaY    int
	Modifiers Modifiers

	consumed bool
}

// Consume marks the event handled so hosts stop propagating it.
func (e *WheelEvent) Consume() { e.consumed = true }

func (e *WheelEvent) Consumed() bool { return e.consumed }

// WheelEventFromMouse converts a Bubble Tea wheel press into a WheelEvent.
// ok is false for anything but a vertical wheel press.
func WheelEventFromMouse(msg tea.MouseMsg) (ev WheelEvent, ok bool) {
	if msg.Action != tea.MouseActionPress {
		return WheelEvent{}, false
	}
	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonWheelUp:
		ev.DeltaY = -1
	case tea.MouseButtonWheelDown:
		ev.DeltaY = 1
	default:
		return WheelEvent{}, false
	}
	if msg.Shift {
		ev.Modifiers |= ModShift
	}
	if msg.Alt {
		ev.Modifiers |= ModAlt
	}
	if msg.Ctrl {
		ev.Modifiers |= ModCtrl
	}
	return ev, true
}
