package numeric

import (
	"math"

	"github.com/iw2rmb/numfield/textfield"
)

// WheelAccelerate multiplies the wheel step while ctrl is held.
const WheelAccelerate = 6

// Notify selects whether SetNumber reports to the change listener.
type Notify uint8

const (
	// NotifyNone commits silently. Live typing uses it.
	NotifyNone Notify = iota
	// NotifyListener reports the new value to the change listener.
	NotifyListener
)

// Surface is the editable text an Input reconciles. *buffer.Line satisfies it.
type Surface interface {
	Text() string
	SetText(s string)
}

// Input is the numeric entry state machine.
//
// current always lies in [min, max]. While needsTextReset is false the
// surface shows the canonical decimal form of current; otherwise the surface
// holds provisional text that the next commit point overwrites.
//
// Input implements textfield.Handler. It is not safe for concurrent use; all
// calls are expected on the UI goroutine.
type Input struct {
	surface Surface

	min     int64
	max     int64
	current int64

	needsTextReset bool

	onChange func(int64)
}

var _ textfield.Handler = (*Input)(nil)

// NewInput binds an Input to surface, resets the text to "0" and opens the
// bounds to the whole int64 range.
func NewInput(surface Surface) *Input {
	in := newInput()
	in.bind(surface)
	return in
}

func newInput() *Input {
	return &Input{
		min: math.MinInt64,
		max: math.MaxInt64,
	}
}

func (in *Input) bind(surface Surface) {
	in.surface = surface
	in.needsTextReset = false
	surface.SetText(formatNumber(in.current))
}

// SetOnNumberChanged installs the change listener. Nil removes it.
//
// The listener may call back into the Input; every field is updated before
// it runs. Listeners that move the value on every call loop forever.
func (in *Input) SetOnNumberChanged(fn func(int64)) { in.onChange = fn }

func (in *Input) Number() int64 { return in.current }

func (in *Input) Min() int64 { return in.min }

func (in *Input) Max() int64 { return in.max }

// NeedsTextReset reports whether the surface shows provisional text.
func (in *Input) NeedsTextReset() bool { return in.needsTextReset }

func (in *Input) Text() string { return in.surface.Text() }

// SetNumber commits n clamped to the bounds and rewrites the text.
// Setting the current value again is a no-op: no rewrite, no notification.
func (in *Input) SetNumber(n int64, notify Notify) {
	if n == in.current {
		return
	}
	in.current = clamp(n, in.min, in.max)
	in.surface.SetText(formatNumber(in.current))
	if notify == NotifyListener {
		in.emit(in.current)
	}
}

// SetMin moves the lower bound, pulling the value up when it falls below.
func (in *Input) SetMin(v int64) {
	in.min = v
	if in.current < v {
		in.SetNumber(v, NotifyListener)
	}
}

// SetMax moves the upper bound, pulling the value down when it rises above.
func (in *Input) SetMax(v int64) {
	in.max = v
	if in.current > v {
		in.SetNumber(v, NotifyListener)
	}
}

func (in *Input) StepUp() {
	if in.current < in.max {
		in.SetNumber(in.current+1, NotifyListener)
	}
}

func (in *Input) StepDown() {
	if in.current > in.min {
		in.SetNumber(in.current-1, NotifyListener)
	}
}

// Finalize reconciles the text with the committed value and reports it.
// Focus loss, enter and escape all land here. Valid but non-canonical text
// such as "+4" or "007" is rewritten too.
func (in *Input) Finalize() {
	canonical := formatNumber(in.current)
	if in.needsTextReset || in.surface.Text() != canonical {
		in.surface.SetText(canonical)
		in.needsTextReset = false
	}
	in.emit(in.current)
}

// TextChanged reparses the surface after an edit. Valid text commits
// silently; invalid text is sanitized, and text that still does not parse is
// left in place until the next commit point.
func (in *Input) TextChanged() {
	text := in.surface.Text()
	if n, ok := parseNumber(text); ok {
		in.SetNumber(n, NotifyNone)
		return
	}

	cleaned := sanitize(text, in.min < 0)
	n, ok := parseNumber(cleaned)
	if !ok {
		in.needsTextReset = true
		return
	}
	in.needsTextReset = false

	in.surface.SetText(cleaned)
	in.SetNumber(n, NotifyNone)
}

// Wheel steps by the sign of the delta, six at a time with ctrl held.
// Wheel down lowers the value. The event is always consumed.
func (in *Input) Wheel(ev *textfield.WheelEvent) {
	if ev == nil {
		return
	}
	ev.Consume()

	step := sign(ev.DeltaY)
	if step == 0 {
		return
	}
	if ev.Modifiers == textfield.ModCtrl {
		step *= WheelAccelerate
	}
	in.SetNumber(subSaturating(in.current, step), NotifyListener)
}

func (in *Input) FocusLost()     { in.Finalize() }
func (in *Input) AcceptPressed() { in.Finalize() }
func (in *Input) CancelPressed() { in.Finalize() }
func (in *Input) UpPressed()     { in.StepUp() }
func (in *Input) DownPressed()   { in.StepDown() }

func (in *Input) emit(v int64) {
	if in.onChange != nil {
		in.onChange(v)
	}
}
