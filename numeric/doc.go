// Package numeric provides a bounded integer entry field.
//
// Input is the state machine that reconciles what the user is typing with
// the committed value. Model binds an Input to a textfield.Model so it can
// be used as a Bubble Tea component.
//
// Live edits commit silently. The change listener fires with the finalized
// value at commit points (focus lost, enter, escape) and whenever stepping,
// the wheel, or a bound change moves the value.
package numeric
