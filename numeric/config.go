package numeric

import (
	"math"

	"github.com/iw2rmb/numfield/textfield"
)

// Config configures the numeric Model.
//
// Start from DefaultConfig: the zero value pins both bounds to 0.
type Config struct {
	// ID is copied into every ChangedMsg so hosts can tell fields apart.
	ID string

	// Inclusive bounds. Min must not exceed Max.
	Min int64
	Max int64

	// Value is the initial value. It is clamped and committed silently.
	Value int64

	// OnNumberChanged receives live-committed and finalized values.
	OnNumberChanged func(int64)

	// Blurred starts the field unfocused without passing a commit point.
	Blurred bool

	// Forwarded to textfield.Config.
	Prompt    string
	Width     int
	ReadOnly  bool
	KeyMap    textfield.KeyMap
	Style     textfield.Style
	Clipboard textfield.Clipboard
}

// DefaultConfig opens the bounds to the whole int64 range.
func DefaultConfig() Config {
	return Config{
		Min:    math.MinInt64,
		Max:    math.MaxInt64,
		KeyMap: textfield.DefaultKeyMap(),
		Style:  textfield.DefaultStyle(),
	}
}
