package textfield

// Config configures the field Model.
type Config struct {
	// Initial text for the internal line.
	Text string

	// Prompt is rendered before the text and is not editable.
	Prompt string
	// Placeholder is rendered dimmed while the text is empty.
	Placeholder string

	// Width is the total rendered width in cells, prompt included.
	// Zero renders the whole line.
	Width int

	// ReadOnly blocks edits. Navigation and Handler events still work.
	ReadOnly bool

	// Blurred starts the field without focus. No FocusLost is reported.
	Blurred bool

	KeyMap KeyMap
	Style  Style

	Clipboard Clipboard
	Handler   Handler

	// Accept filters typed and pasted runes. Nil accepts everything.
	Accept func(r rune) bool
}
