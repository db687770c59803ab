// Package textfield provides a single-line Bubble Tea text field backed by
// the buffer package.
//
// The field owns cursor, selection, key dispatch and rendering. Hosts that
// need to react to edits, focus loss, accept/cancel, up/down and mouse wheel
// input register a Handler in Config.
package textfield
