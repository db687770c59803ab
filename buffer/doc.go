// Package buffer implements the pure, grapheme-accurate model of a single
// line of editable text.
//
// Columns are 0-based grapheme cluster offsets.
// Ranges are half-open selections: [Start, End).
package buffer
