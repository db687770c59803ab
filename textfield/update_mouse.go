package textfield

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/numfield/buffer"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if ev, ok := WheelEventFromMouse(msg); ok {
		if m.mouseInBounds(msg.X, msg.Y) {
			m.HandleWheel(&ev)
		}
		return m, nil
	}

	if m.line == nil {
		return m, nil
	}

	// Only left button interactions move the cursor or select.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.focused {
			return m, nil
		}
		if !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}

		col := m.screenToCol(msg.X)
		if msg.Shift {
			anchor := m.line.Cursor()
			if raw, ok := m.line.SelectionRaw(); ok {
				anchor = raw.Start
			}
			m.mouseAnchor = anchor
			m.line.SetCursor(col)
			m.line.SetSelection(buffer.Range{Start: anchor, End: col})
		} else {
			m.mouseAnchor = col
			m.line.SetCursor(col)
			m.line.ClearSelection()
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
		col := m.screenToCol(msg.X)
		m.line.SetCursor(col)
		m.line.SetSelection(buffer.Range{Start: m.mouseAnchor, End: col})

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, nil
}

func (m Model) mouseInBounds(x, y int) bool {
	if y != m.y || x < m.x {
		return false
	}
	w := m.cfg.Width
	if w <= 0 {
		w = m.renderedWidth()
	}
	return x < m.x+w
}

// screenToCol maps a screen x to the nearest cluster boundary.
// Clicks on the prompt land on the first visible column.
func (m Model) screenToCol(x int) int {
	clusters := m.line.Clusters()
	start, end := visibleWindow(clusters, m.line.Cursor(), m.offset, m.textWidth())
	cell := x - m.x - m.promptWidth()
	if cell <= 0 {
		return start
	}
	acc := 0
	for i := start; i < end; i++ {
		w := cellWidth(clusters[i])
		if cell < acc+w {
			// Right half of a wide cluster lands after it.
			if w > 1 && cell-acc >= w/2 {
				return i + 1
			}
			return i
		}
		acc += w
	}
	return end
}
