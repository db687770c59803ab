package textfield

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/numfield/buffer"
	"github.com/iw2rmb/numfield/internal/grapheme"
)

func (m Model) View() string {
	var sb strings.Builder
	if m.cfg.Prompt != "" {
		sb.WriteString(m.cfg.Style.Prompt.Render(m.cfg.Prompt))
	}
	sb.WriteString(m.renderText())
	return sb.String()
}

func (m Model) renderText() string {
	clusters := m.line.Clusters()
	avail := m.textWidth()

	if len(clusters) == 0 && m.cfg.Placeholder != "" {
		return m.renderPlaceholder(avail)
	}

	cursor := m.line.Cursor()
	sel, selOK := m.line.Selection()
	start, end := visibleWindow(clusters, cursor, m.offset, avail)

	var sb strings.Builder
	used := 0
	for i := start; i < end; i++ {
		sb.WriteString(m.styleFor(i, cursor, sel, selOK).Render(clusters[i]))
		used += cellWidth(clusters[i])
	}
	if m.focused && cursor == len(clusters) {
		sb.WriteString(m.cfg.Style.Cursor.Render(" "))
		used++
	}
	if avail > used {
		sb.WriteString(strings.Repeat(" ", avail-used))
	}
	return sb.String()
}

func (m Model) styleFor(i, cursor int, sel buffer.Range, selOK bool) lipgloss.Style {
	if m.focused && i == cursor {
		return m.cfg.Style.Cursor
	}
	if selOK && i >= sel.Start && i < sel.End {
		return m.cfg.Style.Selection
	}
	return m.cfg.Style.Text
}

func (m Model) renderPlaceholder(avail int) string {
	clusters := grapheme.Split(m.cfg.Placeholder)
	_, end := visibleWindow(clusters, 0, 0, avail)

	var sb strings.Builder
	used := 0
	for i := 0; i < end; i++ {
		st := m.cfg.Style.Placeholder
		if m.focused && i == 0 {
			st = m.cfg.Style.Cursor
		}
		sb.WriteString(st.Render(clusters[i]))
		used += cellWidth(clusters[i])
	}
	if avail > used {
		sb.WriteString(strings.Repeat(" ", avail-used))
	}
	return sb.String()
}

func (m Model) promptWidth() int {
	return lipgloss.Width(m.cfg.Prompt)
}

// textWidth is the number of cells available for text, or 0 when unclipped.
func (m Model) textWidth() int {
	if m.cfg.Width <= 0 {
		return 0
	}
	w := m.cfg.Width - m.promptWidth()
	if w < 1 {
		w = 1
	}
	return w
}

func (m Model) renderedWidth() int {
	w := m.promptWidth()
	for _, c := range m.line.Clusters() {
		w += cellWidth(c)
	}
	return w + 1
}

func cellWidth(cluster string) int {
	if w := grapheme.Width(cluster); w > 0 {
		return w
	}
	return 1
}

// visibleWindow returns the cluster range [start, end) that fits in avail
// cells, starting at offset where possible and always keeping the cursor
// cell visible. avail <= 0 means everything is visible.
func visibleWindow(clusters []string, cursor, offset, avail int) (start, end int) {
	n := len(clusters)
	if avail <= 0 {
		return 0, n
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor > n {
		cursor = n
	}

	start = offset
	if start > cursor {
		start = cursor
	}
	if start < 0 {
		start = 0
	}

	cursorCell := 1
	if cursor < n {
		cursorCell = cellWidth(clusters[cursor])
	}
	span := 0
	for i := start; i < cursor; i++ {
		span += cellWidth(clusters[i])
	}
	for start < cursor && span+cursorCell > avail {
		span -= cellWidth(clusters[start])
		start++
	}

	used := 0
	end = start
	for end < n {
		w := cellWidth(clusters[end])
		if used+w > avail {
			break
		}
		used += w
		end++
	}
	return start, end
}
