package pager

import (
	"github.com/zjrosen/fp/internal/highlight"
	"github.com/zjrosen/fp/internal/ui/panes"
	"github.com/zjrosen/fp/internal/ui/styles"
)

// View implements tea.Model. It draws the bordered, highlighted window with
// the status line in the bottom border and the scrollbar in the right one.
func (m Model) View() string {
	if m.state.Width == 0 || m.state.Height == 0 {
		return ""
	}

	total := m.doc.Len()
	visible := m.state.VisibleLines()

	lines := m.doc.Slice(m.state.Scroll, visible)
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = highlight.Highlight(line).Render(m.tabWidth)
	}

	var edge []string
	if m.scrollbar {
		edge = panes.RenderScrollbar(panes.ScrollbarConfig{
			TotalLines:   total,
			VisibleLines: visible,
			ScrollOffset: m.state.Scroll,
			Height:       AvailableHeight(m.state.Height),
		})
	}

	return panes.BorderedPane(panes.BorderConfig{
		Lines:       rendered,
		Width:       m.state.Width,
		Height:      m.state.Height,
		Title:       m.name,
		Footer:      m.Status(),
		RightEdge:   edge,
		TitleColor:  styles.TitleColor,
		FooterColor: styles.StatusColor,
	})
}
