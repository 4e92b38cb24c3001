// Package panes contains bordered pane UI components.
package panes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/fp/internal/ui/styles"
)

// Border characters (rounded)
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// BorderConfig configures the appearance of a bordered panel.
type BorderConfig struct {
	// Required fields
	Lines  []string // Content rows; each is clipped to the inner width, never wrapped
	Width  int      // Total width including borders
	Height int      // Total height including borders

	// Titles embedded in the border rules (optional)
	Title  string // Top border, left-aligned
	Footer string // Bottom border, left-aligned

	// RightEdge replaces the right border character of content row i with
	// RightEdge[i] when present. Used to draw a scrollbar in the border.
	RightEdge []string

	// Styling (nil falls back to defaults)
	BorderColor lipgloss.TerminalColor
	TitleColor  lipgloss.TerminalColor
	FooterColor lipgloss.TerminalColor
}

// BorderedPane renders content rows within a rounded border.
//
// Layout (Height rows total):
//
//	╭─ Title ──────────╮
//	│content           │ x Height-2
//	╰─ Footer ─────────╯
func BorderedPane(cfg BorderConfig) string {
	borderColor := orDefault(cfg.BorderColor, styles.BorderDefaultColor)
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(orDefault(cfg.TitleColor, borderColor))
	footerStyle := lipgloss.NewStyle().Foreground(orDefault(cfg.FooterColor, borderColor))

	innerWidth := max(cfg.Width-2, 1)
	contentHeight := max(cfg.Height-2, 0)

	rows := make([]string, 0, contentHeight+2)
	rows = append(rows, buildRule(borderTopLeft, borderTopRight, cfg.Title, innerWidth, borderStyle, titleStyle))

	left := borderStyle.Render(borderVertical)
	right := borderStyle.Render(borderVertical)
	for i := range contentHeight {
		var line string
		if i < len(cfg.Lines) {
			line = ansi.Truncate(cfg.Lines[i], innerWidth, "")
		}

		// Pad line to innerWidth to ensure right border aligns
		if w := ansi.StringWidth(line); w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}

		edge := right
		if i < len(cfg.RightEdge) && cfg.RightEdge[i] != "" {
			edge = cfg.RightEdge[i]
		}
		rows = append(rows, left+line+edge)
	}

	rows = append(rows, buildRule(borderBottomLeft, borderBottomRight, cfg.Footer, innerWidth, borderStyle, footerStyle))

	return strings.Join(rows, "\n")
}

func orDefault(c, fallback lipgloss.TerminalColor) lipgloss.TerminalColor {
	if c == nil {
		return fallback
	}
	return c
}

// buildRule creates a top or bottom border with an embedded title.
// borderStyle is used for border characters, titleStyle for the title text.
func buildRule(leftCorner, rightCorner, title string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	// Format: ╭─ Title ──────╮
	// Minimum: ╭─╮ (3 chars for just borders)

	if innerWidth < 1 {
		return borderStyle.Render(leftCorner + rightCorner)
	}

	// We need at least 4 chars for the title frame: "─ " + " ─"
	if title == "" || innerWidth < 5 {
		return borderStyle.Render(leftCorner + strings.Repeat(borderHorizontal, innerWidth) + rightCorner)
	}

	displayTitle := styles.TruncateString(title, innerWidth-4)

	// Inner: "─ " (2) + title + " " (1) + dashes = innerWidth
	remainingWidth := max(innerWidth-3-lipgloss.Width(displayTitle), 0)

	return borderStyle.Render(leftCorner+borderHorizontal+" ") +
		titleStyle.Render(displayTitle) +
		borderStyle.Render(" "+strings.Repeat(borderHorizontal, remainingWidth)+rightCorner)
}
