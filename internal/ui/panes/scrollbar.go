package panes

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/fp/internal/ui/styles"
)

// Scrollbar characters
const (
	scrollbarThumbChar = "█" // Full block
	scrollbarTrackChar = "░" // Light shade
)

// ScrollbarConfig configures scrollbar rendering.
type ScrollbarConfig struct {
	// Dimensions
	TotalLines   int // Total lines in content
	VisibleLines int // Lines shown per page
	ScrollOffset int // Current scroll position (top line)
	Height       int // Rows available to draw the scrollbar in

	// Style configuration
	TrackChar string // Track character (default: "░")
	ThumbChar string // Thumb character (default: "█")
}

// TrackLength is the number of distinct scroll positions beyond the first page,
// max(TotalLines-VisibleLines, 0).
func (c ScrollbarConfig) TrackLength() int {
	return max(c.TotalLines-c.VisibleLines, 0)
}

// calculateThumbBounds returns the start row and height of the scroll thumb.
// Formula: thumbHeight = max(1, height * visibleLines / totalLines)
// Position: start = (height - thumbHeight) * scrollOffset / trackLength
func calculateThumbBounds(cfg ScrollbarConfig) (start, height int) {
	if cfg.TotalLines <= 0 || cfg.Height <= 0 || cfg.VisibleLines < 0 {
		return 0, 0
	}

	track := cfg.TrackLength()
	if track == 0 {
		// Content fits, thumb fills entire track
		return 0, cfg.Height
	}

	// Thumb height proportional to visible/total ratio, at least one row
	height = min(cfg.Height, max(1, cfg.Height*cfg.VisibleLines/cfg.TotalLines))

	scrollableRows := cfg.Height - height
	if scrollableRows <= 0 {
		return 0, height
	}

	offset := max(0, min(cfg.ScrollOffset, track))
	start = scrollableRows * offset / track

	return start, height
}

// RenderScrollbar renders the scrollbar as one styled cell per row.
// Returns nil when there is nothing to scroll (empty track) or no room to draw.
func RenderScrollbar(cfg ScrollbarConfig) []string {
	if cfg.Height <= 0 || cfg.TotalLines <= 0 || cfg.TrackLength() == 0 {
		return nil
	}

	thumbStart, thumbHeight := calculateThumbBounds(cfg)

	trackStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	thumbStyle := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)

	trackChar := cfg.TrackChar
	if trackChar == "" {
		trackChar = scrollbarTrackChar
	}
	thumbChar := cfg.ThumbChar
	if thumbChar == "" {
		thumbChar = scrollbarThumbChar
	}

	cells := make([]string, cfg.Height)
	for row := range cfg.Height {
		if row >= thumbStart && row < thumbStart+thumbHeight {
			cells[row] = thumbStyle.Render(thumbChar)
		} else {
			cells[row] = trackStyle.Render(trackChar)
		}
	}

	return cells
}
