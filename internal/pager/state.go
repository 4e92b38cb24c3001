package pager

import "fmt"

// reservedRows are the terminal rows not available to content: the top border
// (carrying the title) and the bottom border (carrying the status line).
const reservedRows = 2

// Action is a navigation request decoded from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionLineDown
	ActionLineUp
	ActionPageDown
	ActionPageUp
	ActionTop
	ActionBottom
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionQuit:
		return "quit"
	case ActionLineDown:
		return "line-down"
	case ActionLineUp:
		return "line-up"
	case ActionPageDown:
		return "page-down"
	case ActionPageUp:
		return "page-up"
	case ActionTop:
		return "top"
	case ActionBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// State is the viewport state of the pager.
type State struct {
	Scroll      int  // 0-based index of the first visible line
	FixedHeight int  // Requested content rows; 0 means use the available height
	Width       int  // Current terminal width
	Height      int  // Current terminal height
	Running     bool // False once the user quits
}

// NewState returns the initial state. startLine is 1-based; values below 1
// behave as 1. Negative fixed heights are treated as unset.
func NewState(fixedHeight, startLine int) State {
	return State{
		Scroll:      max(startLine, 1) - 1,
		FixedHeight: max(fixedHeight, 0),
		Running:     true,
	}
}

// AvailableHeight is the number of content rows a terminal of the given height offers.
func AvailableHeight(termHeight int) int {
	return max(termHeight-reservedRows, 0)
}

// VisibleLines is min(fixedHeight or available, available).
func VisibleLines(fixedHeight, termHeight int) int {
	available := AvailableHeight(termHeight)
	if fixedHeight > 0 {
		return min(fixedHeight, available)
	}
	return available
}

// Clamp bounds scroll to [0, max(0, total-visible)].
func Clamp(scroll, total, visible int) int {
	if total <= visible {
		return 0
	}
	return max(0, min(scroll, total-visible))
}

// VisibleLines returns the number of content lines for the current terminal size.
// Key handling and rendering both use this value.
func (s State) VisibleLines() int {
	return VisibleLines(s.FixedHeight, s.Height)
}

// Clamp applies the per-frame clamp for a document of total lines.
func (s *State) Clamp(total int) {
	s.Scroll = Clamp(s.Scroll, total, s.VisibleLines())
}

// Apply updates the state for a navigation action.
func (s *State) Apply(a Action, total int) {
	visible := s.VisibleLines()

	switch a {
	case ActionQuit:
		s.Running = false
	case ActionLineDown:
		if total > 0 {
			s.Scroll = min(s.Scroll+1, total-1)
		}
	case ActionLineUp:
		s.Scroll = max(s.Scroll-1, 0)
	case ActionPageDown:
		if total > 0 {
			s.Scroll = min(s.Scroll+visible, total-1)
		}
	case ActionPageUp:
		s.Scroll = max(s.Scroll-visible, 0)
	case ActionTop:
		s.Scroll = 0
	case ActionBottom:
		s.Scroll = max(total-visible, 0)
	}
}

// LastVisible returns the 1-based number of the last line on screen.
func (s State) LastVisible(total int) int {
	return min(s.Scroll+s.VisibleLines(), total)
}

// Status formats the status line: "Line 50-59 of 100 | legend".
func (s State) Status(total int, legend string) string {
	return fmt.Sprintf("Line %d-%d of %d | %s", s.Scroll+1, s.LastVisible(total), total, legend)
}
