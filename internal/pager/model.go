// Package pager implements the scrollable, highlighted file view.
//
// The bubbletea program is the terminal: a tea.WindowSizeMsg reports the frame
// size, View draws one frame and each tea.KeyMsg is the next key event. Every
// Update ends with the clamp step, so the scroll offset is always within
// [0, max(0, total-visible)] when View runs.
package pager

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/fp/internal/document"
	"github.com/zjrosen/fp/internal/keys"
	"github.com/zjrosen/fp/internal/log"
)

// Options configures a pager session.
type Options struct {
	Name        string // Title shown in the top border
	FixedHeight int    // Content rows to show; 0 fills the terminal
	StartLine   int    // 1-based line placed at the top initially
	TabWidth    int    // Columns per tab stop
	Scrollbar   bool   // Draw the scrollbar in the right border
}

// Model is the pager component state.
type Model struct {
	doc       document.Document
	name      string
	state     State
	keys      keys.KeyMap
	legend    string
	tabWidth  int
	scrollbar bool
}

// New creates a pager model for doc.
func New(doc document.Document, opts Options) Model {
	km := keys.Pager
	return Model{
		doc:       doc,
		name:      opts.Name,
		state:     NewState(opts.FixedHeight, opts.StartLine),
		keys:      km,
		legend:    km.Legend(),
		tabWidth:  max(opts.TabWidth, 1),
		scrollbar: opts.Scrollbar,
	}
}

// State returns a copy of the current viewport state.
func (m Model) State() State {
	return m.state
}

// Status returns the current status line text.
func (m Model) Status() string {
	return m.state.Status(m.doc.Len(), m.legend)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	total := m.doc.Len()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		log.Debug(log.CatUI, "Resized", "width", msg.Width, "height", msg.Height,
			"visible", m.state.VisibleLines())

	case tea.KeyMsg:
		action := m.actionFor(msg)
		if action == ActionNone {
			break
		}
		m.state.Apply(action, total)
		log.Debug(log.CatUI, "Key", "key", msg.String(), "action", action, "scroll", m.state.Scroll)
		if !m.state.Running {
			return m, tea.Quit
		}
	}

	m.state.Clamp(total)
	return m, nil
}

// actionFor maps a key press to a navigation action.
func (m Model) actionFor(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return ActionQuit
	case key.Matches(msg, m.keys.Down):
		return ActionLineDown
	case key.Matches(msg, m.keys.Up):
		return ActionLineUp
	case key.Matches(msg, m.keys.PageDown):
		return ActionPageDown
	case key.Matches(msg, m.keys.PageUp):
		return ActionPageUp
	case key.Matches(msg, m.keys.Top):
		return ActionTop
	case key.Matches(msg, m.keys.Bottom):
		return ActionBottom
	default:
		return ActionNone
	}
}
