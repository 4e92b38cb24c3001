package pager

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/fp/internal/document"
	"github.com/zjrosen/fp/internal/log"
)

// Run shows doc full-screen until the user quits. The terminal is put in raw
// mode on the alternate screen for the duration of the call and restored on
// every exit path. Terminal errors are returned without retry.
func Run(doc document.Document, opts Options, programOpts ...tea.ProgramOption) error {
	if doc.Len() == 0 {
		return document.ErrEmpty
	}

	if opts.StartLine > doc.Len() {
		log.Warn(log.CatUI, "Start line beyond end of file", "startLine", opts.StartLine, "lines", doc.Len())
	}

	m := New(doc, opts)
	log.Info(log.CatUI, "Starting pager", "name", opts.Name, "lines", doc.Len(),
		"fixedHeight", opts.FixedHeight, "startLine", opts.StartLine)

	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)...)

	final, err := p.Run()
	if err != nil {
		log.ErrorErr(log.CatUI, "Pager terminated", err)
		return fmt.Errorf("running pager: %w", err)
	}

	if fm, ok := final.(Model); ok {
		log.Info(log.CatUI, "Pager closed", "scroll", fm.State().Scroll)
	}
	return nil
}
