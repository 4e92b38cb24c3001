package pager

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/fp/internal/document"
	"github.com/zjrosen/fp/internal/log"
)

func init() {
	// Force ANSI color output in tests (lipgloss disables colors when no TTY)
	lipgloss.SetColorProfile(termenv.ANSI256)
}

// numberedDoc builds a document whose lines are "line 1" ... "line n".
func numberedDoc(n int) document.Document {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return document.New(lines)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// send applies messages in order and returns the resulting model and last command.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func viewRows(m Model) []string {
	return strings.Split(ansi.Strip(m.View()), "\n")
}

func TestModel_EndToEndScenario(t *testing.T) {
	m := New(numberedDoc(100), Options{Name: "big.txt", FixedHeight: 10, StartLine: 50, TabWidth: 4})
	require.Equal(t, 49, m.State().Scroll, "start line 50 is scroll 49")

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Equal(t, 49, m.State().Scroll)
	require.True(t, strings.HasPrefix(m.Status(), "Line 50-59 of 100 | "))

	m, _ = send(t, m, runeKey('G'))
	require.Equal(t, 90, m.State().Scroll)
	require.True(t, strings.HasPrefix(m.Status(), "Line 91-100 of 100 | "))

	m, _ = send(t, m, runeKey('g'))
	require.Equal(t, 0, m.State().Scroll)
}

func TestModel_KeyBindings(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
		want int
	}{
		{"j", runeKey('j'), 21},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, 21},
		{"k", runeKey('k'), 19},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, 19},
		{"pgdown", tea.KeyMsg{Type: tea.KeyPgDown}, 30},
		{"pgup", tea.KeyMsg{Type: tea.KeyPgUp}, 10},
		{"g", runeKey('g'), 0},
		{"G", runeKey('G'), 90},
		{"unbound rune", runeKey('x'), 20},
		{"unbound key", tea.KeyMsg{Type: tea.KeyCtrlC}, 20},
		{"non-key message", tea.FocusMsg{}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(numberedDoc(100), Options{FixedHeight: 10, StartLine: 21})
			m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 40}, tt.msg)
			require.Equal(t, tt.want, m.State().Scroll)
			require.True(t, m.State().Running)
		})
	}
}

func TestModel_QuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyEsc}} {
		t.Run(msg.String(), func(t *testing.T) {
			m := New(numberedDoc(5), Options{})
			m, cmd := send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24}, msg)

			require.False(t, m.State().Running)
			require.NotNil(t, cmd)
			require.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestModel_ResizeReclamps(t *testing.T) {
	m := New(numberedDoc(100), Options{StartLine: 95})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 22})
	require.Equal(t, 80, m.State().Scroll, "100 lines, 20 visible")

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 52})
	require.Equal(t, 50, m.State().Scroll, "taller terminal pulls the window up")

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 200})
	require.Equal(t, 0, m.State().Scroll, "whole file fits")
}

func TestModel_PageDownThenRenderClamp(t *testing.T) {
	m := New(numberedDoc(25), Options{FixedHeight: 10})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	require.Equal(t, 10, m.State().Scroll)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	require.Equal(t, 15, m.State().Scroll, "clamped to total-visible after the step")
	require.True(t, strings.HasPrefix(m.Status(), "Line 16-25 of 25 | "))
}

func TestModel_ViewBeforeSizeIsEmpty(t *testing.T) {
	m := New(numberedDoc(3), Options{})
	require.Equal(t, "", m.View())
}

func TestModel_ViewFrame(t *testing.T) {
	m := New(numberedDoc(100), Options{Name: "big.txt", FixedHeight: 5, StartLine: 10, TabWidth: 4})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 12})

	rows := viewRows(m)
	require.Len(t, rows, 12, "frame fills the terminal height")
	require.True(t, strings.HasPrefix(rows[0], "╭─ big.txt "), "title in top border: %q", rows[0])
	require.True(t, strings.HasPrefix(rows[11], "╰─ Line 10-14 of 100 | "), "status in bottom border: %q", rows[11])

	for i := 0; i < 5; i++ {
		require.True(t, strings.HasPrefix(rows[1+i], fmt.Sprintf("│line %d ", 10+i)), "row %d: %q", i, rows[1+i])
	}
	for _, row := range rows[6:11] {
		require.Equal(t, "│", row[:len("│")])
		require.Empty(t, strings.TrimSpace(strings.Trim(row, "│░█")), "rows past the fixed height are blank")
	}
	for i, row := range rows {
		require.Equal(t, 120, ansi.StringWidth(row), "row %d width", i)
	}
}

func TestModel_ViewScrollbar(t *testing.T) {
	m := New(numberedDoc(100), Options{Scrollbar: true})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 12}, runeKey('G'))

	rows := viewRows(m)
	require.True(t, strings.HasSuffix(rows[10], "█"), "thumb at the bottom when scrolled to the end")
	require.True(t, strings.HasSuffix(rows[1], "░"), "track at the top")

	fits := New(numberedDoc(3), Options{Scrollbar: true})
	fits, _ = send(t, fits, tea.WindowSizeMsg{Width: 40, Height: 12})
	for _, row := range viewRows(fits)[1:11] {
		require.True(t, strings.HasSuffix(row, "│"), "no scrollbar when the file fits")
	}
}

func TestModel_ViewHighlightsAndClips(t *testing.T) {
	doc := document.New([]string{"fn main() { // " + strings.Repeat("x", 200), "", "\tlet y = 1;"})
	m := New(doc, Options{Name: "main.rs", TabWidth: 4})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 8})

	view := m.View()
	require.Contains(t, view, "\x1b[", "content is styled")

	rows := strings.Split(ansi.Strip(view), "\n")
	require.Len(t, rows, 8, "long lines are clipped, not wrapped")
	require.Equal(t, "│"+strings.Repeat(" ", 28)+"│", rows[2], "empty line renders a blank row")
	require.True(t, strings.HasPrefix(rows[3], "│    let y = 1;"), "tab expanded: %q", rows[3])
}

// ===========================================================================
// teatest: scripted key sequence against a fixed-size terminal
// ===========================================================================

func waitForStatus(t *testing.T, tm *teatest.TestModel, status string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte(status))
	}, teatest.WithDuration(3*time.Second), teatest.WithCheckInterval(10*time.Millisecond))
}

func TestTeatest_ScrollScenario(t *testing.T) {
	m := New(numberedDoc(100), Options{Name: "big.txt", FixedHeight: 10, StartLine: 50, TabWidth: 4, Scrollbar: true})
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))

	waitForStatus(t, tm, "Line 50-59 of 100 | ")

	tm.Send(runeKey('G'))
	waitForStatus(t, tm, "Line 91-100 of 100 | ")

	tm.Send(runeKey('g'))
	waitForStatus(t, tm, "Line 1-10 of 100 | ")

	tm.Send(runeKey('q'))

	final, ok := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(Model)
	require.True(t, ok)
	require.Equal(t, 0, final.State().Scroll)
	require.False(t, final.State().Running)
}

func TestTeatest_EscapeQuits(t *testing.T) {
	tm := teatest.NewTestModel(t, New(numberedDoc(10), Options{Name: "small.txt"}),
		teatest.WithInitialTermSize(80, 24))

	waitForStatus(t, tm, "Line 1-10 of 10 | ")
	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})

	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}

// ===========================================================================
// Run
// ===========================================================================

func TestRun_EmptyDocument(t *testing.T) {
	err := Run(document.New(nil), Options{})
	require.ErrorIs(t, err, document.ErrEmpty)
}

func TestRun_QuitsOnInput(t *testing.T) {
	var out bytes.Buffer
	err := Run(numberedDoc(20), Options{Name: "piped.txt"},
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(&out),
	)
	require.NoError(t, err)
}

func TestRun_WarnsWhenStartLineIsPastTheEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := log.InitWithTeaLog(path, "fp-test")
	require.NoError(t, err)
	t.Cleanup(cleanup)

	var out bytes.Buffer
	err = Run(numberedDoc(20), Options{Name: "short.txt", StartLine: 500},
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(&out),
	)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[WARN] [ui] Start line beyond end of file startLine=500 lines=20")
}
