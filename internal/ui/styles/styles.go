// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Syntax highlighting colors (Dracula)
	SyntaxForegroundColor = lipgloss.Color("#F8F8F2") // foreground
	SyntaxCommentColor    = lipgloss.Color("#6272A4") // comment
	SyntaxKeywordColor    = lipgloss.Color("#BD93F9") // purple
	SyntaxTypeColor       = lipgloss.Color("#8BE9FD") // cyan
	SyntaxNumberColor     = lipgloss.Color("#FFB86C") // orange

	// Semantic color names - Text hierarchy
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#BBBBBB"} // Scrollbar thumb
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Scrollbar track

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}

	// Pager title and status line
	TitleColor  = lipgloss.AdaptiveColor{Light: "#282A36", Dark: "#F8F8F2"}
	StatusColor = lipgloss.AdaptiveColor{Light: "#B7950B", Dark: "#F1FA8C"}

	// Span styles used by the highlighter.
	PlainStyle = lipgloss.NewStyle().Foreground(SyntaxForegroundColor)

	CommentStyle = lipgloss.NewStyle().
			Foreground(SyntaxCommentColor).
			Italic(true)

	KeywordStyle = lipgloss.NewStyle().
			Foreground(SyntaxKeywordColor).
			Bold(true)

	TypeStyle = lipgloss.NewStyle().
			Foreground(SyntaxTypeColor)

	NumberStyle = lipgloss.NewStyle().
			Foreground(SyntaxNumberColor)

	// WhitespaceStyle is intentionally empty: whitespace is emitted unstyled.
	WhitespaceStyle = lipgloss.NewStyle()
)
