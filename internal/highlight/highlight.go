// Package highlight applies a naive, line-local syntax highlighter.
//
// Each line is classified on its own: a comment or string that spans several
// lines is not tracked. The result is a sequence of spans that covers the
// input exactly, so joining the span texts reproduces the line byte for byte.
package highlight

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/fp/internal/ui/styles"
)

// Kind identifies how a span was classified.
type Kind int

const (
	KindPlain Kind = iota
	KindWhitespace
	KindComment
	KindKeyword
	KindType
	KindNumber
	KindPunct
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindWhitespace:
		return "whitespace"
	case KindComment:
		return "comment"
	case KindKeyword:
		return "keyword"
	case KindType:
		return "type"
	case KindNumber:
		return "number"
	case KindPunct:
		return "punct"
	default:
		return "unknown"
	}
}

// Style returns the lipgloss style used for spans of this kind.
func (k Kind) Style() lipgloss.Style {
	switch k {
	case KindWhitespace:
		return styles.WhitespaceStyle
	case KindComment:
		return styles.CommentStyle
	case KindKeyword:
		return styles.KeywordStyle
	case KindType:
		return styles.TypeStyle
	case KindNumber:
		return styles.NumberStyle
	default:
		return styles.PlainStyle
	}
}

// Span is a run of text with a single style.
type Span struct {
	Text  string
	Kind  Kind
	Style lipgloss.Style
}

// Line is an ordered sequence of spans covering one line of text.
type Line []Span

func newSpan(text string, kind Kind) Span {
	return Span{Text: text, Kind: kind, Style: kind.Style()}
}

// Highlight splits line into styled spans. It never fails; an empty line
// yields an empty Line.
func Highlight(line string) Line {
	var spans Line

	for i := 0; i < len(line); {
		rest := line[i:]

		if IsCommentStart(rest) {
			spans = append(spans, newSpan(rest, KindComment))
			break
		}

		r, size := utf8.DecodeRuneInString(rest)

		switch {
		case unicode.IsSpace(r):
			spans = append(spans, newSpan(rest[:size], KindWhitespace))
			i += size

		case isWordStart(r):
			end := size
			for end < len(rest) {
				next, n := utf8.DecodeRuneInString(rest[end:])
				if !isWordPart(next) {
					break
				}
				end += n
			}
			word := rest[:end]
			spans = append(spans, newSpan(word, Classify(word)))
			i += end

		default:
			spans = append(spans, newSpan(rest[:size], KindPunct))
			i += size
		}
	}

	return spans
}

// Text joins the span texts back into the original line.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Render draws the line with ANSI styling. Tabs are expanded to the next
// multiple of tabWidth display columns and control characters are shown in
// caret notation so file content can never move the terminal cursor.
func (l Line) Render(tabWidth int) string {
	var b strings.Builder
	col := 0
	for _, s := range l {
		text := displayText(s.Text, &col, tabWidth)
		if s.Kind == KindWhitespace {
			b.WriteString(text)
			continue
		}
		b.WriteString(s.Style.Render(text))
	}
	return b.String()
}

// displayText converts s into printable text starting at display column *col
// and advances *col past it.
func displayText(s string, col *int, tabWidth int) string {
	if tabWidth < 1 {
		tabWidth = 1
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\t':
			n := tabWidth - *col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			*col += n
		case r < 0x20:
			b.WriteByte('^')
			b.WriteRune(r + '@')
			*col += 2
		case r == 0x7f:
			b.WriteString("^?")
			*col += 2
		case unicode.IsControl(r):
			b.WriteRune(utf8.RuneError)
			*col += runewidth.RuneWidth(utf8.RuneError)
		default:
			b.WriteRune(r)
			*col += runewidth.RuneWidth(r)
		}
	}
	return b.String()
}
