// Package document loads a file into an immutable sequence of lines.
package document

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zjrosen/fp/internal/log"
)

// ErrEmpty is returned when a file has no lines to show.
var ErrEmpty = errors.New("file is empty")

// Document is an ordered, read-only sequence of lines without terminators.
type Document struct {
	lines []string
}

// New creates a Document from already split lines. The slice is copied.
func New(lines []string) Document {
	return Document{lines: append([]string(nil), lines...)}
}

// Parse splits text into lines. Lines end at "\n" with an optional
// preceding "\r"; a final terminator does not start a new line. A "\r"
// not followed by "\n" is content, including at the very end of text.
func Parse(text string) Document {
	if text == "" {
		return Document{}
	}
	terminated := strings.HasSuffix(text, "\n")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	crlfLines := lines
	if !terminated {
		crlfLines = lines[:len(lines)-1]
	}
	for i, line := range crlfLines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return Document{lines: lines}
}

// Load reads the file at path. It returns ErrEmpty for files without lines.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: viewing the user's file is the point
	if err != nil {
		return Document{}, fmt.Errorf("failed to read file: %s: %w", path, err)
	}

	doc := Parse(string(data))
	if doc.Len() == 0 {
		return Document{}, ErrEmpty
	}

	log.Info(log.CatDoc, "Loaded document", "path", path, "lines", doc.Len(), "bytes", len(data))
	return doc, nil
}

// Len returns the number of lines.
func (d Document) Len() int {
	return len(d.lines)
}

// Line returns the line at index i (0-based).
func (d Document) Line(i int) string {
	return d.lines[i]
}

// Slice returns lines [start, start+n), clipped to the document bounds.
func (d Document) Slice(start, n int) []string {
	if start < 0 {
		start = 0
	}
	if start >= len(d.lines) || n <= 0 {
		return nil
	}
	end := min(start+n, len(d.lines))
	return d.lines[start:end:end]
}
