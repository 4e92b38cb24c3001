package highlight

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var keywords = wordSet(
	"fn", "let", "mut", "const", "struct", "enum", "impl", "trait", "pub", "use",
	"if", "else", "match", "for", "while", "loop", "return", "break", "continue",
	"true", "false", "None", "Some", "Ok", "Err",
)

var types = wordSet(
	"String", "Vec", "Option", "Result", "i32", "u64", "f64", "bool", "char",
	"usize", "PathBuf",
)

var commentPrefixes = []string{"//", "/*", "#"}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsKeyword reports whether word is a control-flow, declaration or literal keyword.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// IsType reports whether word is a built-in type name.
func IsType(word string) bool {
	_, ok := types[word]
	return ok
}

// IsNumber reports whether the whole word is a decimal floating-point number.
// Go literal extensions (digit separators, hex mantissas) are not numbers here,
// while out-of-range values such as 1e999 are (they parse as infinity).
func IsNumber(word string) bool {
	if strings.ContainsRune(word, '_') || hasHexPrefix(word) {
		return false
	}
	_, err := strconv.ParseFloat(word, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

func hasHexPrefix(word string) bool {
	return len(word) >= 2 && word[0] == '0' && (word[1] == 'x' || word[1] == 'X')
}

// IsCommentStart reports whether s begins a comment that runs to end of line.
func IsCommentStart(s string) bool {
	for _, p := range commentPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// Classify returns the Kind of a scanned word.
// Precedence: keyword, type, number, plain.
func Classify(word string) Kind {
	switch {
	case IsKeyword(word):
		return KindKeyword
	case IsType(word):
		return KindType
	case IsNumber(word):
		return KindNumber
	default:
		return KindPlain
	}
}

// isAlphabetic reports whether r has the Unicode Alphabetic property:
// letters, letter numbers and combining marks such as Devanagari vowel signs.
func isAlphabetic(r rune) bool {
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_Alphabetic)
}

// isWordStart reports whether r can begin a word.
func isWordStart(r rune) bool {
	return isAlphabetic(r) || r == '_' || (r >= '0' && r <= '9')
}

// isWordPart reports whether r can continue a word.
func isWordPart(r rune) bool {
	return isAlphabetic(r) || unicode.IsNumber(r) || r == '_'
}
