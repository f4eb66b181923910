package quiz

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// OptionMarker is the literal prefix of an option line.
const OptionMarker = "( )"

// Kind is the classification of a single non-empty line.
type Kind int

const (
	// KindOther is text that is neither a prompt nor an option.
	KindOther Kind = iota
	// KindPrompt starts a new question.
	KindPrompt
	// KindOption is an answer choice for the current question.
	KindOption
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindPrompt:
		return "prompt"
	case KindOption:
		return "option"
	default:
		return "other"
	}
}

// Classify returns the kind of a trimmed, non-empty line. Categories are
// checked in fixed priority: prompt, option, other.
func Classify(text string) Kind {
	switch {
	case isPrompt(text):
		return KindPrompt
	case strings.HasPrefix(text, OptionMarker):
		return KindOption
	default:
		return KindOther
	}
}

// isPrompt reports whether text starts a question: a leading digit followed
// by a '?' anywhere or a trailing '.', or any text ending in '?'.
func isPrompt(text string) bool {
	if strings.HasSuffix(text, "?") {
		return true
	}
	first, _ := utf8.DecodeRuneInString(text)
	if first == utf8.RuneError || !unicode.IsDigit(first) {
		return false
	}
	return strings.Contains(text, "?") || strings.HasSuffix(text, ".")
}

// OptionText strips the option marker once and trims the remainder.
func OptionText(text string) string {
	return strings.TrimSpace(strings.TrimPrefix(text, OptionMarker))
}
