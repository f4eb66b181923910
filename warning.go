package quizdoc

import (
	"fmt"
	"strings"
)

// WarningCode classifies a Warning.
type WarningCode int

const (
	// WarningEmptyDocument means the document has no text at all.
	WarningEmptyDocument WarningCode = iota + 1
	// WarningNoPrompts means text was found but no line looked like a question.
	WarningNoPrompts
	// WarningQuestionShape means a question's type and options disagree.
	WarningQuestionShape
	// WarningOCR means the text came from OCR and may contain recognition errors.
	WarningOCR
)

// String returns a short name for the code.
func (c WarningCode) String() string {
	switch c {
	case WarningEmptyDocument:
		return "empty-document"
	case WarningNoPrompts:
		return "no-prompts"
	case WarningQuestionShape:
		return "question-shape"
	case WarningOCR:
		return "ocr"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal finding produced during extraction.
type Warning struct {
	Code    WarningCode
	Message string
}

// String returns the warning as "code: message".
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// FormatWarnings joins warnings into one line each.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
