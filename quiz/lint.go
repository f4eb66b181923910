package quiz

import "fmt"

// IssueKind identifies a lint finding.
type IssueKind int

const (
	// OpenWithOptions is an open question that still received option lines.
	OpenWithOptions IssueKind = iota + 1
	// ChoiceWithoutOptions is a multiple choice question with no options.
	ChoiceWithoutOptions
)

// Issue describes a question whose type and options disagree.
type Issue struct {
	Index    int // 0-based position in the question slice
	Kind     IssueKind
	Question string
}

// String returns a human-readable description of the issue.
func (i Issue) String() string {
	switch i.Kind {
	case OpenWithOptions:
		return fmt.Sprintf("question %d %q is open but has options", i.Index+1, i.Question)
	case ChoiceWithoutOptions:
		return fmt.Sprintf("question %d %q is multiple choice but has no options", i.Index+1, i.Question)
	default:
		return fmt.Sprintf("question %d %q: unknown issue", i.Index+1, i.Question)
	}
}

// Lint reports questions whose type does not match their options. The
// questions are not modified.
func Lint(qs []Question) []Issue {
	var issues []Issue
	for i, q := range qs {
		switch {
		case q.Type == Open && q.HasOptions():
			issues = append(issues, Issue{Index: i, Kind: OpenWithOptions, Question: q.Question})
		case q.Type == MultipleChoice && !q.HasOptions():
			issues = append(issues, Issue{Index: i, Kind: ChoiceWithoutOptions, Question: q.Question})
		}
	}
	return issues
}
