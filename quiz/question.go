package quiz

// Type is the kind of answer a question expects.
type Type string

const (
	// MultipleChoice questions are answered by picking one of the options.
	MultipleChoice Type = "multiple_choice"
	// Open questions are answered with free text.
	Open Type = "open"
)

// Valid reports whether t is one of the known question types.
func (t Type) Valid() bool {
	return t == MultipleChoice || t == Open
}

// Question is a single quiz question.
type Question struct {
	Question string   `json:"question" yaml:"question"`
	Options  []string `json:"options" yaml:"options"`
	Type     Type     `json:"type" yaml:"type"`
}

// HasOptions reports whether any option line was attached to the question.
func (q Question) HasOptions() bool {
	return len(q.Options) > 0
}
