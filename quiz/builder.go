package quiz

import (
	"slices"
	"strings"
)

// Builder accumulates questions from lines fed in document order.
// The zero value is ready to use.
type Builder struct {
	current *Question
	out     []Question
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build classifies paragraphs in a single forward pass and returns the
// finalized questions in order.
func Build(paragraphs []string) []Question {
	b := NewBuilder()
	for _, p := range paragraphs {
		b.Add(p)
	}
	return b.Questions()
}

// Add feeds one raw paragraph. Blank paragraphs are ignored and do not
// change state.
func (b *Builder) Add(paragraph string) {
	text := strings.TrimSpace(paragraph)
	if text == "" {
		return
	}

	switch Classify(text) {
	case KindPrompt:
		b.startQuestion(text)
	case KindOption:
		b.addOption(OptionText(text))
	default:
		b.markOpen()
	}
}

// Questions finalizes the question in progress, if any, and returns every
// question built so far as a copy the caller owns. Further calls to Add
// continue after the returned questions.
func (b *Builder) Questions() []Question {
	b.finalize()
	out := make([]Question, len(b.out))
	for i, q := range b.out {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out
}

// startQuestion finalizes the current question and opens a new one.
func (b *Builder) startQuestion(prompt string) {
	b.finalize()
	b.current = &Question{
		Question: prompt,
		Options:  []string{},
		Type:     MultipleChoice,
	}
}

// addOption appends to the current question. Orphan options are dropped.
// The type is left as is, so a question already marked open stays open.
func (b *Builder) addOption(option string) {
	if b.current == nil {
		return
	}
	b.current.Options = append(b.current.Options, option)
}

// markOpen turns the current question into an open question while it has
// no options.
func (b *Builder) markOpen() {
	if b.current == nil || len(b.current.Options) > 0 {
		return
	}
	b.current.Type = Open
}

func (b *Builder) finalize() {
	if b.current == nil {
		return
	}
	b.out = append(b.out, *b.current)
	b.current = nil
}
