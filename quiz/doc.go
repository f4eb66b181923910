// Package quiz turns an ordered sequence of paragraph texts into quiz
// questions.
//
// Each paragraph is classified as a prompt, an option, or other text:
//
//	qs := quiz.Build([]string{
//	    "1. What is your name?",
//	    "( ) Alice",
//	    "( ) Bob",
//	})
//
// A prompt starts a new [Question]. Option lines (starting with "( )") are
// appended to the question in progress. Any other line marks a question
// that has no options yet as [Open]. The pass is single, forward and never
// fails; lines that have no question to attach to are dropped.
//
// The same records can be written with [WriteJSON] or [WriteYAML], and
// checked for type/option disagreements with [Lint].
package quiz
