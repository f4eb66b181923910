package quiz

import (
	"strings"
	"testing"
)

func TestLint(t *testing.T) {
	qs := Build([]string{
		"1. Fine?", "( ) a",
		"2. No options?",
		"3. Explain.", "note", "( ) late option",
		"4. Essay.", "write here",
	})

	issues := Lint(qs)
	if len(issues) != 2 {
		t.Fatalf("got %d issues, want 2: %v", len(issues), issues)
	}

	if issues[0].Index != 1 || issues[0].Kind != ChoiceWithoutOptions {
		t.Errorf("issues[0] = %+v, want index 1 ChoiceWithoutOptions", issues[0])
	}
	if issues[1].Index != 2 || issues[1].Kind != OpenWithOptions {
		t.Errorf("issues[1] = %+v, want index 2 OpenWithOptions", issues[1])
	}
	if !strings.Contains(issues[1].String(), "question 3") {
		t.Errorf("String() = %q, want 1-based question number", issues[1].String())
	}
}

func TestLint_Clean(t *testing.T) {
	qs := Build([]string{"1. Q?", "( ) a", "2. R.", "free"})
	if issues := Lint(qs); len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}
