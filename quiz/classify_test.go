package quiz

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"1. What is your name?", KindPrompt},
		{"2. Describe your role.", KindPrompt},
		{"Tell me something?", KindPrompt},
		{"10) Why? Explain below", KindPrompt},
		{"1?", KindPrompt},
		{"( ) Alice", KindOption},
		{"( )", KindOption},
		{"( ) Is it?", KindPrompt}, // prompt wins over option
		{"Free text expected", KindOther},
		{"3 apples", KindOther},
		{"Read carefully.", KindOther},
		{"(x) checked", KindOther},
		{"() missing space", KindOther},
		{"¿Cuál?", KindPrompt},
		{"９. Full width digit.", KindPrompt},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestOptionText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"( ) Alice", "Alice"},
		{"( )Bob", "Bob"},
		{"( )   spaced   ", "spaced"},
		{"( ) ( ) twice", "( ) twice"},
		{"( )", ""},
	}
	for _, tt := range tests {
		if got := OptionText(tt.in); got != tt.want {
			t.Errorf("OptionText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindPrompt, "prompt"},
		{KindOption, "option"},
		{KindOther, "other"},
		{Kind(99), "other"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestType_Valid(t *testing.T) {
	if !MultipleChoice.Valid() || !Open.Valid() {
		t.Error("known types should be valid")
	}
	if Type("essay").Valid() {
		t.Error("unknown type should not be valid")
	}
}
