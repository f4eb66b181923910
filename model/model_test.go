package model

import (
	"reflect"
	"testing"
	"time"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument()

	if doc == nil {
		t.Fatal("NewDocument() returned nil")
	}
	if doc.Metadata.Custom == nil {
		t.Error("Metadata.Custom not initialized")
	}
	if doc.Paragraphs == nil {
		t.Error("Paragraphs not initialized")
	}
	if len(doc.Paragraphs) != 0 {
		t.Errorf("Paragraphs should be empty, got %d", len(doc.Paragraphs))
	}
}

func TestDocumentTexts(t *testing.T) {
	doc := NewDocument()
	doc.AddParagraph(Paragraph{Text: "Title", Heading: true, Level: 1})
	doc.AddParagraph(Paragraph{Text: ""})
	doc.AddParagraph(Paragraph{Text: "1. Question?"})

	want := []string{"Title", "", "1. Question?"}
	if got := doc.Texts(); !reflect.DeepEqual(got, want) {
		t.Errorf("Texts() = %q, want %q", got, want)
	}
	if got := doc.ExtractText(); got != "Title\n\n1. Question?" {
		t.Errorf("ExtractText() = %q", got)
	}
}

func TestDocumentHeadings(t *testing.T) {
	doc := NewDocument()
	doc.AddParagraph(Paragraph{Text: "Quiz", Heading: true, Level: 1})
	doc.AddParagraph(Paragraph{Text: "body"})
	doc.AddParagraph(Paragraph{Text: "Part 2", Heading: true, Level: 2})

	headings := doc.Headings()
	if len(headings) != 2 {
		t.Fatalf("Headings() returned %d, want 2", len(headings))
	}
	if headings[1].Level != 2 {
		t.Errorf("headings[1].Level = %d, want 2", headings[1].Level)
	}
}

func TestDocumentIsEmpty(t *testing.T) {
	doc := NewDocument()
	if !doc.IsEmpty() {
		t.Error("new document should be empty")
	}
	doc.AddParagraph(Paragraph{Text: "  \t"})
	if !doc.IsEmpty() {
		t.Error("blank paragraphs should not count")
	}
	doc.AddParagraph(Paragraph{Text: "x"})
	if doc.IsEmpty() {
		t.Error("document with text should not be empty")
	}
}

func TestSplitKeywords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"quiz", []string{"quiz"}},
		{"quiz, onboarding ,,hr", []string{"quiz", "onboarding", "hr"}},
	}
	for _, tt := range tests {
		if got := SplitKeywords(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitKeywords(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-03-01T09:30:00Z", time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)},
		{"2024-03-01T09:30:00+02:00", time.Date(2024, 3, 1, 7, 30, 0, 0, time.UTC)},
		{"2024-03-01T09:30:00.5", time.Date(2024, 3, 1, 9, 30, 0, 500_000_000, time.UTC)},
		{"2024-03-01T09:30", time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)},
		{" 2024-03-01 ", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"2024", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"", time.Time{}},
		{"last tuesday", time.Time{}},
	}

	for _, tt := range tests {
		if got := ParseDate(tt.in); !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
