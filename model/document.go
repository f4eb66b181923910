package model

import (
	"strings"
	"time"
)

// Document represents an extracted document.
type Document struct {
	Metadata   Metadata
	Paragraphs []Paragraph
}

// Metadata contains document-level information
type Metadata struct {
	Title        string
	Author       string
	Subject      string
	Keywords     []string
	Creator      string
	CreationDate time.Time
	ModDate      time.Time
	// Custom metadata
	Custom map[string]string
}

// Paragraph is a single block of text in reading order.
type Paragraph struct {
	Text      string
	Style     string // style name or ID as stored in the source, may be empty
	Heading   bool
	Level     int // heading level (1-9) or 0 for non-headings
	ListItem  bool
	ListLevel int // nesting level (0-based) for list items
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Metadata: Metadata{
			Custom: make(map[string]string),
		},
		Paragraphs: make([]Paragraph, 0),
	}
}

// AddParagraph appends a paragraph to the document.
func (d *Document) AddParagraph(p Paragraph) {
	d.Paragraphs = append(d.Paragraphs, p)
}

// Texts returns the paragraph texts in order, including empty ones.
func (d *Document) Texts() []string {
	texts := make([]string, len(d.Paragraphs))
	for i, p := range d.Paragraphs {
		texts[i] = p.Text
	}
	return texts
}

// ExtractText returns all paragraph text joined by newlines.
func (d *Document) ExtractText() string {
	return strings.Join(d.Texts(), "\n")
}

// Headings returns the heading paragraphs in order.
func (d *Document) Headings() []Paragraph {
	var headings []Paragraph
	for _, p := range d.Paragraphs {
		if p.Heading {
			headings = append(headings, p)
		}
	}
	return headings
}

// IsEmpty reports whether the document has no non-blank paragraph.
func (d *Document) IsEmpty() bool {
	for _, p := range d.Paragraphs {
		if strings.TrimSpace(p.Text) != "" {
			return false
		}
	}
	return true
}

// SplitKeywords splits a comma separated keyword list, trimming each entry
// and dropping empty ones.
func SplitKeywords(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	keywords := make([]string, 0, len(parts))
	for _, kw := range parts {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// dateLayouts are the W3CDTF forms found in office and EPUB metadata.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// ParseDate parses a metadata timestamp. Values without a zone are taken
// as UTC. The zero time is returned for empty or unrecognized values.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
