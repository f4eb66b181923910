package htmldoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/quizdoc/model"
)

func parse(t *testing.T, src string) *Reader {
	t.Helper()
	r, err := OpenReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	return r
}

func texts(paras []model.Paragraph) []string {
	out := make([]string, len(paras))
	for i, p := range paras {
		out[i] = p.Text
	}
	return out
}

func TestParagraphs(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "quiz paragraphs",
			html: `<html><body>
<p>1. What is your name?</p>
<p>( ) Alice</p>
<p>( ) Bob</p>
<p>2. Describe <b>your</b>
   role.</p>
</body></html>`,
			want: []string{"1. What is your name?", "( ) Alice", "( ) Bob", "2. Describe your role."},
		},
		{
			name: "headings and blockquote",
			html: `<body><h1>Quiz</h1><blockquote>Read carefully</blockquote></body>`,
			want: []string{"Quiz", "Read carefully"},
		},
		{
			name: "leaf and container divs",
			html: `<body><div><div>First</div><div>Second <span>part</span></div></div></body>`,
			want: []string{"First", "Second part"},
		},
		{
			name: "list items",
			html: `<body><ol><li>1. Pick one?</li><li>( ) A<ul><li>nested</li></ul></li></ol></body>`,
			want: []string{"1. Pick one?", "( ) A", "nested"},
		},
		{
			name: "table cells",
			html: `<body><table><tr><th>Q</th><td>3. Why?</td></tr></table></body>`,
			want: []string{"Q", "3. Why?"},
		},
		{
			name: "br keeps line",
			html: `<body><p>one<br>two</p></body>`,
			want: []string{"one\ntwo"},
		},
		{
			name: "loose text between blocks",
			html: `<body>Intro text<p>Body</p>Trailing <i>text</i></body>`,
			want: []string{"Intro text", "Body", "Trailing text"},
		},
		{
			name: "scripts and styles skipped",
			html: `<head><style>p{}</style></head><body><script>var x;</script><p>Visible</p><noscript>no</noscript></body>`,
			want: []string{"Visible"},
		},
		{
			name: "empty blocks dropped",
			html: `<body><p>  </p><p>x</p><div></div></body>`,
			want: []string{"x"},
		},
		{
			name: "entities decoded",
			html: `<body><p>Tom &amp; Jerry&nbsp;?</p></body>`,
			want: []string{"Tom & Jerry ?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := parse(t, tt.html)
			if diff := cmp.Diff(tt.want, texts(r.Paragraphs())); diff != "" {
				t.Errorf("Paragraphs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParagraphs_Structure(t *testing.T) {
	r := parse(t, `<body><h2>Part A</h2><ul><li>top<ol><li><p>inner</p></li></ol></li></ul><p>after</p></body>`)

	paras := r.Paragraphs()
	if len(paras) != 4 {
		t.Fatalf("got %d paragraphs, want 4: %q", len(paras), texts(paras))
	}
	if !paras[0].Heading || paras[0].Level != 2 {
		t.Errorf("paragraph 0 = %+v, want h2 heading", paras[0])
	}
	if !paras[1].ListItem || paras[1].ListLevel != 0 {
		t.Errorf("paragraph 1 = %+v, want list level 0", paras[1])
	}
	if !paras[2].ListItem || paras[2].ListLevel != 1 {
		t.Errorf("paragraph 2 = %+v, want list level 1", paras[2])
	}
	if paras[3].ListItem {
		t.Errorf("paragraph 3 = %+v, want plain paragraph", paras[3])
	}
}

func TestExclusionModes(t *testing.T) {
	page := `<body>
<header><p>Site name</p></header>
<nav><a href="/">Home</a></nav>
<div class="main-menu"><p>Menu entry</p></div>
<div class="links"><a href="1">one</a> <a href="2">two</a> <a href="3">three</a> <a href="4">four</a></div>
<p>1. Real question?</p>
<footer><p>Copyright</p></footer>
</body>`

	tests := []struct {
		mode ExclusionMode
		want []string
	}{
		{ExcludeNone, []string{"Site name", "Home", "Menu entry", "one two three four", "1. Real question?", "Copyright"}},
		{ExcludeExplicit, []string{"Menu entry", "one two three four", "1. Real question?"}},
		{ExcludeStandard, []string{"one two three four", "1. Real question?"}},
		{ExcludeAggressive, []string{"1. Real question?"}},
	}

	for _, tt := range tests {
		r := parse(t, page)
		r.SetExclusion(tt.mode)
		if diff := cmp.Diff(tt.want, texts(r.Paragraphs())); diff != "" {
			t.Errorf("mode %d mismatch (-want +got):\n%s", tt.mode, diff)
		}
	}
}

func TestExclusion_NestedHeaderKept(t *testing.T) {
	r := parse(t, `<body><div id="wrapper"><header><p>Skipped</p></header>
<article><header><p>Article header</p></header><p>Text</p></article></div><p>x</p></body>`)

	// The wrapper is not the only body child, so neither header is top level.
	want := []string{"Skipped", "Article header", "Text", "x"}
	if diff := cmp.Diff(want, texts(r.Paragraphs())); diff != "" {
		t.Errorf("Paragraphs() mismatch (-want +got):\n%s", diff)
	}
}

func TestExclusion_Wrapper(t *testing.T) {
	r := parse(t, `<body><div id="wrapper"><header><p>Skipped</p></header><p>Kept</p></div></body>`)

	if diff := cmp.Diff([]string{"Kept"}, texts(r.Paragraphs())); diff != "" {
		t.Errorf("Paragraphs() mismatch (-want +got):\n%s", diff)
	}
}

func TestMetadata(t *testing.T) {
	r := parse(t, `<html lang="en"><head>
<title> Weekly
 Quiz </title>
<meta name="author" content="Jane">
<meta name="Description" content="Week 3">
<meta name="keywords" content="quiz, history, ">
<meta name="generator" content="Exporter 1.0">
</head><body><p>x</p></body></html>`)

	meta := r.Metadata()
	if meta.Title != "Weekly Quiz" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Author != "Jane" {
		t.Errorf("Author = %q", meta.Author)
	}
	if meta.Subject != "Week 3" || meta.Custom["description"] != "Week 3" {
		t.Errorf("description not mapped: %+v", meta)
	}
	if diff := cmp.Diff([]string{"quiz", "history"}, meta.Keywords); diff != "" {
		t.Errorf("Keywords mismatch (-want +got):\n%s", diff)
	}
	if meta.Creator != "Exporter 1.0" {
		t.Errorf("Creator = %q", meta.Creator)
	}
	if meta.Custom["language"] != "en" {
		t.Errorf("language = %q", meta.Custom["language"])
	}
}

func TestDocumentAndText(t *testing.T) {
	r := parse(t, `<title>T</title><p>a</p><p>b</p>`)

	doc, err := r.Document()
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	if doc.Metadata.Title != "T" {
		t.Errorf("Title = %q", doc.Metadata.Title)
	}
	text, err := r.Text()
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if text != "a\nb" || doc.ExtractText() != text {
		t.Errorf("Text() = %q, ExtractText() = %q", text, doc.ExtractText())
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.html")
	if err := os.WriteFile(path, []byte(`<p>1. Q?</p>`), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	if diff := cmp.Diff([]string{"1. Q?"}, texts(r.Paragraphs())); diff != "" {
		t.Errorf("Paragraphs() mismatch (-want +got):\n%s", diff)
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.html")); err == nil {
		t.Error("expected error for missing file")
	}
}
