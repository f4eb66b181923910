// Package htmldoc provides HTML document parsing.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/quizdoc/model"
)

// Reader provides access to HTML document content.
type Reader struct {
	doc      *html.Node
	title    string
	lang     string
	metadata map[string]string
	mode     ExclusionMode
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{
		doc:      doc,
		metadata: make(map[string]string),
		mode:     ExcludeStandard,
	}

	// Extract title and metadata from head
	reader.extractHead(doc)

	if root := findElement(doc, "html"); root != nil {
		reader.lang = getAttr(root, "lang")
	}

	return reader, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// SetExclusion sets how navigation and page boilerplate are filtered.
// The default is ExcludeStandard.
func (r *Reader) SetExclusion(mode ExclusionMode) {
	r.mode = mode
}

// extractHead extracts title and meta tags from the head element.
func (r *Reader) extractHead(n *html.Node) {
	if n.Type == html.ElementNode && n.Data == "head" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "title":
				r.title = collapseSpace(textContent(c))
			case "meta":
				name := getAttr(c, "name")
				if name == "" {
					name = getAttr(c, "property")
				}
				content := getAttr(c, "content")
				if name != "" && content != "" {
					r.metadata[strings.ToLower(name)] = content
				}
			}
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.extractHead(c)
	}
}

// blockState tracks list nesting while walking the body.
type blockState struct {
	listLevel int // -1 outside lists
	inItem    bool
}

// Paragraphs returns one paragraph per block of body text in document
// order. Empty blocks are dropped.
func (r *Reader) Paragraphs() []model.Paragraph {
	body := findElement(r.doc, "body")
	if body == nil {
		// No body tag, try to extract from root
		body = r.doc
	}

	w := &walker{
		exclude: newExclusionChecker(r.mode, r.doc),
	}
	w.walkMixed(body, blockState{listLevel: -1})
	return w.paragraphs
}

// walker collects paragraphs from a DOM subtree.
type walker struct {
	exclude    *exclusionChecker
	paragraphs []model.Paragraph
}

func (w *walker) emit(n *html.Node, text string, st blockState) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	p := model.Paragraph{
		Text:  text,
		Style: n.Data,
	}
	if st.inItem {
		p.ListItem = true
		p.ListLevel = st.listLevel
	}
	w.paragraphs = append(w.paragraphs, p)
}

// walk processes block-level structure under n.
func (w *walker) walk(n *html.Node, st blockState) {
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) || w.exclude.shouldExclude(n) {
			return
		}

		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			if text := inlineText(n); text != "" {
				w.paragraphs = append(w.paragraphs, model.Paragraph{
					Text:    text,
					Style:   n.Data,
					Heading: true,
					Level:   int(n.Data[1] - '0'),
				})
			}
			return

		case "p", "div", "blockquote", "pre", "td", "th", "dt", "dd", "caption",
			"figcaption", "section", "article", "main", "header", "footer", "form", "fieldset",
			"nav", "aside":
			if !isBlockContainer(n) {
				w.emit(n, inlineText(n), st)
				return
			}
			w.walkMixed(n, st)
			return

		case "ul", "ol", "dl":
			inner := st
			inner.listLevel++
			inner.inItem = false
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				w.walk(c, inner)
			}
			return

		case "li":
			item := st
			if item.listLevel < 0 {
				item.listLevel = 0
			}
			item.inItem = true
			w.emit(n, directText(n), item)
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && isBlockElement(c.Data) {
					w.walk(c, item)
				}
			}
			return
		}
	}

	// Default: traverse children
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, st)
	}
}

// walkMixed walks a container whose children mix blocks with loose inline
// content. Each run of inline content between blocks becomes a paragraph.
func (w *walker) walkMixed(n *html.Node, st blockState) {
	var run strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && breaksFlow(c.Data) {
			w.emit(n, collapseSpace(run.String()), st)
			run.Reset()
			w.walk(c, st)
			continue
		}
		if c.Type == html.ElementNode && w.exclude.shouldExclude(c) {
			continue
		}
		writeText(c, &run)
	}
	w.emit(n, collapseSpace(run.String()), st)
}

// Text extracts and returns all text content from the document.
func (r *Reader) Text() (string, error) {
	paras := r.Paragraphs()
	texts := make([]string, len(paras))
	for i, p := range paras {
		texts[i] = p.Text
	}
	return strings.Join(texts, "\n"), nil
}

// Metadata returns document metadata.
func (r *Reader) Metadata() model.Metadata {
	meta := model.Metadata{
		Title:  r.title,
		Custom: make(map[string]string),
	}

	if author, ok := r.metadata["author"]; ok {
		meta.Author = author
	}
	if desc, ok := r.metadata["description"]; ok {
		meta.Subject = desc
		meta.Custom["description"] = desc
	}
	if keywords, ok := r.metadata["keywords"]; ok {
		meta.Keywords = model.SplitKeywords(keywords)
	}
	if generator, ok := r.metadata["generator"]; ok {
		meta.Creator = generator
	}
	if r.lang != "" {
		meta.Custom["language"] = r.lang
	}

	return meta
}

// Document returns a model.Document representation of the HTML content.
func (r *Reader) Document() (*model.Document, error) {
	doc := model.NewDocument()
	doc.Metadata = r.Metadata()
	for _, p := range r.Paragraphs() {
		doc.AddParagraph(p)
	}
	return doc, nil
}

// shouldSkipElement returns true if the element should be skipped during content extraction.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "head", "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

func isBlockElement(tagName string) bool {
	switch tagName {
	case "div", "p", "ul", "ol", "dl", "table", "h1", "h2", "h3", "h4", "h5", "h6",
		"blockquote", "pre", "article", "section", "main", "header", "footer", "form", "fieldset":
		return true
	}
	return false
}

// breaksFlow reports whether an element ends a run of inline content.
func breaksFlow(tagName string) bool {
	switch tagName {
	case "li", "table", "tr", "td", "th", "dt", "dd", "caption", "figcaption", "hr", "nav", "aside":
		return true
	}
	return isBlockElement(tagName)
}

// isBlockContainer returns true if the element is a block container with block-level children.
func isBlockContainer(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && isBlockElement(c.Data) {
			return true
		}
	}
	return false
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// inlineText returns the text of n with whitespace collapsed per line.
// <br> starts a new line.
func inlineText(n *html.Node) string {
	var sb strings.Builder
	writeText(n, &sb)
	return collapseSpace(sb.String())
}

// directText returns the text of n excluding block-level children.
func directText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && isBlockElement(c.Data) {
			continue
		}
		writeText(c, &sb)
	}
	return collapseSpace(sb.String())
}

var sourceBreaks = strings.NewReplacer("\r", " ", "\n", " ")

func writeText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		// Source line breaks are plain whitespace in HTML.
		sb.WriteString(sourceBreaks.Replace(n.Data))
		return
	case html.ElementNode:
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			sb.WriteString("\n")
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(c, sb)
	}
}

// textContent returns the raw text of n and its descendants.
func textContent(n *html.Node) string {
	var sb strings.Builder
	writeText(n, &sb)
	return sb.String()
}

// collapseSpace folds runs of whitespace within each line to one space and
// drops blank lines.
func collapseSpace(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// getAttr returns the value of an attribute on a node, or empty string if not found.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
