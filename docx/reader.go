// Package docx provides DOCX (Office Open XML) document parsing.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tsawler/quizdoc/model"
)

// Reader provides access to DOCX document content.
type Reader struct {
	zipReader *zip.Reader
	closer    io.Closer // set when the Reader opened the file itself
	document  *documentXML
	styles    *styleIndex
	numbering *NumberingResolver
	coreProps *corePropertiesXML
	appProps  *appPropertiesXML

	numberingLabels bool
}

// parsedParagraph holds a parsed paragraph with resolved styles.
type parsedParagraph struct {
	Text      string
	StyleID   string
	StyleName string
	IsHeading bool
	Level     int // heading level (1-9) or 0 for non-headings
	NumID     string
	ListLevel int
}

// Open opens a DOCX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r, err := newReader(&zr.Reader)
	if err != nil {
		zr.Close()
		return nil, err
	}
	r.closer = zr
	return r, nil
}

// OpenReader reads a DOCX document from an io.ReaderAt of the given size.
// The caller keeps ownership of ra.
func OpenReader(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	return newReader(zr)
}

func newReader(zr *zip.Reader) (*Reader, error) {
	r := &Reader{
		zipReader: zr,
	}

	// Validate required files exist
	if err := r.validate(); err != nil {
		return nil, err
	}

	// Parse document.xml
	if err := r.parseDocument(); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	// Styles and numbering are optional; documents without them still read.
	r.styles = newStyleIndex(r.parseStyles())
	r.numbering = NewNumberingResolver(r.parseNumbering())

	// Parse metadata (optional)
	r.parseCoreProperties()
	r.parseAppProperties()

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// SetNumberingLabels controls whether list paragraphs are prefixed with
// their automatic number ("1.", "a)", "iv."). Word stores these numbers
// outside the paragraph text, so without labels an auto-numbered question
// reads as plain text.
func (r *Reader) SetNumberingLabels(enabled bool) {
	r.numberingLabels = enabled
}

// validate checks that required DOCX files exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		"word/document.xml",
	}

	fileMap := make(map[string]bool)
	for _, f := range r.zipReader.File {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// Paragraphs returns the body paragraphs in document order.
func (r *Reader) Paragraphs() []model.Paragraph {
	parsed := r.processParagraphs()
	paragraphs := make([]model.Paragraph, len(parsed))
	for i, p := range parsed {
		style := p.StyleName
		if style == "" {
			style = p.StyleID
		}
		paragraphs[i] = model.Paragraph{
			Text:      p.Text,
			Style:     style,
			Heading:   p.IsHeading,
			Level:     p.Level,
			ListItem:  r.numbering.IsListParagraph(p.NumID),
			ListLevel: p.ListLevel,
		}
	}
	return paragraphs
}

// Text extracts and returns all text content from the document.
func (r *Reader) Text() (string, error) {
	if r.document == nil {
		return "", fmt.Errorf("document not parsed")
	}

	var result strings.Builder
	for i, para := range r.processParagraphs() {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(para.Text)
	}

	return result.String(), nil
}

// Document returns a model.Document representation of the DOCX content.
func (r *Reader) Document() (*model.Document, error) {
	if r.document == nil {
		return nil, fmt.Errorf("document not parsed")
	}

	doc := model.NewDocument()
	doc.Metadata = r.Metadata()
	for _, p := range r.Paragraphs() {
		doc.AddParagraph(p)
	}
	return doc, nil
}

// Metadata returns document metadata.
func (r *Reader) Metadata() model.Metadata {
	meta := model.Metadata{Custom: make(map[string]string)}
	if r.coreProps != nil {
		meta.Title = r.coreProps.Title
		meta.Author = r.coreProps.Creator
		meta.Subject = r.coreProps.Subject
		meta.Keywords = model.SplitKeywords(r.coreProps.Keywords)
		meta.CreationDate = model.ParseDate(r.coreProps.Created)
		meta.ModDate = model.ParseDate(r.coreProps.Modified)
		if r.coreProps.Description != "" {
			meta.Custom["description"] = r.coreProps.Description
		}
	}
	if r.appProps != nil {
		meta.Creator = r.appProps.Application
		if r.appProps.Company != "" {
			meta.Custom["company"] = r.appProps.Company
		}
	}
	return meta
}

// parseDocument parses the main document content.
func (r *Reader) parseDocument() error {
	data, err := r.getFileContent("word/document.xml")
	if err != nil {
		return err
	}

	r.document = &documentXML{}
	if err := xml.Unmarshal(data, r.document); err != nil {
		return fmt.Errorf("unmarshaling document.xml: %w", err)
	}

	return nil
}

// parseStyles parses the styles definition file, returning nil if absent
// or malformed.
func (r *Reader) parseStyles() *stylesXML {
	data, err := r.getFileContent("word/styles.xml")
	if err != nil {
		return nil
	}

	styles := &stylesXML{}
	if err := xml.Unmarshal(data, styles); err != nil {
		return nil
	}
	return styles
}

// parseNumbering parses the numbering definitions file, returning nil if
// absent or malformed.
func (r *Reader) parseNumbering() *numberingXML {
	data, err := r.getFileContent("word/numbering.xml")
	if err != nil {
		return nil
	}

	numbering := &numberingXML{}
	if err := xml.Unmarshal(data, numbering); err != nil {
		return nil
	}
	return numbering
}

// parseCoreProperties parses Dublin Core metadata.
func (r *Reader) parseCoreProperties() {
	data, err := r.getFileContent("docProps/core.xml")
	if err != nil {
		return
	}

	props := &corePropertiesXML{}
	if xml.Unmarshal(data, props) == nil {
		r.coreProps = props
	}
}

// parseAppProperties parses application metadata.
func (r *Reader) parseAppProperties() {
	data, err := r.getFileContent("docProps/app.xml")
	if err != nil {
		return
	}

	props := &appPropertiesXML{}
	if xml.Unmarshal(data, props) == nil {
		r.appProps = props
	}
}

// processParagraphs resolves every body paragraph. Numbering labels are
// stateful, so the pass always starts from the first paragraph.
func (r *Reader) processParagraphs() []parsedParagraph {
	if r.document == nil || r.document.Body == nil {
		return nil
	}

	labels := newLabeler(r.numbering)
	paragraphs := make([]parsedParagraph, 0, len(r.document.Body.Paragraphs))
	for _, p := range r.document.Body.Paragraphs {
		parsed := r.processParagraph(p)
		if r.numberingLabels {
			if label := labels.next(parsed.NumID, parsed.ListLevel); label != "" {
				parsed.Text = label + " " + parsed.Text
			}
		}
		paragraphs = append(paragraphs, parsed)
	}
	return paragraphs
}

// processParagraph processes a single paragraph.
func (r *Reader) processParagraph(p paragraphXML) parsedParagraph {
	parsed := parsedParagraph{
		StyleID: p.Properties.Style.Val,
	}

	var text strings.Builder
	for _, run := range p.Runs {
		text.WriteString(run.Text)
	}
	parsed.Text = text.String()

	if parsed.StyleID != "" {
		parsed.StyleName = r.styles.name(parsed.StyleID)
		parsed.IsHeading, parsed.Level = r.styles.heading(parsed.StyleID)
	}
	if !parsed.IsHeading && p.Properties.OutlineLvl.Val != "" {
		if level := parseOutlineLevel(p.Properties.OutlineLvl.Val); level >= 0 {
			parsed.IsHeading, parsed.Level = true, level+1
		}
	}

	// Direct numbering wins over numbering inherited from the style.
	numID, ilvl := p.Properties.NumPr.NumID.Val, p.Properties.NumPr.ILvl.Val
	if numID == "" && parsed.StyleID != "" {
		numID, ilvl = r.styles.numbering(parsed.StyleID)
	}
	parsed.NumID = numID
	if level, err := strconv.Atoi(ilvl); err == nil {
		parsed.ListLevel = level
	}

	return parsed
}
