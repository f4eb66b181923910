// Package odt provides ODT (OpenDocument Text) document parsing.
package odt

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tsawler/quizdoc/model"
)

// Reader provides access to ODT document content.
type Reader struct {
	zipReader  *zip.Reader
	closer     io.Closer // set when the Reader opened the file itself
	meta       *metaXML
	paragraphs []model.Paragraph
}

// Open opens an ODT file for reading.
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

// OpenReader reads an ODT document from an io.ReaderAt of the given size.
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

	// Parse content.xml (main document content)
	if err := r.parseContent(); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}

	// Parse metadata (optional)
	r.parseMetadata()

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

// validate checks that required ODT files exist.
func (r *Reader) validate() error {
	for _, f := range r.zipReader.File {
		if f.Name == "content.xml" {
			return nil
		}
	}
	return fmt.Errorf("missing required file: content.xml")
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

// Paragraphs returns the body paragraphs, headings and list-item
// paragraphs in document order.
func (r *Reader) Paragraphs() []model.Paragraph {
	out := make([]model.Paragraph, len(r.paragraphs))
	copy(out, r.paragraphs)
	return out
}

// Text extracts and returns all text content from the document.
func (r *Reader) Text() (string, error) {
	var result strings.Builder
	for i, para := range r.paragraphs {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(para.Text)
	}
	return result.String(), nil
}

// Document returns a model.Document representation of the ODT content.
func (r *Reader) Document() (*model.Document, error) {
	doc := model.NewDocument()
	doc.Metadata = r.Metadata()
	for _, p := range r.paragraphs {
		doc.AddParagraph(p)
	}
	return doc, nil
}

// Metadata returns document metadata.
func (r *Reader) Metadata() model.Metadata {
	meta := model.Metadata{Custom: make(map[string]string)}
	if r.meta != nil && r.meta.Meta != nil {
		m := r.meta.Meta
		meta.Title = m.Title
		meta.Author = m.Creator
		if meta.Author == "" {
			meta.Author = m.InitialCreator
		}
		meta.Subject = m.Subject
		meta.Creator = m.Generator
		meta.CreationDate = model.ParseDate(m.CreationDate)
		meta.ModDate = model.ParseDate(m.Date)
		for _, kw := range m.Keywords {
			meta.Keywords = append(meta.Keywords, model.SplitKeywords(kw)...)
		}
		if m.Description != "" {
			meta.Custom["description"] = m.Description
		}
		if m.Language != "" {
			meta.Custom["language"] = m.Language
		}
	}
	return meta
}

// parseContent parses the content.xml file.
func (r *Reader) parseContent() error {
	data, err := r.getFileContent("content.xml")
	if err != nil {
		return err
	}
	return r.parseBodyElements(data)
}

// parseBodyElements walks office:text keeping document order. List nesting
// is tracked so list-item paragraphs carry their level.
func (r *Reader) parseBodyElements(data []byte) error {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	var inBody bool
	var listDepth int

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("decoding content.xml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "text" && t.Name.Space == nsOffice {
				inBody = true
				continue
			}
			if !inBody {
				continue
			}

			switch {
			case t.Name.Local == "p" || t.Name.Local == "h":
				text, err := readInline(decoder)
				if err != nil {
					return fmt.Errorf("decoding paragraph: %w", err)
				}
				para := model.Paragraph{
					Text:  text,
					Style: attr(t, "style-name"),
				}
				if t.Name.Local == "h" {
					para.Heading = true
					para.Level = 1
					if level, err := strconv.Atoi(attr(t, "outline-level")); err == nil && level >= 1 && level <= 9 {
						para.Level = level
					}
				}
				if listDepth > 0 {
					para.ListItem = true
					para.ListLevel = listDepth - 1
				}
				r.paragraphs = append(r.paragraphs, para)

			case t.Name.Local == "list":
				listDepth++

			case skippedElements[t.Name.Local]:
				if err := decoder.Skip(); err != nil {
					return fmt.Errorf("decoding content.xml: %w", err)
				}
			}

		case xml.EndElement:
			if !inBody {
				continue
			}
			if t.Name.Local == "text" && t.Name.Space == nsOffice {
				inBody = false
			}
			if t.Name.Local == "list" && listDepth > 0 {
				listDepth--
			}
		}
	}
}

// readInline collects the text of a paragraph or heading up to its end
// element. Runs of XML whitespace collapse to one space; text:s, text:tab
// and text:line-break produce their literal characters.
func readInline(d *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 0
	for {
		tok, err := d.Token()
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.CharData:
			sb.WriteString(collapseSpace(string(t)))
		case xml.StartElement:
			switch {
			case t.Name.Local == "s" && t.Name.Space == nsText:
				n := 1
				if c, err := strconv.Atoi(attr(t, "c")); err == nil && c > 0 {
					n = c
				}
				sb.WriteString(strings.Repeat(" ", n))
			case t.Name.Local == "tab" && t.Name.Space == nsText:
				sb.WriteString("\t")
			case t.Name.Local == "line-break" && t.Name.Space == nsText:
				sb.WriteString("\n")
			case skippedElements[t.Name.Local]:
			default:
				// span, a, meta, bookmark-ref and friends contribute
				// their text.
				depth++
				continue
			}
			if err := d.Skip(); err != nil {
				return "", err
			}
		case xml.EndElement:
			if depth == 0 {
				return sb.String(), nil
			}
			depth--
		}
	}
}

// collapseSpace replaces every run of XML whitespace with a single space.
func collapseSpace(s string) string {
	var sb strings.Builder
	inSpace := false
	for _, c := range s {
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			if !inSpace {
				sb.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		sb.WriteRune(c)
	}
	return sb.String()
}

// attr returns the value of the attribute with the given local name.
func attr(t xml.StartElement, local string) string {
	for _, a := range t.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// parseMetadata parses the meta.xml file.
func (r *Reader) parseMetadata() {
	data, err := r.getFileContent("meta.xml")
	if err != nil {
		return
	}

	meta := &metaXML{}
	if xml.Unmarshal(data, meta) == nil {
		r.meta = meta
	}
}
