// Package epubdoc provides EPUB document parsing. Content documents are
// read in spine order with the htmldoc paragraph rules.
package epubdoc

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/quizdoc/htmldoc"
	"github.com/tsawler/quizdoc/model"
)

// Reader-related errors.
var (
	ErrInvalidArchive  = errors.New("epub: invalid or corrupted archive")
	ErrInvalidMimetype = errors.New("epub: invalid mimetype (not an EPUB)")
	ErrMissingContent  = errors.New("epub: referenced content file not found")
)

const epubMimeType = "application/epub+zip"

// Reader provides access to EPUB content.
type Reader struct {
	zr     *zip.Reader
	closer io.Closer // set when the Reader opened the file itself
	meta   model.Metadata
	docs   []spineDoc
	mode   htmldoc.ExclusionMode
}

// Open opens an EPUB file from a path.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}

	r, err := newReader(&zr.Reader)
	if err != nil {
		zr.Close()
		return nil, err
	}
	r.closer = zr
	return r, nil
}

// OpenReader opens an EPUB from an io.ReaderAt of the given size. The
// caller keeps ownership of ra.
func OpenReader(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}
	return newReader(zr)
}

func newReader(zr *zip.Reader) (*Reader, error) {
	if err := validateMimetype(zr); err != nil {
		return nil, err
	}
	if err := checkDRM(zr); err != nil {
		return nil, err
	}

	opfPath, err := packagePath(zr)
	if err != nil {
		return nil, err
	}
	meta, docs, err := readPackage(zr, opfPath)
	if err != nil {
		return nil, err
	}

	return &Reader{
		zr:   zr,
		meta: meta,
		docs: docs,
		mode: htmldoc.ExcludeStandard,
	}, nil
}

// validateMimetype accepts archives without a mimetype member, which some
// generators omit, and rejects any other declared type.
func validateMimetype(zr *zip.Reader) error {
	data, err := readMember(zr, "mimetype")
	if errors.Is(err, errMemberNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if strings.TrimSpace(string(data)) != epubMimeType {
		return ErrInvalidMimetype
	}
	return nil
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

// SetExclusion sets how navigation and boilerplate are filtered from each
// content document. The default is htmldoc.ExcludeStandard.
func (r *Reader) SetExclusion(mode htmldoc.ExclusionMode) {
	r.mode = mode
}

// Metadata returns the publication metadata.
func (r *Reader) Metadata() model.Metadata {
	meta := r.meta
	meta.Keywords = append([]string(nil), r.meta.Keywords...)
	meta.Custom = make(map[string]string, len(r.meta.Custom))
	for k, v := range r.meta.Custom {
		meta.Custom[k] = v
	}
	return meta
}

// ChapterCount returns the number of content documents in reading order.
func (r *Reader) ChapterCount() int {
	return len(r.docs)
}

// Paragraphs returns the paragraphs of every content document in spine
// order. A spine entry whose file is missing yields ErrMissingContent.
func (r *Reader) Paragraphs() ([]model.Paragraph, error) {
	var out []model.Paragraph
	for _, d := range r.docs {
		data, err := readMember(r.zr, d.Href)
		if errors.Is(err, errMemberNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMissingContent, d.Href)
		}
		if err != nil {
			return nil, err
		}

		hr, err := htmldoc.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", d.Href, err)
		}
		hr.SetExclusion(r.mode)
		out = append(out, hr.Paragraphs()...)
	}
	return out, nil
}

// Text returns the paragraph texts joined by newlines.
func (r *Reader) Text() (string, error) {
	paras, err := r.Paragraphs()
	if err != nil {
		return "", err
	}
	texts := make([]string, len(paras))
	for i, p := range paras {
		texts[i] = p.Text
	}
	return strings.Join(texts, "\n"), nil
}

// Document returns a model.Document representation of the publication.
func (r *Reader) Document() (*model.Document, error) {
	paras, err := r.Paragraphs()
	if err != nil {
		return nil, err
	}
	doc := model.NewDocument()
	doc.Metadata = r.Metadata()
	for _, p := range paras {
		doc.AddParagraph(p)
	}
	return doc, nil
}
