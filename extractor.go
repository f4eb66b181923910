package quizdoc

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/quizdoc/docx"
	"github.com/tsawler/quizdoc/epubdoc"
	"github.com/tsawler/quizdoc/format"
	"github.com/tsawler/quizdoc/htmldoc"
	"github.com/tsawler/quizdoc/model"
	"github.com/tsawler/quizdoc/ocr"
	"github.com/tsawler/quizdoc/odt"
	"github.com/tsawler/quizdoc/quiz"
)

// Extractor provides a fluent interface for reading quiz documents.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	filename string
	options  ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Extractor. Options hold no reference types,
// so a value copy is deep.
func (e *Extractor) clone() *Extractor {
	newExt := *e
	return &newExt
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// NumberingLabels prefixes DOCX list paragraphs with their automatic
// number, so a question numbered by Word reads "1. What ...?" and is
// recognized as a prompt.
//
// Example:
//
//	questions, _, err := quizdoc.Open("quiz.docx").NumberingLabels().Questions()
func (e *Extractor) NumberingLabels() *Extractor {
	newExt := e.clone()
	newExt.options.numberingLabels = true
	return newExt
}

// OCRLanguage sets the Tesseract language(s) used for image input, for
// example "eng" or "eng+fra".
func (e *Extractor) OCRLanguage(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.ocrLanguage = lang
	return newExt
}

// Format overrides format detection.
func (e *Extractor) Format(f format.Format) *Extractor {
	newExt := e.clone()
	if f == format.Unknown {
		newExt.err = fmt.Errorf("%w: cannot force format %s", format.ErrUnsupported, f)
	}
	newExt.options.format = f
	return newExt
}

// HTMLExclusion sets how navigation and boilerplate are dropped from HTML
// and EPUB input. The default is htmldoc.ExcludeStandard.
func (e *Extractor) HTMLExclusion(mode htmldoc.ExclusionMode) *Extractor {
	newExt := e.clone()
	newExt.options.htmlExclusion = mode
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Document reads the input and returns its paragraphs with normalized text.
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if e.filename == "" {
		return nil, nil, fmt.Errorf("no filename specified")
	}

	f, err := e.resolveFormat()
	if err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	var doc *model.Document
	switch f {
	case format.DOCX:
		doc, err = e.readDOCX()
	case format.ODT:
		doc, err = e.readODT()
	case format.HTML:
		doc, err = e.readHTML()
	case format.EPUB:
		doc, err = e.readEPUB()
	case format.Text:
		doc, err = e.readText()
	case format.Image:
		doc, err = e.readImage()
		warnings = append(warnings, Warning{
			Code:    WarningOCR,
			Message: "text was recognized by OCR; review the questions before publishing",
		})
	default:
		return nil, nil, fmt.Errorf("%w: %s", format.ErrUnsupported, e.filename)
	}
	if err != nil {
		return nil, nil, err
	}

	for i := range doc.Paragraphs {
		doc.Paragraphs[i].Text = normalizeText(doc.Paragraphs[i].Text)
	}

	if doc.IsEmpty() {
		warnings = append(warnings, Warning{
			Code:    WarningEmptyDocument,
			Message: fmt.Sprintf("%s contains no text", e.filename),
		})
	}

	return doc, warnings, nil
}

// Paragraphs returns the normalized paragraph texts in document order.
func (e *Extractor) Paragraphs() ([]string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return nil, nil, err
	}
	return doc.Texts(), warnings, nil
}

// Questions reads the input and groups its paragraphs into questions.
// The result is never nil.
func (e *Extractor) Questions() ([]quiz.Question, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return nil, nil, err
	}

	questions := quiz.Build(doc.Texts())

	if len(questions) == 0 && !doc.IsEmpty() {
		warnings = append(warnings, Warning{
			Code:    WarningNoPrompts,
			Message: "no line looks like a question prompt",
		})
	}
	for _, issue := range quiz.Lint(questions) {
		warnings = append(warnings, Warning{
			Code:    WarningQuestionShape,
			Message: issue.String(),
		})
	}

	return questions, warnings, nil
}

// resolveFormat trusts the content when it identifies the format and falls
// back to the file extension otherwise.
func (e *Extractor) resolveFormat() (format.Format, error) {
	if e.options.format != format.Unknown {
		return e.options.format, nil
	}

	f, err := os.Open(e.filename)
	if err != nil {
		return format.Unknown, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return format.Unknown, fmt.Errorf("opening input: %w", err)
	}
	if info.IsDir() {
		return format.Unknown, fmt.Errorf("%s is a directory", e.filename)
	}

	if detected, err := format.DetectFromReader(f, info.Size()); err == nil && detected != format.Unknown {
		return detected, nil
	}
	if byExt := format.Detect(e.filename); byExt != format.Unknown {
		return byExt, nil
	}
	return format.Unknown, fmt.Errorf("%w: %s", format.ErrUnsupported, e.filename)
}

func (e *Extractor) readDOCX() (*model.Document, error) {
	r, err := docx.Open(e.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer r.Close()

	r.SetNumberingLabels(e.options.numberingLabels)
	return r.Document()
}

func (e *Extractor) readODT() (*model.Document, error) {
	r, err := odt.Open(e.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open ODT: %w", err)
	}
	defer r.Close()

	return r.Document()
}

func (e *Extractor) readHTML() (*model.Document, error) {
	r, err := htmldoc.Open(e.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open HTML: %w", err)
	}
	defer r.Close()

	r.SetExclusion(e.options.htmlExclusion)
	return r.Document()
}

func (e *Extractor) readEPUB() (*model.Document, error) {
	r, err := epubdoc.Open(e.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open EPUB: %w", err)
	}
	defer r.Close()

	r.SetExclusion(e.options.htmlExclusion)
	return r.Document()
}

// maxLineSize bounds a single line of a text file.
const maxLineSize = 1 << 20

// readText reads a plain UTF-8 text file, one paragraph per line.
func (e *Extractor) readText() (*model.Document, error) {
	data, err := os.ReadFile(e.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open text file: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	doc := model.NewDocument()
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		doc.AddParagraph(model.Paragraph{Text: scanner.Text()})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading text file: %w", err)
	}
	return doc, nil
}

// readImage runs OCR over a scanned page, one paragraph per text line.
func (e *Extractor) readImage() (*model.Document, error) {
	data, err := os.ReadFile(e.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	lines, err := ocr.ReadLines(data, ocr.Options{
		Language:    e.options.ocrLanguage,
		PageSegMode: ocr.PSMSingleColumn,
	})
	if err != nil {
		return nil, err
	}

	doc := model.NewDocument()
	for _, line := range lines {
		doc.AddParagraph(model.Paragraph{Text: line})
	}
	return doc, nil
}

// spaceLike are characters word processors use in place of a plain space.
var spaceLike = strings.NewReplacer(
	"\u00a0", " ", // no-break space
	"\u202f", " ", // narrow no-break space
	"\u2007", " ", // figure space
)

// normalizeText composes text to NFC and replaces no-break spaces, so an
// option marker typed with a no-break space inside the parentheses still
// reads "( )".
func normalizeText(s string) string {
	return spaceLike.Replace(norm.NFC.String(s))
}
