package ocr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// PageSegMode represents page segmentation modes for OCR.
// These control how Tesseract analyzes the page layout.
type PageSegMode int

// Page segmentation modes, numbered as Tesseract numbers them.
const (
	PSMAuto         PageSegMode = 3  // Fully automatic (default)
	PSMSingleColumn PageSegMode = 4  // Single column of variable sizes
	PSMSingleBlock  PageSegMode = 6  // Single uniform block of text
	PSMSparseText   PageSegMode = 11 // Find as much text as possible
)

// Options configures recognition.
type Options struct {
	// Language is a Tesseract language list such as "eng" or "eng+por".
	// Empty means the engine default.
	Language string
	// PageSegMode defaults to PSMSingleColumn, which keeps a quiz's lines
	// in reading order.
	PageSegMode PageSegMode
}

func (o Options) pageSegMode() PageSegMode {
	if o.PageSegMode == 0 {
		return PSMSingleColumn
	}
	return o.PageSegMode
}

// ReadLines prepares a scanned page, recognizes it and returns its lines.
func ReadLines(data []byte, opts Options) ([]string, error) {
	prepared, err := Prepare(data)
	if err != nil {
		return nil, fmt.Errorf("preparing image: %w", err)
	}

	c, err := New(opts)
	if err != nil {
		return nil, fmt.Errorf("starting OCR: %w", err)
	}
	defer c.Close()

	text, err := c.Recognize(prepared)
	if err != nil {
		return nil, err
	}
	return Lines(text), nil
}

// emptyBox matches an option box at the start of a line as OCR tends to
// read it: "()", "(  )" or "( _ )".
var emptyBox = regexp.MustCompile(`^\(\s*_?\s*\)\s*`)

// Lines splits recognized text into trimmed, non-empty lines. Each line of
// a scanned quiz is one paragraph. A misread empty option box at the start
// of a line is rewritten as "( )".
func Lines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if loc := emptyBox.FindStringIndex(line); loc != nil {
			line = "( ) " + line[loc[1]:]
			line = strings.TrimSpace(line)
		}
		lines = append(lines, line)
	}
	return lines
}
