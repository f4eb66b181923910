package quizdoc

import (
	"github.com/tsawler/quizdoc/format"
	"github.com/tsawler/quizdoc/htmldoc"
)

// ExtractOptions holds configuration for paragraph extraction.
type ExtractOptions struct {
	// Format override; Unknown means detect
	format format.Format

	// DOCX: prefix list paragraphs with their automatic numbers
	numberingLabels bool

	// Image: Tesseract language(s), empty for the engine default
	ocrLanguage string

	// HTML and EPUB: navigation and boilerplate filtering
	htmlExclusion htmldoc.ExclusionMode
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		format:          format.Unknown,
		numberingLabels: false,
		ocrLanguage:     "",
		htmlExclusion:   htmldoc.ExcludeStandard,
	}
}
