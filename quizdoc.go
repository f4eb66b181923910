// Package quizdoc provides a fluent API for turning quiz documents into
// structured questions.
//
// Basic usage:
//
//	questions, warnings, err := quizdoc.Open("quiz.docx").Questions()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", quizdoc.FormatWarnings(warnings))
//	}
//
// With options:
//
//	questions, _, err := quizdoc.Open("scan.png").
//	    OCRLanguage("eng+fra").
//	    Questions()
//
// The lower-level docx, odt, htmldoc and quiz packages are also available.
package quizdoc

// Open returns an Extractor for the file at filename. Nothing is read until
// a terminal operation such as Questions() is called.
//
// Example:
//
//	questions, warnings, err := quizdoc.Open("quiz.docx").Questions()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustQuestions is a helper that wraps a call to Questions(), Paragraphs()
// or Document() and panics if the error is non-nil. It discards warnings
// and returns just the value.
//
// Example:
//
//	questions := quizdoc.MustQuestions(quizdoc.Open("quiz.docx").Questions())
func MustQuestions[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
