// Package model provides the intermediate representation (IR) shared by the
// document readers.
//
// Every reader (docx, odt, htmldoc, OCR) produces a [Document]: metadata plus
// the body paragraphs in reading order. Quiz building only needs the
// paragraph texts, which [Document.Texts] returns:
//
//	doc := model.NewDocument()
//	doc.Metadata.Title = "Onboarding quiz"
//	doc.AddParagraph(model.Paragraph{Text: "1. What is your name?"})
//	texts := doc.Texts()
//
// # Paragraphs
//
// A [Paragraph] keeps the text and what the reader knew about its structure:
// the style name, whether it is a heading (and its level), and whether it is a
// list item. Empty paragraphs are kept so that callers see the document as
// authored; the quiz builder ignores them.
package model
