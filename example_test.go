package quizdoc_test

import (
	"fmt"
	"log"
	"os"

	"github.com/tsawler/quizdoc"
	"github.com/tsawler/quizdoc/quiz"
)

// These examples have no Output comment because they need real files.

func Example_questions() {
	questions, warnings, err := quizdoc.Open("quiz.docx").Questions()
	if err != nil {
		log.Fatal(err)
	}

	for _, q := range questions {
		fmt.Println(q.Type, q.Question, q.Options)
	}

	for _, w := range warnings {
		fmt.Println("Warning:", w.Message)
	}
}

func Example_numberedList() {
	// Word keeps automatic numbers out of the paragraph text.
	questions, _, err := quizdoc.Open("numbered.docx").NumberingLabels().Questions()
	if err != nil {
		log.Fatal(err)
	}
	if err := quiz.WriteJSON(os.Stdout, questions, true); err != nil {
		log.Fatal(err)
	}
}

func Example_scannedPage() {
	// Requires a build with -tags ocr and Tesseract installed.
	questions, warnings, err := quizdoc.Open("scan.png").OCRLanguage("eng+por").Questions()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(quizdoc.FormatWarnings(warnings))
	fmt.Println(len(questions), "questions")
}
