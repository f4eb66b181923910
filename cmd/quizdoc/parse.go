package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/quizdoc"
	"github.com/tsawler/quizdoc/config"
	"github.com/tsawler/quizdoc/format"
	"github.com/tsawler/quizdoc/htmldoc"
	"github.com/tsawler/quizdoc/picker"
	"github.com/tsawler/quizdoc/quiz"
)

const noSelection = "no file selected"

func newParseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the questions found in a document",
		Long: `Parse reads a document and prints its questions as JSON (default) or
YAML. Without a file argument the path is read from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runParse,
	}
	cmd.Flags().StringP("out", "o", "", "write to this file instead of standard output")
	addExtractFlags(cmd)
	addOutputFlags(cmd)
	return cmd
}

// addExtractFlags registers the flags that control document reading.
func addExtractFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("numbering-labels", false, "prefix DOCX list paragraphs with their automatic numbers")
	cmd.Flags().String("ocr-lang", "", "Tesseract language(s) for image input, e.g. eng or eng+por")
	cmd.Flags().String("input-format", "", "skip detection: docx, odt, html, epub, txt, or image")
	cmd.Flags().String("html-exclusion", "standard", "HTML boilerplate filtering: none, explicit, standard, or aggressive")
}

// addOutputFlags registers the flags that control question output.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", config.FormatJSON, "output format: json or yaml")
	cmd.Flags().Bool("indent", true, "indent JSON output")
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	questions, ok, err := a.questions(cmd, args)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), noSelection)
		return nil
	}

	out := cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		if err := writeQuestions(f, questions, a.cfg.Output); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing output file: %w", err)
		}
		a.log.Info("questions written", zap.String("path", path), zap.Int("questions", len(questions)))
		return nil
	}
	return writeQuestions(out, questions, a.cfg.Output)
}

func writeQuestions(w io.Writer, qs []quiz.Question, out config.Output) error {
	if out.Format == config.FormatYAML {
		return quiz.WriteYAML(w, qs)
	}
	return quiz.WriteJSON(w, qs, out.Indent)
}

// questions selects the input and extracts its questions. ok is false when
// no file was selected.
func (a *app) questions(cmd *cobra.Command, args []string) ([]quiz.Question, bool, error) {
	path, ok, err := a.selectFile(cmd.Context(), cmd, args)
	if err != nil || !ok {
		return nil, false, err
	}

	ext, err := a.extractor(cmd, path)
	if err != nil {
		return nil, false, err
	}

	a.log.Debug("reading document", zap.String("path", path))
	questions, warnings, err := ext.Questions()
	if err != nil {
		return nil, false, err
	}
	for _, w := range warnings {
		a.log.Warn("document warning",
			zap.String("path", path),
			zap.String("code", w.Code.String()),
			zap.String("message", w.Message),
		)
	}
	a.log.Debug("document parsed", zap.String("path", path), zap.Int("questions", len(questions)))
	return questions, true, nil
}

// selectFile takes the path from args, or asks for one on standard input.
func (a *app) selectFile(ctx context.Context, cmd *cobra.Command, args []string) (string, bool, error) {
	var p picker.Picker
	if len(args) > 0 {
		p = picker.Static(args[0])
	} else {
		p = picker.Filter(picker.Prompt(cmd.InOrStdin(), cmd.ErrOrStderr()))
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return p.Pick(ctx)
}

func (a *app) extractor(cmd *cobra.Command, path string) (*quizdoc.Extractor, error) {
	ext := quizdoc.Open(path)
	if a.cfg.NumberingLabels {
		ext = ext.NumberingLabels()
	}
	if a.cfg.OCRLanguage != "" {
		ext = ext.OCRLanguage(a.cfg.OCRLanguage)
	}

	if name, _ := cmd.Flags().GetString("input-format"); name != "" {
		f, err := format.Parse(name)
		if err != nil {
			return nil, err
		}
		ext = ext.Format(f)
	}

	name, _ := cmd.Flags().GetString("html-exclusion")
	mode, err := exclusionMode(name)
	if err != nil {
		return nil, err
	}
	return ext.HTMLExclusion(mode), nil
}

func exclusionMode(name string) (htmldoc.ExclusionMode, error) {
	switch name {
	case "none":
		return htmldoc.ExcludeNone, nil
	case "explicit":
		return htmldoc.ExcludeExplicit, nil
	case "", "standard":
		return htmldoc.ExcludeStandard, nil
	case "aggressive":
		return htmldoc.ExcludeAggressive, nil
	default:
		return htmldoc.ExcludeStandard, fmt.Errorf("unknown HTML exclusion mode %q", name)
	}
}
