// Package picker provides the "choose a file" step of a run. A Picker
// returns a path or reports that nothing was selected.
package picker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/tsawler/quizdoc/format"
)

// DefaultQuestion is printed by Prompt before reading.
const DefaultQuestion = "Document to read (empty to cancel): "

// Picker selects one input file.
type Picker interface {
	// Pick returns the chosen path. ok is false when the user made no
	// selection; that is not an error.
	Pick(ctx context.Context) (path string, ok bool, err error)
}

// Func adapts a function to the Picker interface.
type Func func(ctx context.Context) (string, bool, error)

// Pick calls f.
func (f Func) Pick(ctx context.Context) (string, bool, error) {
	return f(ctx)
}

// Static returns a Picker that always selects path. An empty path means
// no selection.
func Static(path string) Picker {
	return Func(func(ctx context.Context) (string, bool, error) {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}
		return path, path != "", nil
	})
}

type prompt struct {
	in       *bufio.Reader
	out      io.Writer
	question string
}

// Prompt returns a Picker that writes a question to out and reads one line
// from in. An empty line or end of input means no selection. Surrounding
// quotes, as added by terminals when a file is dropped in, are removed.
func Prompt(in io.Reader, out io.Writer) Picker {
	return &prompt{
		in:       bufio.NewReader(in),
		out:      out,
		question: DefaultQuestion,
	}
}

type line struct {
	text string
	err  error
}

func (p *prompt) Pick(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if _, err := io.WriteString(p.out, p.question); err != nil {
		return "", false, fmt.Errorf("writing prompt: %w", err)
	}

	// Reading blocks until the user answers; the goroutine finishes when
	// the line arrives even if ctx is cancelled first.
	done := make(chan line, 1)
	go func() {
		text, err := p.in.ReadString('\n')
		done <- line{text, err}
	}()

	var l line
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case l = <-done:
	}
	if l.err != nil && !errors.Is(l.err, io.EOF) {
		return "", false, fmt.Errorf("reading selection: %w", l.err)
	}

	path := unquote(strings.TrimSpace(l.text))
	return path, path != "", nil
}

func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && first == last {
			return strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}

// Filter wraps p and rejects selections whose extension does not map to
// one of formats. With no formats every supported format is accepted.
func Filter(p Picker, formats ...format.Format) Picker {
	return Func(func(ctx context.Context) (string, bool, error) {
		path, ok, err := p.Pick(ctx)
		if err != nil || !ok {
			return path, ok, err
		}
		f := format.Detect(path)
		if f == format.Unknown || (len(formats) > 0 && !slices.Contains(formats, f)) {
			return "", false, fmt.Errorf("%w: %s", format.ErrUnsupported, path)
		}
		return path, true, nil
	})
}
