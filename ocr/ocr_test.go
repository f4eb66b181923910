//go:build ocr

package ocr

import (
	"testing"
)

func newClient(t *testing.T, opts Options) *Client {
	t.Helper()
	c, err := New(opts)
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRecognize_BlankPage(t *testing.T) {
	c := newClient(t, Options{Language: "eng"})

	prepared, err := Prepare(encodePNG(t, testPage(100, 50)))
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	// The page has no glyphs; only check that recognition runs.
	if _, err := c.Recognize(prepared); err != nil {
		t.Errorf("Recognize() error = %v", err)
	}
}

func TestReadLines_BlankPage(t *testing.T) {
	newClient(t, Options{})

	if _, err := ReadLines(encodePNG(t, testPage(100, 50)), Options{PageSegMode: PSMSingleBlock}); err != nil {
		t.Errorf("ReadLines() error = %v", err)
	}
}

func TestClose_Twice(t *testing.T) {
	c, err := New(Options{})
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
