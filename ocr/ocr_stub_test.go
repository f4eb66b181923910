//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestNew_NotEnabled(t *testing.T) {
	c, err := New(Options{Language: "eng"})
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("New() error = %v, want ErrOCRNotEnabled", err)
	}
	if c != nil {
		t.Error("New() returned a client without OCR support")
	}

	var nilClient *Client
	if err := nilClient.Close(); err != nil {
		t.Errorf("Close() on nil client = %v", err)
	}
	if _, err := (&Client{}).Recognize(nil); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Recognize() error = %v, want ErrOCRNotEnabled", err)
	}
}

func TestReadLines_NotEnabled(t *testing.T) {
	if _, err := ReadLines(encodePNG(t, testPage(100, 50)), Options{}); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("ReadLines() error = %v, want ErrOCRNotEnabled", err)
	}
}
