//go:build ocr

// Package ocr reads scanned quiz pages with the Tesseract engine through
// gosseract. Tesseract must be installed:
//
//	brew install tesseract          # macOS
//	apt-get install tesseract-ocr   # Debian, Ubuntu
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client is a configured Tesseract session. It is not safe for concurrent
// use.
type Client struct {
	tess *gosseract.Client
}

// New starts a Tesseract session configured by opts. Close it when done.
func New(opts Options) (*Client, error) {
	tess := gosseract.NewClient()
	c := &Client{tess: tess}

	if opts.Language != "" {
		if err := tess.SetLanguage(strings.Split(opts.Language, "+")...); err != nil {
			c.Close()
			return nil, fmt.Errorf("setting language %q: %w", opts.Language, err)
		}
	}
	if err := tess.SetPageSegMode(gosseract.PageSegMode(opts.pageSegMode())); err != nil {
		c.Close()
		return nil, fmt.Errorf("setting page segmentation mode: %w", err)
	}
	// Keeps the space inside "( )" option boxes.
	if err := tess.SetVariable("preserve_interword_spaces", "1"); err != nil {
		c.Close()
		return nil, fmt.Errorf("setting preserve_interword_spaces: %w", err)
	}
	return c, nil
}

// Close releases the session. It is safe to call on a nil client and more
// than once.
func (c *Client) Close() error {
	if c == nil || c.tess == nil {
		return nil
	}
	err := c.tess.Close()
	c.tess = nil
	return err
}

// Recognize returns the text of one image (PNG, TIFF, JPEG and others
// Leptonica reads), trimmed.
func (c *Client) Recognize(image []byte) (string, error) {
	if err := c.tess.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("loading image: %w", err)
	}
	text, err := c.tess.Text()
	if err != nil {
		return "", fmt.Errorf("recognizing text: %w", err)
	}
	return strings.TrimSpace(text), nil
}
