//go:build !ocr

// Package ocr reads scanned quiz pages. This build has no OCR engine:
// New returns ErrOCRNotEnabled. Rebuild with -tags ocr and Tesseract
// installed to enable it.
package ocr

// Client stands in for the Tesseract session.
type Client struct{}

// New returns ErrOCRNotEnabled.
func New(opts Options) (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op.
func (c *Client) Close() error {
	return nil
}

// Recognize returns ErrOCRNotEnabled.
func (c *Client) Recognize(image []byte) (string, error) {
	return "", ErrOCRNotEnabled
}
