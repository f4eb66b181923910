// Package format provides input format detection for quiz documents.
package format

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupported is returned for inputs no reader can handle.
var ErrUnsupported = errors.New("unsupported format")

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// ODT indicates an OpenDocument Text (.odt) document.
	ODT
	// HTML indicates an HTML document.
	HTML
	// Text indicates a plain text file, one paragraph per line.
	Text
	// Image indicates a scanned page that needs OCR.
	Image
	// EPUB indicates an EPUB publication.
	EPUB
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case DOCX:
		return "DOCX"
	case ODT:
		return "ODT"
	case HTML:
		return "HTML"
	case Text:
		return "Text"
	case Image:
		return "Image"
	case EPUB:
		return "EPUB"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case DOCX:
		return ".docx"
	case ODT:
		return ".odt"
	case HTML:
		return ".html"
	case Text:
		return ".txt"
	case Image:
		return ".png"
	case EPUB:
		return ".epub"
	default:
		return ""
	}
}

// Parse maps a format name as typed on the command line ("docx", "html",
// "image") to a Format.
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "docx":
		return DOCX, nil
	case "odt":
		return ODT, nil
	case "html", "htm":
		return HTML, nil
	case "txt", "text":
		return Text, nil
	case "image", "png", "jpg", "jpeg", "tif", "tiff", "bmp", "gif", "webp":
		return Image, nil
	case "epub":
		return EPUB, nil
	default:
		return Unknown, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".docx":
		return DOCX
	case ".odt":
		return ODT
	case ".html", ".htm", ".xhtml":
		return HTML
	case ".txt":
		return Text
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp", ".gif", ".webp":
		return Image
	case ".epub":
		return EPUB
	default:
		return Unknown
	}
}

// DetectFromMagic checks file magic bytes to determine format.
// ZIP archives return Unknown; use DetectFromReader to look inside them.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}
	if isImageMagic(data) {
		return Image
	}
	if detectHTMLMagic(data) {
		return HTML
	}
	return Unknown
}

var (
	zipMagic  = []byte("PK\x03\x04")
	pngMagic  = []byte("\x89PNG\r\n\x1a\n")
	jpegMagic = []byte("\xff\xd8\xff")
	tiffLE    = []byte("II*\x00")
	tiffBE    = []byte("MM\x00*")
	bmpMagic  = []byte("BM")
	gif87     = []byte("GIF87a")
	gif89     = []byte("GIF89a")
)

func isImageMagic(data []byte) bool {
	for _, magic := range [][]byte{pngMagic, jpegMagic, tiffLE, tiffBE, gif87, gif89} {
		if bytes.HasPrefix(data, magic) {
			return true
		}
	}
	// RIFF....WEBP
	if len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")) {
		return true
	}
	// BMP files carry a 14 byte header followed by a DIB header size.
	return len(data) >= 18 && bytes.HasPrefix(data, bmpMagic) && data[14] >= 12 && data[15] == 0
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return false
	}

	upper := strings.ToUpper(string(data[:min(512, len(data))]))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") || strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	return strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML")
}

// DetectFromReader inspects the content to determine format. It tells ZIP
// based DOCX, ODT and EPUB apart and recognizes HTML and image signatures. Plain
// text has no signature and reports Unknown.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 512)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if bytes.HasPrefix(magic, zipMagic) {
		return detectZIPFormat(r, size)
	}
	return DetectFromMagic(magic), nil
}

// detectZIPFormat inspects a ZIP archive to tell DOCX, ODT and EPUB apart.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	// OpenDocument and EPUB store their mimetype as the first member.
	for _, f := range zr.File {
		if f.Name != "mimetype" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			break
		}
		data, _ := io.ReadAll(io.LimitReader(rc, 256))
		rc.Close()
		switch strings.TrimSpace(string(data)) {
		case "application/vnd.oasis.opendocument.text":
			return ODT, nil
		case "application/epub+zip":
			return EPUB, nil
		}
	}

	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "word/") {
			return DOCX, nil
		}
	}

	return Unknown, nil
}
