package format

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{DOCX, "DOCX"},
		{ODT, "ODT"},
		{HTML, "HTML"},
		{Text, "Text"},
		{Image, "Image"},
		{EPUB, "EPUB"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{DOCX, ".docx"},
		{ODT, ".odt"},
		{HTML, ".html"},
		{Text, ".txt"},
		{Image, ".png"},
		{EPUB, ".epub"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"quiz.docx", DOCX},
		{"quiz.DOCX", DOCX},
		{"quiz.Docx", DOCX},
		{"quiz.odt", ODT},
		{"quiz.ODT", ODT},
		{"quiz.html", HTML},
		{"quiz.HTM", HTML},
		{"quiz.txt", Text},
		{"scan.png", Image},
		{"scan.JPG", Image},
		{"scan.jpeg", Image},
		{"scan.tif", Image},
		{"scan.tiff", Image},
		{"scan.bmp", Image},
		{"scan.webp", Image},
		{"quiz.epub", EPUB},
		{"quiz.pdf", Unknown},
		{"quiz.doc", Unknown},
		{"quiz", Unknown},
		{"", Unknown},
		{"/path/to/file.docx", DOCX},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"docx", DOCX},
		{".DOCX", DOCX},
		{"odt", ODT},
		{"htm", HTML},
		{"text", Text},
		{" image ", Image},
		{"tiff", Image},
		{"EPUB", EPUB},
	}
	for _, tt := range tests {
		got, err := Parse(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("Parse(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
	}

	if _, err := Parse("pdf"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Parse(pdf) error = %v, want ErrUnsupported", err)
	}
}

func TestDetectFromMagic(t *testing.T) {
	bmp := append([]byte("BM"), make([]byte, 16)...)
	bmp[14] = 40

	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"ZIP needs inspection", []byte("PK\x03\x04\x00\x00\x00\x00"), Unknown},
		{"HTML with DOCTYPE", []byte("<!DOCTYPE html>\n<html>"), HTML},
		{"HTML with html tag", []byte("<html><head>"), HTML},
		{"HTML with whitespace before DOCTYPE", []byte("  \n  <!DOCTYPE HTML PUBLIC"), HTML},
		{"HTML with BOM", []byte("\xef\xbb\xbf<html>"), HTML},
		{"XHTML", []byte(`<?xml version="1.0"?><html xmlns="http://www.w3.org/1999/xhtml">`), HTML},
		{"PNG", []byte("\x89PNG\r\n\x1a\n\x00\x00"), Image},
		{"JPEG", []byte("\xff\xd8\xff\xe0\x00\x10JFIF"), Image},
		{"TIFF little endian", []byte("II*\x00\x08\x00"), Image},
		{"TIFF big endian", []byte("MM\x00*\x00\x08"), Image},
		{"GIF", []byte("GIF89a\x01\x00"), Image},
		{"WEBP", []byte("RIFF\x24\x00\x00\x00WEBPVP8 "), Image},
		{"BMP", bmp, Image},
		{"BM text", []byte("BMW owners quiz"), Unknown},
		{"RIFF audio", []byte("RIFF\x24\x00\x00\x00WAVEfmt "), Unknown},
		{"empty data", []byte{}, Unknown},
		{"short data", []byte{0x50, 0x4B}, Unknown},
		{"text file", []byte("1. What is your name?"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func buildZIP(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range []string{"mimetype", "[Content_Types].xml", "word/document.xml", "content.xml"} {
		content, ok := files[name]
		if !ok {
			continue
		}
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
		w.Write([]byte(content))
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

func TestDetectFromReader(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{
			name: "DOCX",
			data: buildZIP(t, map[string]string{"[Content_Types].xml": "<Types/>", "word/document.xml": "<w:document/>"}),
			want: DOCX,
		},
		{
			name: "ODT",
			data: buildZIP(t, map[string]string{"mimetype": "application/vnd.oasis.opendocument.text", "content.xml": "<x/>"}),
			want: ODT,
		},
		{
			name: "EPUB",
			data: buildZIP(t, map[string]string{"mimetype": "application/epub+zip", "META-INF/container.xml": "<container/>"}),
			want: EPUB,
		},
		{
			name: "ODF spreadsheet",
			data: buildZIP(t, map[string]string{"mimetype": "application/vnd.oasis.opendocument.spreadsheet", "content.xml": "<x/>"}),
			want: Unknown,
		},
		{
			name: "HTML",
			data: []byte("<!DOCTYPE html>\n<html><head><title>Test</title></head><body></body></html>"),
			want: HTML,
		},
		{
			name: "PNG",
			data: []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"),
			want: Image,
		},
		{
			name: "plain text",
			data: []byte("Hello, World! This is plain text."),
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFromReader(bytes.NewReader(tt.data), int64(len(tt.data)))
			if err != nil {
				t.Fatalf("DetectFromReader() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFromReader() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader_CorruptZIP(t *testing.T) {
	data := []byte("PK\x03\x04 truncated archive")
	if _, err := DetectFromReader(bytes.NewReader(data), int64(len(data))); err == nil {
		t.Error("expected error for corrupt ZIP")
	}
}
