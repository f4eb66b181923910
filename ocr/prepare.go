package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WEBP decoder
)

// MinWidth is the width narrow scans are upscaled to before recognition.
// Tesseract reads phone photos and low resolution scans far better at
// roughly 300 DPI for a letter-size page.
const MinWidth = 1600

// maxPixels bounds the decoded image size.
const maxPixels = 64 << 20

// Prepare decodes a PNG, JPEG, GIF, TIFF, BMP or WEBP image, upscales it
// to MinWidth if narrower, converts it to grayscale and re-encodes it as
// PNG for the OCR engine.
func Prepare(data []byte) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > maxPixels {
		return nil, fmt.Errorf("image size %dx%d out of range", cfg.Width, cfg.Height)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	gray := grayscale(src, MinWidth)

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}
	return buf.Bytes(), nil
}

// grayscale returns src as a grayscale image at least minWidth wide.
func grayscale(src image.Image, minWidth int) *image.Gray {
	b := src.Bounds()
	if b.Dx() >= minWidth {
		dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		return dst
	}

	height := b.Dy() * minWidth / b.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewGray(image.Rect(0, 0, minWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
