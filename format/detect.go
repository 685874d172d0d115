// Package format provides input format detection for ocrgrid.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PNG indicates a PNG image.
	PNG
	// JPEG indicates a JPEG image.
	JPEG
	// BMP indicates a Windows bitmap image.
	BMP
	// TIFF indicates a TIFF image.
	TIFF
	// WebP indicates a WebP image.
	WebP
	// HOCR indicates hOCR output from an OCR engine.
	HOCR
	// TSV indicates Tesseract TSV output.
	TSV
	// Textract indicates an Amazon Textract DetectDocumentText JSON response.
	Textract
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case BMP:
		return "BMP"
	case TIFF:
		return "TIFF"
	case WebP:
		return "WebP"
	case HOCR:
		return "hOCR"
	case TSV:
		return "TSV"
	case Textract:
		return "Textract"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case BMP:
		return ".bmp"
	case TIFF:
		return ".tiff"
	case WebP:
		return ".webp"
	case HOCR:
		return ".hocr"
	case TSV:
		return ".tsv"
	case Textract:
		return ".json"
	default:
		return ""
	}
}

// IsImage reports whether the format is an image that must go through OCR.
func (f Format) IsImage() bool {
	switch f {
	case PNG, JPEG, BMP, TIFF, WebP:
		return true
	default:
		return false
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".bmp":
		return BMP
	case ".tif", ".tiff":
		return TIFF
	case ".webp":
		return WebP
	case ".hocr", ".html", ".htm":
		return HOCR
	case ".tsv":
		return TSV
	case ".json":
		return Textract
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine format.
// This provides more reliable detection than extension-based detection.
// Returns Unknown if the format cannot be determined from the bytes alone.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return PNG
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return JPEG
	case bytes.HasPrefix(data, []byte("BM")) && len(data) >= 14:
		return BMP
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return TIFF
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && string(data[8:12]) == "WEBP":
		return WebP
	case detectTSVMagic(data):
		return TSV
	case detectHOCRMagic(data):
		return HOCR
	case detectTextractMagic(data):
		return Textract
	}
	return Unknown
}

// detectTSVMagic checks for the Tesseract TSV header row.
func detectTSVMagic(data []byte) bool {
	data = bytes.TrimLeft(data, "\ufeff \t\r\n")
	return bytes.HasPrefix(data, []byte("level\tpage_num\t"))
}

// detectHOCRMagic checks if the data looks like HTML carrying hOCR classes.
func detectHOCRMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return false
	}

	head := strings.ToLower(string(data[:min(4096, len(data))]))
	if !strings.HasPrefix(head, "<!doctype html") &&
		!strings.HasPrefix(head, "<html") &&
		!strings.HasPrefix(head, "<?xml") {
		return false
	}
	return strings.Contains(head, "ocr_page") || strings.Contains(head, "ocr-system") ||
		strings.Contains(head, "ocr-capabilities")
}

// detectTextractMagic checks for a JSON object listing Textract blocks.
func detectTextractMagic(data []byte) bool {
	data = bytes.TrimLeft(data, "\ufeff \t\r\n")
	if !bytes.HasPrefix(data, []byte("{")) {
		return false
	}
	head := data[:min(4096, len(data))]
	return bytes.Contains(head, []byte(`"Blocks"`)) && bytes.Contains(head, []byte(`"BlockType"`))
}

// DetectFromReader inspects the content to determine format, falling back
// to the filename extension when the content is inconclusive.
func DetectFromReader(r io.ReaderAt, filename string) (Format, error) {
	magic := make([]byte, 4096)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}

	if f := DetectFromMagic(magic[:n]); f != Unknown {
		return f, nil
	}
	return Detect(filename), nil
}
