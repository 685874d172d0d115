// Package ocr produces positioned word tokens from images using the
// Tesseract OCR engine via gosseract.
//
// Tesseract support is compiled in with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract and its development headers. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
//
// Without the tag every Client operation returns ErrOCRNotEnabled. Image
// inspection ([Inspect], [PrepareImage]) works in both builds.
package ocr
