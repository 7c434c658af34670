// Package ocr provides Optical Character Recognition (OCR) functionality using Tesseract.
//
// This package defines the Recognizer interface the row extractor talks to,
// the per-column recognition options, and the in-memory cell preparation
// shared by engines. The Tesseract implementation (via gosseract/v2) lives in
// the tesseract subpackage so that callers which only need the interface do not
// link against libtesseract.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr
//   - macOS: brew install tesseract
//   - Windows: Download from https://github.com/UB-Mannheim/tesseract/wiki
//
// Language data files are required for each language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr-eng (for English)
//   - Other languages: tesseract-ocr-<lang> packages
//
// A non-standard data directory can be passed as tesseract.Config.TessdataPrefix.
//
// # Recognition Options
//
// Leaderboard cells hold one line each, so callers normally set
// Options.SingleLine. Numeric columns restrict output with the Digits*
// whitelists; the nickname column is left unrestricted.
//
// # Preprocessing
//
// Every cell is optionally rescaled (tesseract.Config.Scale), converted to grayscale and
// encoded as PNG in memory before being handed to Tesseract. No temporary files
// are written.
//
// # Concurrency
//
// A tesseract.Engine owns one Tesseract client. Calls on the same Engine are serialized;
// parallel extraction creates one Engine per worker through a Factory.
package ocr
