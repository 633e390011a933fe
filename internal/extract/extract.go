// Package extract is the text-extraction boundary: it turns uploaded PDF or
// DOCX bytes into plain text for the parsing pipeline. Validation failures
// surface here, never in the downstream parsers.
package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	// MaxFileSize rejects oversized uploads before any decoding work.
	MaxFileSize = 10 << 20
)

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file exceeds 10MB limit")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// Result is the outcome of a successful extraction.
type Result struct {
	Text      string `json:"text"`
	PageCount int    `json:"pageCount"`
}

// ProgressFunc receives extraction progress in percent. Values are
// non-decreasing within [0,100]; the callback may run zero or more times
// before FromBytes returns.
type ProgressFunc func(percent int)

// FromBytes extracts plain text from an in-memory PDF or DOCX payload.
// Libraries used: github.com/ledongthuc/pdf (PDF) and archive/zip +
// encoding/xml (DOCX).
func FromBytes(ctx context.Context, data []byte, mimeType string, fileName string, onProgress ProgressFunc) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if len(data) == 0 {
		return Result{}, ErrEmptyFile
	}
	if len(data) > MaxFileSize {
		return Result{}, ErrFileTooLarge
	}

	report := func(percent int) {
		if onProgress != nil {
			onProgress(percent)
		}
	}

	normalized := normalizeMimeType(mimeType, fileName, data)
	switch normalized {
	case mimePDF:
		return extractPDF(ctx, data, report)
	case mimeDOCX:
		return extractDOCX(data, report)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedType, normalized)
	}
}

func extractPDF(ctx context.Context, data []byte, report ProgressFunc) (Result, error) {
	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{}, fmt.Errorf("open pdf: %w", err)
	}
	report(50)

	pageCount := pdfReader.NumPage()
	var sb strings.Builder
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not fail the document.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n\n")
		report(50 + pageNum*50/pageCount)
	}

	return Result{Text: strings.TrimSpace(sb.String()), PageCount: pageCount}, nil
}

func extractDOCX(data []byte, report ProgressFunc) (Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{}, fmt.Errorf("open docx: %w", err)
	}
	report(50)

	var docFile *zip.File
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return Result{}, errors.New("document.xml file not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return Result{}, err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return Result{}, err
	}
	report(100)

	return Result{Text: stripDocxXML(string(raw)), PageCount: 1}, nil
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if last := buf.Len(); last > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func normalizeMimeType(mimeType string, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if clean != "" && clean != "application/zip" && clean != "application/octet-stream" {
		return clean
	}

	if mapped := mapFromContent(data); mapped != "" {
		return mapped
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".pdf":
		return mimePDF
	case ".docx":
		return mimeDOCX
	default:
		return clean
	}
}

// mapFromContent sniffs the payload when the declared mime type is generic.
func mapFromContent(data []byte) string {
	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return mimePDF
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return mimeDOCX
		}
	}
	return ""
}
