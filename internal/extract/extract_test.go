package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"
)

const docxBody = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>Jane Smith</w:t></w:r></w:p><w:p><w:r><w:t>Senior Software Engineer</w:t></w:r></w:p></w:body></w:document>`

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestFromBytes_DocxExtractsParagraphs(t *testing.T) {
	data := buildDocx(t, docxBody)

	res, err := FromBytes(context.Background(), data, mimeDOCX, "resume.docx", nil)
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	want := "Jane Smith\nSenior Software Engineer"
	if res.Text != want {
		t.Fatalf("text = %q, want %q", res.Text, want)
	}
	if res.PageCount != 1 {
		t.Fatalf("pageCount = %d, want 1", res.PageCount)
	}
}

func TestFromBytes_DocxNormalizesFromZipMime(t *testing.T) {
	data := buildDocx(t, docxBody)

	if _, err := FromBytes(context.Background(), data, "application/zip", "resume.docx", nil); err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
}

func TestFromBytes_DocxNormalizesFromOctetStream(t *testing.T) {
	data := buildDocx(t, docxBody)

	if _, err := FromBytes(context.Background(), data, "application/octet-stream", "resume.docx", nil); err != nil {
		t.Fatalf("expected docx to extract from octet-stream mime, got error: %v", err)
	}
}

func TestFromBytes_RealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = FromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip", nil)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestFromBytes_Validation(t *testing.T) {
	ctx := context.Background()

	if _, err := FromBytes(ctx, nil, mimePDF, "resume.pdf", nil); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("empty payload: expected ErrEmptyFile, got %v", err)
	}

	oversized := make([]byte, MaxFileSize+1)
	if _, err := FromBytes(ctx, oversized, mimePDF, "resume.pdf", nil); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("oversized payload: expected ErrFileTooLarge, got %v", err)
	}

	if _, err := FromBytes(ctx, []byte("plain text"), "text/plain", "resume.txt", nil); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("unsupported mime: expected ErrUnsupportedType, got %v", err)
	}
}

func TestFromBytes_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := FromBytes(ctx, buildDocx(t, docxBody), mimeDOCX, "resume.docx", nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFromBytes_DocxReportsProgress(t *testing.T) {
	var seen []int
	_, err := FromBytes(context.Background(), buildDocx(t, docxBody), mimeDOCX, "resume.docx", func(p int) {
		seen = append(seen, p)
	})
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	if len(seen) == 0 {
		t.Fatal("expected progress callbacks")
	}
	for i := 1; i < len(seen); i++ {
		if seen[i] < seen[i-1] {
			t.Fatalf("progress decreased: %v", seen)
		}
	}
	if last := seen[len(seen)-1]; last != 100 {
		t.Fatalf("final progress = %d, want 100", last)
	}
}

func TestStripDocxXML_BreaksOnParagraphsAndBr(t *testing.T) {
	raw := `<d><p><t>one</t></p><p><t>two</t><br/><t>three</t></p></d>`
	got := stripDocxXML(raw)
	want := "one\ntwo\nthree"
	if got != want {
		t.Fatalf("stripDocxXML = %q, want %q", got, want)
	}
}

func TestNormalizeMimeType(t *testing.T) {
	cases := []struct {
		name     string
		mime     string
		fileName string
		data     []byte
		want     string
	}{
		{"explicit pdf", "application/pdf", "cv.pdf", nil, mimePDF},
		{"charset suffix stripped", "Application/PDF; charset=utf-8", "cv.pdf", nil, mimePDF},
		{"pdf magic bytes", "", "upload", []byte("%PDF-1.7 rest"), mimePDF},
		{"extension fallback pdf", "", "cv.pdf", []byte("corrupt"), mimePDF},
		{"extension fallback docx", "application/octet-stream", "cv.docx", []byte("corrupt"), mimeDOCX},
		{"unknown stays unknown", "text/plain", "cv.txt", nil, "text/plain"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeMimeType(tc.mime, tc.fileName, tc.data); got != tc.want {
				t.Fatalf("normalizeMimeType = %q, want %q", got, tc.want)
			}
		})
	}
}
