package resume

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestExtractPlainText(t *testing.T) {
	text, err := Extract("cv.txt", "", []byte("I am a great engineer."))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if text != "I am a great engineer." {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestExtractLatin1Fallback(t *testing.T) {
	// "café" in ISO-8859-1 is not valid UTF-8.
	text, err := Extract("cv.txt", "text/plain", []byte{'c', 'a', 'f', 0xe9})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if text != "café" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestDetectUsesContentTypeWithoutExtension(t *testing.T) {
	kind, err := Detect("resume", "application/pdf; charset=binary")
	if err != nil || kind != KindPDF {
		t.Fatalf("expected pdf, got %q %v", kind, err)
	}
	kind, err = Detect("RESUME.TXT", "")
	if err != nil || kind != KindText {
		t.Fatalf("expected txt, got %q %v", kind, err)
	}
}

func TestExtractRejectsUnsupportedType(t *testing.T) {
	_, err := Extract("cv.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", []byte("x"))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestExtractRejectsGarbagePDF(t *testing.T) {
	_, err := Extract("cv.pdf", "application/pdf", []byte("this is not a pdf at all"))
	if !errors.Is(err, ErrUnreadablePDF) {
		t.Fatalf("expected ErrUnreadablePDF, got %v", err)
	}
}

func TestExtractPDFText(t *testing.T) {
	text, err := Extract("cv.pdf", "application/pdf", buildPDF("Hello Resume"))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(text, "Hello") {
		t.Fatalf("expected page text, got %q", text)
	}
}

func TestExtractPDFSkipsUnreadablePage(t *testing.T) {
	// The second page points at a content stream that does not exist.
	text, err := Extract("cv.pdf", "application/pdf", buildPDF("PageOne", ""))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(text, "PageOne") {
		t.Fatalf("expected first page text, got %q", text)
	}
}

func TestExtractStripsNUL(t *testing.T) {
	// UTF-16LE with a byte order mark, as saved by some Windows editors.
	text, err := Extract("cv.txt", "text/plain", []byte{0xff, 0xfe, 'H', 0, 'i', 0})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if strings.ContainsRune(text, 0) {
		t.Fatalf("NUL left in %q", text)
	}
	if !strings.HasSuffix(text, "Hi") {
		t.Fatalf("unexpected text %q", text)
	}
}

// buildPDF writes a document with one page per line and correct xref
// offsets. An empty line produces a page whose content reference dangles.
func buildPDF(lines ...string) []byte {
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}
	kids := make([]string, 0, len(lines))
	for _, line := range lines {
		pageNum := len(objects) + 1
		contentRef := pageNum + 1
		if line == "" {
			contentRef = 99
		}
		kids = append(kids, fmt.Sprintf("%d 0 R", pageNum))
		content := fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", line)
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents %d 0 R /Resources << /Font << /F1 3 0 R >> >> >>", contentRef),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}
	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(lines))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}
