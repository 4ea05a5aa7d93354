// Package resume turns uploaded resume files into plain text.
package resume

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"
)

// Kind identifies a supported resume format.
type Kind string

const (
	KindText Kind = "txt"
	KindPDF  Kind = "pdf"
)

var (
	// ErrUnsupportedType is returned for files that are neither text nor PDF.
	ErrUnsupportedType = errors.New("unsupported resume type")
	// ErrUnreadablePDF is returned when the upload cannot be parsed as a PDF.
	ErrUnreadablePDF = errors.New("unreadable pdf")
)

// Detect picks the format from the file extension, falling back to the
// declared content type.
func Detect(filename, contentType string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return KindText, nil
	case ".pdf":
		return KindPDF, nil
	}
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	switch mediaType {
	case "text/plain":
		return KindText, nil
	case "application/pdf":
		return KindPDF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedType, filename)
}

// Extract returns the text content of an uploaded resume.
func Extract(filename, contentType string, data []byte) (string, error) {
	kind, err := Detect(filename, contentType)
	if err != nil {
		return "", err
	}
	var text string
	if kind == KindPDF {
		if text, err = extractPDF(data); err != nil {
			return "", err
		}
	} else {
		text = decodeText(data)
	}
	// Postgres TEXT columns reject NUL bytes.
	return strings.ReplaceAll(text, "\x00", ""), nil
}

// decodeText reads UTF-8 and falls back to Latin-1, which maps every byte.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "�")
	}
	return string(decoded)
}

// extractPDF concatenates the text of every page. Pages without
// extractable text contribute nothing.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrUnreadablePDF, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		sb.WriteString(pageText(reader.Page(i)))
	}
	return sb.String(), nil
}

func pageText(page pdf.Page) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	if page.V.IsNull() {
		return ""
	}
	content, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return content
}
