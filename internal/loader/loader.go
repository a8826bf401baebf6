// Package loader reads the input document into memory as a single
// string, with PDF support.
package loader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"studygen/internal/fault"
)

// Load returns the full text content of the file at path. Files ending
// in .pdf are extracted page by page; everything else is treated as
// UTF-8 plain text.
func Load(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w: %w", path, fault.ErrFileAccess, err)
	}

	text := string(content)
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err = extractPDF(content)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w: %w", path, fault.ErrFileAccess, err)
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("input file %s is empty: %w", path, fault.ErrFileAccess)
	}
	return text, nil
}

func extractPDF(content []byte) (string, error) {
	reader := bytes.NewReader(content)
	pdfReader, err := pdf.NewReader(reader, int64(len(content)))
	if err != nil {
		return "", err
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()

	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() || page.V.Key("Contents").Kind() == pdf.Null {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip pages that fail to extract
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}
