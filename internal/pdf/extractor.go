package pdf

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// TextExtractor pulls plain text out of PDF documents
type TextExtractor struct{}

func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the text of every page that has any, joined by a space
func (TextExtractor) ExtractText(pdfData []byte) (string, error) {
	doc, err := fitz.NewFromMemory(pdfData)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	pages := make([]string, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}

	return strings.Join(pages, " "), nil
}
