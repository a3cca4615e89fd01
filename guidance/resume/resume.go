// Package resume predicts careers from uploaded PDF resumes.
package resume

import (
	"time"

	"github.com/Abraxas-365/pathway/pkg/kernel"
)

const (
	MaxFileSize = 10 * 1024 * 1024

	// MaxStoredText caps the extracted text kept with the resume, in characters
	MaxStoredText = 5000

	// The profile a resume is scored with; only skills come from the document
	AssumedEducation = "Bachelor"
	AssumedYears     = 2
)

// ParsedData is what keyword extraction found in a resume
type ParsedData struct {
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
}

type Resume struct {
	ID            kernel.ResumeID `json:"id"`
	UserID        kernel.UserID   `json:"-"`
	FileName      string          `json:"file_name"`
	FilePath      string          `json:"file_path"`
	FileSize      int64           `json:"file_size"`
	ExtractedText string          `json:"extracted_text"`
	ParsedData    ParsedData      `json:"parsed_data"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Upload is a file received from a client
type Upload struct {
	FileName string
	Data     []byte
}

// truncate keeps the first n characters of s
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// StoredText is the extracted text as persisted with the resume
func StoredText(text string) string {
	return truncate(text, MaxStoredText)
}
