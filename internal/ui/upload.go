package ui

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// maxUploadBytes caps uploaded documents. The HTTP middleware enforces the
// same bound on the whole request body.
const maxUploadBytes = 1 << 20 // 1MB

// readUpload returns the plain text of an uploaded document. Only .txt and
// .md are accepted: extracting text from anything else (PDF, docx, ...) is a
// collaborator's job, and this system takes the extracted text as input.
func readUpload(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	switch ext {
	case ".txt", ".md":
	default:
		return "", fmt.Errorf("unsupported file type %q: upload the extracted plain text as .txt or .md", ext)
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	b, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(b) > maxUploadBytes {
		return "", fmt.Errorf("file too large: the limit is %d bytes", maxUploadBytes)
	}

	return strings.ToValidUTF8(string(b), "�"), nil
}
