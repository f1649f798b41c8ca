// Package document loads input files as plain text.
//
// Plain files are read verbatim. Files with an .html or .htm extension are
// parsed and reduced to their visible text.
package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"textdigest/internal/domain"
)

var (
	ErrNotFound = errors.New("input file not found")
	ErrIsDir    = errors.New("input path is a directory")
)

// Read loads the document at path.
func Read(path string) (domain.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Document{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		return domain.Document{}, fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		return domain.Document{}, fmt.Errorf("%w: %s", ErrIsDir, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("read input: %w", err)
	}

	text := string(raw)
	if isHTML(path) {
		text, err = htmlText(text)
		if err != nil {
			return domain.Document{}, fmt.Errorf("extract HTML text: %w", err)
		}
	}

	return domain.Document{Path: path, Text: text}, nil
}

// Stem returns the file name of path without directory and extension.
func Stem(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	default:
		return false
	}
}
