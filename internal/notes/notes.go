// Package notes loads and saves free-form text notes.
// Notes have no relationship with the task store.
package notes

import (
	"fmt"
	"io"
	"os"
	"strings"

	"todopad/internal/fileutil"
)

// Load reads the note at path.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not open note: %w", err)
	}
	return string(data), nil
}

// Save writes text to path, replacing any existing file atomically.
// A trailing newline is added if text lacks one.
func Save(path, text string) error {
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	err := fileutil.WriteAtomic(path, 0644, func(w io.Writer) error {
		_, err := io.WriteString(w, text)
		return err
	})
	if err != nil {
		return fmt.Errorf("could not save note: %w", err)
	}
	return nil
}
