package service

import (
	"errors"
	"fmt"
	"strings"
)

// Task represents a single to-do item.
type Task struct {
	ID        int64
	Text      string
	Completed bool
}

// ErrEmptyText is returned when task text is empty after trimming.
var ErrEmptyText = errors.New("task text cannot be empty")

// lineBreaks turns line breaks into spaces; a task is always one line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// ValidateText trims text, folds line breaks into spaces and returns
// ErrEmptyText if nothing is left.
func ValidateText(text string) (string, error) {
	text = strings.TrimSpace(lineBreaks.Replace(text))
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}

// StorageError reports that the persistent store could not be opened,
// read or written.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsStorageError reports whether err is or wraps a *StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
