package service

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidateText_Trims(t *testing.T) {
	got, err := ValidateText("  Buy milk \t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Buy milk" {
		t.Errorf("expected %q, got %q", "Buy milk", got)
	}
}

func TestValidateText_FoldsLineBreaks(t *testing.T) {
	for in, want := range map[string]string{
		"a\nb":         "a b",
		"a\r\nb":       "a b",
		"a\rb":         "a b",
		"\nBuy milk\n": "Buy milk",
	} {
		got, err := ValidateText(in)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: expected %q, got %q", in, want, got)
		}
	}
}

func TestValidateText_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\r\n", "\t"} {
		if _, err := ValidateText(in); !errors.Is(err, ErrEmptyText) {
			t.Errorf("%q: expected ErrEmptyText, got %v", in, err)
		}
	}
}

func TestIsStorageError(t *testing.T) {
	err := fmt.Errorf("add: %w", &StorageError{Op: "create", Err: errors.New("disk full")})
	if !IsStorageError(err) {
		t.Error("expected wrapped StorageError to be detected")
	}
	if IsStorageError(ErrEmptyText) {
		t.Error("ErrEmptyText is not a storage error")
	}
}
