package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"todopad/internal/service"
	"todopad/internal/testutil"
)

func sampleTasks() []service.Task {
	return []service.Task{
		{ID: 1, Text: "Buy milk", Completed: true},
		{ID: 2, Text: "Pay rent", Completed: false},
	}
}

func TestLine(t *testing.T) {
	if got := Line(service.Task{Text: "Buy milk", Completed: true}); got != "[✔] Buy milk" {
		t.Errorf("unexpected done line %q", got)
	}
	if got := Line(service.Task{Text: "Pay rent"}); got != "[ ] Pay rent" {
		t.Errorf("unexpected open line %q", got)
	}
}

func TestWriteText_Golden(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleTasks()); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	testutil.Golden(t, "buy_milk_pay_rent", buf.Bytes())
}

func TestWriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, nil); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected empty output, got %q", buf.String())
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, sampleTasks()); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("expected PDF header, got %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{"": Text, "TXT": Text, "text": Text, "pdf": PDF} {
		got, err := ParseFormat(name)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", name, got, err, want)
		}
	}
	if _, err := ParseFormat("docx"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFormatFor(t *testing.T) {
	if FormatFor("tasks.PDF") != PDF {
		t.Error("expected PDF for .PDF extension")
	}
	if FormatFor("tasks.txt") != Text || FormatFor("tasks") != Text {
		t.Error("expected Text for other extensions")
	}
}

func TestToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	if err := ToFile(path, Text, sampleTasks()); err != nil {
		t.Fatalf("ToFile failed: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "[✔] Buy milk\n[ ] Pay rent\n" {
		t.Errorf("unexpected file contents %q", got)
	}
}

func TestToFile_Unwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "tasks.txt")
	err := ToFile(path, Text, sampleTasks())

	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("expected *WriteError, got %T: %v", err, err)
	}
	if we.Path != path {
		t.Errorf("expected path %s, got %s", path, we.Path)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("expected no file at %s", path)
	}
}
