package output

import (
	"bytes"
	"testing"

	"todopad/internal/service"
)

func TestFormatTask(t *testing.T) {
	var buf bytes.Buffer
	FormatTask(&buf, 3, service.Task{Text: "Buy milk", Completed: true})
	if got := buf.String(); got != "   3  [✔] Buy milk\n" {
		t.Errorf("unexpected line %q", got)
	}
}

func TestFormatTasks(t *testing.T) {
	var buf bytes.Buffer
	FormatTasks(&buf, []service.Task{
		{ID: 7, Text: "Buy milk"},
		{ID: 9, Text: "two\nlines", Completed: true},
	})
	want := "   1  [ ] Buy milk\n   2  [✔] two lines\n"
	if got := buf.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
