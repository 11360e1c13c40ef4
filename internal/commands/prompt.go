package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LinePrompter asks for confirmation on a line-oriented terminal.
// Only "y" or "yes" (any case) confirms; EOF declines.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter reading answers from in and writing
// questions to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Confirm implements controller.Prompter.
func (p *LinePrompter) Confirm(title, message string) bool {
	fmt.Fprintf(p.out, "%s\n%s [y/N]: ", title, message)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
