package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

// ErrTaskRefRequired indicates no task number was provided.
var ErrTaskRefRequired = errors.New("task number required")

// ParseTaskRef parses the 1-based task number shown by the list command
// and returns the matching snapshot index.
// Whether the index exists is left to the controller.
func ParseTaskRef(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskRefRequired
	}

	ref := args[0]
	if !isAllDigits(ref) {
		return 0, fmt.Errorf("invalid task number: %s", ref)
	}
	num, err := strconv.Atoi(ref)
	if err != nil || num < 1 {
		return 0, fmt.Errorf("invalid task number: %s", ref)
	}
	return num - 1, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// refErrorText formats a ParseTaskRef failure for stderr.
func refErrorText(err error) string {
	if errors.Is(err, ErrTaskRefRequired) {
		return "error: task number required"
	}
	return fmt.Sprintf("error: %v", err)
}
