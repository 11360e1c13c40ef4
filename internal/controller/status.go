package controller

import "fmt"

// Level classifies a status message.
type Level int

const (
	// None means nothing happened, e.g. a declined confirmation.
	None Level = iota
	// Info reports a completed action.
	Info
	// Warning reports rejected input. No state changed.
	Warning
	// Error reports a storage or file failure. No state changed.
	Error
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "none"
	}
}

// Status is the user-visible outcome of an action.
// Err holds the cause of an Error status.
type Status struct {
	Level Level
	Text  string
	Err   error
}

func info(format string, args ...any) Status    { return newStatus(Info, format, args...) }
func warning(format string, args ...any) Status { return newStatus(Warning, format, args...) }

func failure(err error, format string, args ...any) Status {
	s := newStatus(Error, format, args...)
	s.Err = err
	return s
}

func newStatus(level Level, format string, args ...any) Status {
	return Status{Level: level, Text: fmt.Sprintf(format, args...)}
}
