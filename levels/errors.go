package levels

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLevel = errors.New("levels: invalid level")
	ErrNotFound     = errors.New("levels: level not found")
)

// LoadError describes why a level could not be turned into a world. Row and
// Col are -1 when they do not apply.
type LoadError struct {
	Level  int
	Row    int
	Col    int
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("levels: level %d: %s", e.Level, e.Reason)
	switch {
	case e.Row >= 0 && e.Col >= 0:
		msg += fmt.Sprintf(" at row %d col %d", e.Row, e.Col)
	case e.Row >= 0:
		msg += fmt.Sprintf(" (rows=%d)", e.Row)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidLevel, e.Err}
	}
	return []error{ErrInvalidLevel}
}
