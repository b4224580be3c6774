package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadEscape    = errors.New("bad escape")
	ErrUnterminated = errors.New("unterminated")
)

// EscapeErr reports a problem with an escape sequence at a position.
type EscapeErr struct {
	Err error
	Pos *Pos
}

func (e *EscapeErr) Unwrap() error {
	return e.Err
}

func (e *EscapeErr) Error() string {
	if e.Pos == nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s at %s", e.Err, e.Pos)
}
