package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/hippo-format/hippo/token"
)

var (
	ErrParse     = errors.New("parse error")
	ErrMalformed = fmt.Errorf("%w: malformed input", ErrParse)
)

// Error is a malformed input error at a position.  Err, when set, is the
// underlying cause such as token.ErrBadEscape.
type Error struct {
	Pos *token.Pos
	Msg string
	Err error
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformed}
	}
	return []error{ErrMalformed, e.Err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s at %s", ErrMalformed, e.Msg, e.Pos)
}
