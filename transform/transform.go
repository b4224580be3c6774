package transform

import (
	"errors"
	"fmt"
)

var (
	ErrTransform = errors.New("transform error")
	ErrUnknown   = errors.New("unknown transform")
)

// Transform is a named reversible text function.  Implementations hold no
// mutable state and may be shared freely.
type Transform interface {
	String() string
	Encode(string) (string, error)
	Decode(string) (string, error)
}

// Direction selects which half of a transform is applied.
type Direction int

const (
	Encode Direction = iota
	Decode
)

func (d Direction) String() string {
	switch d {
	case Encode:
		return "encode"
	case Decode:
		return "decode"
	default:
		return fmt.Sprintf("<direction %d>", int(d))
	}
}

func (d Direction) apply(t Transform, text string) (string, error) {
	switch d {
	case Encode:
		return t.Encode(text)
	case Decode:
		return t.Decode(text)
	}
	return "", fmt.Errorf("%w: bad direction %s", ErrTransform, d)
}

// Error records which transform of a pipeline failed.
type Error struct {
	Transform string
	Index     int
	Direction Direction
	Err       error
}

func (e *Error) Unwrap() []error {
	return []error{ErrTransform, e.Err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s (#%d): %v", e.Transform, e.Direction, e.Index, e.Err)
}
