package ir

import (
	"errors"
	"fmt"
)

var (
	ErrConstruction = errors.New("construction error")
	ErrNotFound     = errors.New("not found")
)

// NotFoundError is returned by the name lookups.  Scope describes what was
// searched, such as `container "Settings"`.
type NotFoundError struct {
	Scope string
	Name  string
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q in %s", ErrNotFound, e.Name, e.Scope)
}
