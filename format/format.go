package format

import (
	"errors"
	"fmt"
)

// Format selects how names and literals are written inside a record.
type Format int

const (
	// EscapedFormat prefixes delimiters inside names and literals with '\'.
	EscapedFormat Format = iota
	// LegacyFormat writes names and literals verbatim and collapses
	// doubled brackets in each record.
	LegacyFormat
)

// Suffix is the file extension of hippo documents.
const Suffix = ".hippo"

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"e":       EscapedFormat,
		"escaped": EscapedFormat,
		"v2":      EscapedFormat,
		"l":       LegacyFormat,
		"legacy":  LegacyFormat,
		"v1":      LegacyFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case EscapedFormat:
		return []byte("escaped"), nil
	case LegacyFormat:
		return []byte("legacy"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsEscaped() bool { return f == EscapedFormat }
func (f Format) IsLegacy() bool  { return f == LegacyFormat }

// Version is the on-disk format version number.
func (f Format) Version() int {
	switch f {
	case LegacyFormat:
		return 1
	default:
		return 2
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{EscapedFormat, LegacyFormat}
}
