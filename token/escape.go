package token

import "strings"

const (
	RecordOpen  = '{'
	RecordClose = '}'
	NodeOpen    = '('
	NodeClose   = ')'
	ValueOpen   = '['
	ValueClose  = ']'
	EscapeChar  = '\\'
	Terminator  = '\n'
)

// IsDelim reports whether c is one of the grammar delimiters.
func IsDelim(c byte) bool {
	switch c {
	case RecordOpen, RecordClose, NodeOpen, NodeClose, ValueOpen, ValueClose:
		return true
	}
	return false
}

// NeedsEscape reports whether s must be escaped to be written as a name or
// literal in the escaped format.
func NeedsEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if IsDelim(c) || c == EscapeChar || c == '\n' || c == '\r' {
			return true
		}
	}
	return false
}

// Escape returns s with delimiters, the escape character and line breaks
// escaped.
func Escape(s string) string {
	if !NeedsEscape(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case IsDelim(c) || c == EscapeChar:
			b.WriteByte(EscapeChar)
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Unescape reverses Escape.  Errors are reported relative to the start of s.
func Unescape(s string) (string, error) {
	if strings.IndexByte(s, EscapeChar) == -1 {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != EscapeChar {
			b.WriteByte(c)
			continue
		}
		if i == len(s)-1 {
			return "", &EscapeErr{Err: ErrUnterminated}
		}
		i++
		r, err := Unescaped(s[i])
		if err != nil {
			return "", err
		}
		b.WriteByte(r)
	}
	return b.String(), nil
}

// Unescaped maps the byte following an escape character to the byte it
// stands for.
func Unescaped(c byte) (byte, error) {
	switch {
	case c == 'n':
		return '\n', nil
	case c == 'r':
		return '\r', nil
	case IsDelim(c) || c == EscapeChar:
		return c, nil
	}
	return 0, &EscapeErr{Err: ErrBadEscape}
}

// Collapse applies the legacy normalization of a record: every `[[` becomes
// `[` and then every `]]` becomes `]`.
func Collapse(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "[[", "["), "]]", "]")
}
