package ir

import "fmt"

// Type is the kind of a scalar Value.
type Type int

const (
	StringType Type = iota
	NumberType
	BoolType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType: "String",
		NumberType: "Number",
		BoolType:   "Bool",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"String": StringType,
		"Number": NumberType,
		"Bool":   BoolType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		StringType,
		NumberType,
		BoolType,
	}
}
