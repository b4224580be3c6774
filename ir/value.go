package ir

import (
	"fmt"
	"strconv"
)

// Value is a scalar held in a node's value list.  Exactly one of String,
// Int64 and Bool is meaningful, as selected by Type.
type Value struct {
	Type   Type
	String string
	Int64  int64
	Bool   bool
}

func FromString(v string) Value {
	return Value{Type: StringType, String: v}
}

func FromInt(v int64) Value {
	return Value{Type: NumberType, Int64: v}
}

func FromBool(v bool) Value {
	return Value{Type: BoolType, Bool: v}
}

// Literal renders the value as it appears between brackets.
func (v Value) Literal() string {
	switch v.Type {
	case NumberType:
		return strconv.FormatInt(v.Int64, 10)
	case BoolType:
		return strconv.FormatBool(v.Bool)
	default:
		return v.String
	}
}

// Equal compares the literal forms of v and o.  The text format carries no
// type information, so a Number 69 equals a String "69".
func (v Value) Equal(o Value) bool {
	return v.Literal() == o.Literal()
}

// Any returns the value as a string, int64 or bool.
func (v Value) Any() any {
	switch v.Type {
	case NumberType:
		return v.Int64
	case BoolType:
		return v.Bool
	default:
		return v.String
	}
}

// ValueOf converts a Go value into a Value.  Nodes and containers are
// rejected: nesting is expressed with children only.
func ValueOf(x any) (Value, error) {
	switch v := x.(type) {
	case Value:
		return v, nil
	case *Value:
		if v == nil {
			return Value{}, fmt.Errorf("%w: nil value", ErrConstruction)
		}
		return *v, nil
	case *Node, Node, *Container, Container:
		return Value{}, fmt.Errorf("%w: a node cannot be used as a value, append it as a child instead", ErrConstruction)
	case string:
		return FromString(v), nil
	case bool:
		return FromBool(v), nil
	case int:
		return FromInt(int64(v)), nil
	case int8:
		return FromInt(int64(v)), nil
	case int16:
		return FromInt(int64(v)), nil
	case int32:
		return FromInt(int64(v)), nil
	case int64:
		return FromInt(v), nil
	case uint8:
		return FromInt(int64(v)), nil
	case uint16:
		return FromInt(int64(v)), nil
	case uint32:
		return FromInt(int64(v)), nil
	case uint:
		if uint64(v) > 1<<63-1 {
			return Value{}, fmt.Errorf("%w: %d overflows int64", ErrConstruction, v)
		}
		return FromInt(int64(v)), nil
	case uint64:
		if v > 1<<63-1 {
			return Value{}, fmt.Errorf("%w: %d overflows int64", ErrConstruction, v)
		}
		return FromInt(int64(v)), nil
	case fmt.Stringer:
		return FromString(v.String()), nil
	case nil:
		return Value{}, fmt.Errorf("%w: nil value", ErrConstruction)
	}
	return Value{}, fmt.Errorf("%w: unsupported value type %T", ErrConstruction, x)
}

// Retype infers the type of a literal read from text: `true` and `false`
// become Bool, canonical base 10 integers become Number, anything else is a
// String.
func Retype(lit string) Value {
	switch lit {
	case "true":
		return FromBool(true)
	case "false":
		return FromBool(false)
	}
	i, err := strconv.ParseInt(lit, 10, 64)
	if err == nil && strconv.FormatInt(i, 10) == lit {
		return FromInt(i)
	}
	return FromString(lit)
}
