package value

import (
	"strconv"
	"strings"
)

var _ Value = NewNullValue()

type NullValue struct{}

// NewNullValue returns a null value.
func NewNullValue() NullValue {
	return NullValue{}
}

func (v NullValue) V() any {
	return nil
}

func (v NullValue) Type() Type {
	return TypeNull
}

func (v NullValue) String() string {
	return "null"
}

var _ Value = NewBooleanValue(false)

type BooleanValue bool

// NewBooleanValue returns a boolean value.
func NewBooleanValue(x bool) BooleanValue {
	return BooleanValue(x)
}

func (v BooleanValue) V() any {
	return bool(v)
}

func (v BooleanValue) Type() Type {
	return TypeBoolean
}

func (v BooleanValue) String() string {
	return strconv.FormatBool(bool(v))
}

var _ Value = NewNumberValue("0")

// NumberValue holds an already-formatted decimal token. The token is
// emitted verbatim by the encoder and never reinterpreted numerically.
type NumberValue string

// NewNumberValue returns a number value from its decimal token.
func NewNumberValue(token string) NumberValue {
	return NumberValue(token)
}

func (v NumberValue) V() any {
	return string(v)
}

func (v NumberValue) Type() Type {
	return TypeNumber
}

func (v NumberValue) String() string {
	return string(v)
}

var _ Value = NewTextValue("")

type TextValue string

// NewTextValue returns a text value.
func NewTextValue(x string) TextValue {
	return TextValue(x)
}

func (v TextValue) V() any {
	return string(v)
}

func (v TextValue) Type() Type {
	return TypeText
}

func (v TextValue) String() string {
	return strconv.Quote(string(v))
}

var _ Value = NewArrayValue(nil)

type ArrayValue struct {
	a Array
}

// NewArrayValue returns a value wrapping a.
func NewArrayValue(a Array) ArrayValue {
	return ArrayValue{a: a}
}

func (v ArrayValue) V() any {
	return v.a
}

func (v ArrayValue) Type() Type {
	return TypeArray
}

func (v ArrayValue) String() string {
	var sb strings.Builder

	sb.WriteByte('[')
	_ = v.a.Iterate(func(i int, elem Value) error {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(elem.String())
		return nil
	})
	sb.WriteByte(']')

	return sb.String()
}

var _ Value = NewObjectValue(nil)

type ObjectValue struct {
	o Object
}

// NewObjectValue returns a value wrapping o.
func NewObjectValue(o Object) ObjectValue {
	return ObjectValue{o: o}
}

func (v ObjectValue) V() any {
	return v.o
}

func (v ObjectValue) Type() Type {
	return TypeObject
}

func (v ObjectValue) String() string {
	var sb strings.Builder

	sb.WriteByte('{')
	first := true
	_ = v.o.Iterate(func(field string, val Value) error {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.Quote(field))
		sb.WriteString(": ")
		sb.WriteString(val.String())
		return nil
	})
	sb.WriteByte('}')

	return sb.String()
}
