// Package value defines the JSON-like value tree consumed by the qemu
// argument encoder, along with in-memory buffers to build objects and
// arrays and a JSON parser that preserves object key order.
package value

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrFieldNotFound must be returned by Object implementations, when calling
// the Get method and the field wasn't found in the object.
var ErrFieldNotFound = errors.New("field not found")

// ErrValueNotFound must be returned by Array implementations, when calling
// the GetByIndex method and the index wasn't found in the array.
var ErrValueNotFound = errors.New("value not found")

// Type represents a value type supported by the tree.
type Type uint8

// List of supported types.
const (
	TypeNull Type = iota
	TypeBoolean
	TypeNumber
	TypeText
	TypeArray
	TypeObject
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeText:
		return "text"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	}

	panic(fmt.Sprintf("unsupported type %#v", t))
}

// A Value is a tagged variant of the tree. Number values carry their
// already-formatted decimal token; they are never reinterpreted.
type Value interface {
	Type() Type
	V() any
	String() string
}

// An Object represents a group of key value pairs. Iteration order is
// insertion order and is semantically significant: it determines the order
// of the encoded command-line fragments.
type Object interface {
	// Iterate goes through all the fields of the object and calls the given function by passing each one of them.
	// If the given function returns an error, the iteration stops.
	Iterate(fn func(field string, value Value) error) error
	// Get returns a value by field name.
	// Must return ErrFieldNotFound if the field doesn't exist.
	Get(field string) (Value, error)
}

// An Array contains an ordered sequence of values.
type Array interface {
	// Iterate goes through all the values of the array and calls the given function by passing each one of them.
	// If the given function returns an error, the iteration stops.
	Iterate(fn func(i int, value Value) error) error
	// GetByIndex returns a value by index of the array.
	GetByIndex(i int) (Value, error)
}

func AsBool(v Value) bool {
	if bv, ok := v.(BooleanValue); ok {
		return bool(bv)
	}

	return v.V().(bool)
}

func AsText(v Value) string {
	if tv, ok := v.(TextValue); ok {
		return string(tv)
	}

	return v.V().(string)
}

// AsNumber returns the decimal token of a number value.
func AsNumber(v Value) string {
	if nv, ok := v.(NumberValue); ok {
		return string(nv)
	}

	return v.V().(string)
}

func AsArray(v Value) Array {
	return v.V().(Array)
}

func AsObject(v Value) Object {
	return v.V().(Object)
}
