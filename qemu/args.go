// Package qemu builds QEMU command-line arguments from JSON-like value
// trees. QEMU options use a flat, comma-separated key=value grammar; this
// package flattens a parsed value tree into that grammar, escaping literal
// commas and compressing integer arrays into ranges.
package qemu

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/marieof9/libvirt/internal/bitmap"
	"github.com/marieof9/libvirt/value"
)

var (
	// ErrUnsupportedNesting is returned when an array value contains
	// another array: the command-line grammar has no syntax for it.
	ErrUnsupportedNesting = errors.New("nested arrays cannot be converted to a command-line string")

	// ErrUnsupportedType is returned when an object or null value appears
	// anywhere in the tree being encoded.
	ErrUnsupportedType = errors.New("null and object values cannot be converted to a command-line string")
)

// EscapeComma returns s with every literal comma doubled. QEMU uses the
// comma both as the key=value separator and as its own escape character,
// so a comma inside a value must be written twice to avoid being parsed as
// a separator.
func EscapeComma(s string) string {
	return strings.ReplaceAll(s, ",", ",,")
}

func appendEscaped(b *strings.Builder, s string) {
	b.WriteString(EscapeComma(s))
}

// encodeValue appends one or more ",key=..." fragments for v to b. nested
// reports that the call is expanding an array element; a second level of
// arrays is not representable in the grammar.
//
// On error b may hold a partial write. The encoder only ever appends, so
// rollback is the caller's responsibility.
func encodeValue(b *strings.Builder, key string, v value.Value, nested bool) error {
	switch v.Type() {
	case value.TypeText:
		b.WriteByte(',')
		b.WriteString(key)
		b.WriteByte('=')
		appendEscaped(b, value.AsText(v))

	case value.TypeNumber:
		b.WriteByte(',')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(value.AsNumber(v))

	case value.TypeBoolean:
		b.WriteByte(',')
		b.WriteString(key)
		if value.AsBool(v) {
			b.WriteString("=yes")
		} else {
			b.WriteString("=no")
		}

	case value.TypeArray:
		if nested {
			return errors.Wrapf(ErrUnsupportedNesting, "key %q", key)
		}

		return encodeArray(b, key, value.AsArray(v))

	case value.TypeObject, value.TypeNull:
		return errors.Wrapf(ErrUnsupportedType, "key %q", key)
	}

	return nil
}

// encodeArray emits an array either as range fragments, when its elements
// form an ascending set of integers, or as one ",key=element" fragment per
// element otherwise.
func encodeArray(b *strings.Builder, key string, a value.Array) error {
	if bm, ok := bitmap.FromArray(a); ok {
		bm.Runs(func(first, last uint32) {
			b.WriteByte(',')
			b.WriteString(key)
			b.WriteByte('=')
			b.WriteString(strconv.FormatUint(uint64(first), 10))
			if last > first {
				b.WriteByte('-')
				b.WriteString(strconv.FormatUint(uint64(last), 10))
			}
		})

		return nil
	}

	// fallback, treat the array as a plain sequence, adding the key for
	// each member
	return a.Iterate(func(i int, elem value.Value) error {
		return encodeValue(b, key, elem, true)
	})
}

// BuildCommandLine appends one ",key=value" fragment per field of props to
// b, in the object's iteration order. On error b may hold a partial write
// and must be discarded by the caller.
func BuildCommandLine(props value.Object, b *strings.Builder) error {
	return props.Iterate(func(field string, v value.Value) error {
		return encodeValue(b, field, v, false)
	})
}

// BuildObjectArg builds the argument string for a -object command-line
// option: the object type, its id, then every property of props in
// iteration order. Partial output never escapes: on error the returned
// string is empty.
func BuildObjectArg(typ, alias string, props value.Object) (string, error) {
	var b strings.Builder

	b.WriteString(typ)
	b.WriteString(",id=")
	b.WriteString(alias)

	err := BuildCommandLine(props, &b)
	if err != nil {
		return "", err
	}

	return b.String(), nil
}
