package value

import (
	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
)

// ParseObject parses data as a JSON object and returns it as a
// FieldBuffer, preserving the key order of the source document.
func ParseObject(data []byte) (*FieldBuffer, error) {
	fb := NewFieldBuffer()
	err := fb.UnmarshalJSON(data)
	if err != nil {
		return nil, err
	}

	return fb, nil
}

func parseJSONValue(dataType jsonparser.ValueType, data []byte) (Value, error) {
	switch dataType {
	case jsonparser.Null:
		return NewNullValue(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, err
		}
		return NewBooleanValue(b), nil
	case jsonparser.Number:
		// keep the decimal token exactly as written
		return NewNumberValue(string(data)), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		return NewTextValue(s), nil
	case jsonparser.Array:
		var vb ValueBuffer
		err := vb.UnmarshalJSON(data)
		if err != nil {
			return nil, err
		}
		return NewArrayValue(vb), nil
	case jsonparser.Object:
		fb := NewFieldBuffer()
		err := fb.UnmarshalJSON(data)
		if err != nil {
			return nil, err
		}
		return NewObjectValue(fb), nil
	}

	return nil, errors.Errorf("unsupported json type %v", dataType)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (fb *FieldBuffer) UnmarshalJSON(data []byte) error {
	return jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, offset int) error {
		v, err := parseJSONValue(dataType, value)
		if err != nil {
			return err
		}

		fb.Add(string(key), v)
		return nil
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (vb *ValueBuffer) UnmarshalJSON(data []byte) error {
	var err error
	_, perr := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, _ error) {
		if err != nil {
			return
		}

		var v Value
		v, err = parseJSONValue(dataType, value)
		if err != nil {
			return
		}

		*vb = vb.Append(v)
	})
	if perr != nil {
		return perr
	}

	return err
}
