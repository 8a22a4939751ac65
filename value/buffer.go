package value

// FieldBuffer stores a group of fields in memory. It implements the Object
// interface and iterates in insertion order.
type FieldBuffer struct {
	fields []fieldValue
}

type fieldValue struct {
	Field string
	Value Value
}

// NewFieldBuffer creates a FieldBuffer.
func NewFieldBuffer() *FieldBuffer {
	return new(FieldBuffer)
}

// Add a field to the buffer.
func (fb *FieldBuffer) Add(field string, v Value) *FieldBuffer {
	fb.fields = append(fb.fields, fieldValue{field, v})
	return fb
}

// Get returns a value by field. Returns ErrFieldNotFound if the field
// doesn't exist.
func (fb *FieldBuffer) Get(field string) (Value, error) {
	for _, fv := range fb.fields {
		if fv.Field == field {
			return fv.Value, nil
		}
	}

	return nil, ErrFieldNotFound
}

// Iterate goes through all the fields of the buffer in insertion order and
// calls the given function by passing each one of them.
// If the given function returns an error, the iteration stops.
func (fb *FieldBuffer) Iterate(fn func(field string, value Value) error) error {
	for _, fv := range fb.fields {
		err := fn(fv.Field, fv.Value)
		if err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of fields in the buffer.
func (fb *FieldBuffer) Len() int {
	return len(fb.fields)
}

// ValueBuffer is an array that holds values in memory.
type ValueBuffer []Value

// NewValueBuffer creates a buffer of values.
func NewValueBuffer(values ...Value) ValueBuffer {
	return ValueBuffer(values)
}

// Append a value to the buffer and return a new buffer.
func (vb ValueBuffer) Append(v Value) ValueBuffer {
	return append(vb, v)
}

// Iterate goes through all the values of the buffer in order and calls the
// given function by passing each one of them.
// If the given function returns an error, the iteration stops.
func (vb ValueBuffer) Iterate(fn func(i int, value Value) error) error {
	for i, v := range vb {
		err := fn(i, v)
		if err != nil {
			return err
		}
	}

	return nil
}

// GetByIndex returns a value by index. Returns ErrValueNotFound if the
// index is out of range.
func (vb ValueBuffer) GetByIndex(i int) (Value, error) {
	if i < 0 || i >= len(vb) {
		return nil, ErrValueNotFound
	}

	return vb[i], nil
}

// Len returns the number of values in the buffer.
func (vb ValueBuffer) Len() int {
	return len(vb)
}
