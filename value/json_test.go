package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marieof9/libvirt/value"
)

func TestParseObject(t *testing.T) {
	t.Run("key order is preserved", func(t *testing.T) {
		fb, err := value.ParseObject([]byte(`{"z": 1, "a": 2, "m": 3}`))
		require.NoError(t, err)

		var fields []string
		err = fb.Iterate(func(field string, v value.Value) error {
			fields = append(fields, field)
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, []string{"z", "a", "m"}, fields)
	})

	t.Run("number tokens are kept verbatim", func(t *testing.T) {
		fb, err := value.ParseObject([]byte(`{"a": 1.50, "b": 10}`))
		require.NoError(t, err)

		v, err := fb.Get("a")
		require.NoError(t, err)
		require.Equal(t, value.TypeNumber, v.Type())
		require.Equal(t, "1.50", value.AsNumber(v))

		v, err = fb.Get("b")
		require.NoError(t, err)
		require.Equal(t, "10", value.AsNumber(v))
	})

	t.Run("all variants", func(t *testing.T) {
		fb, err := value.ParseObject([]byte(`{
			"s": "a,b",
			"e": "esc\"aped",
			"n": null,
			"t": true,
			"f": false,
			"arr": [0, 1, "x"],
			"obj": {"nested": 1}
		}`))
		require.NoError(t, err)

		v, err := fb.Get("s")
		require.NoError(t, err)
		require.Equal(t, "a,b", value.AsText(v))

		v, err = fb.Get("e")
		require.NoError(t, err)
		require.Equal(t, `esc"aped`, value.AsText(v))

		v, err = fb.Get("n")
		require.NoError(t, err)
		require.Equal(t, value.TypeNull, v.Type())

		v, err = fb.Get("t")
		require.NoError(t, err)
		require.True(t, value.AsBool(v))

		v, err = fb.Get("f")
		require.NoError(t, err)
		require.False(t, value.AsBool(v))

		v, err = fb.Get("arr")
		require.NoError(t, err)
		require.Equal(t, value.TypeArray, v.Type())
		elem, err := value.AsArray(v).GetByIndex(2)
		require.NoError(t, err)
		require.Equal(t, "x", value.AsText(elem))

		v, err = fb.Get("obj")
		require.NoError(t, err)
		require.Equal(t, value.TypeObject, v.Type())
		nested, err := value.AsObject(v).Get("nested")
		require.NoError(t, err)
		require.Equal(t, "1", value.AsNumber(nested))
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := value.ParseObject([]byte(`[1, 2]`))
		require.Error(t, err)

		_, err = value.ParseObject([]byte(`not json`))
		require.Error(t, err)
	})
}
