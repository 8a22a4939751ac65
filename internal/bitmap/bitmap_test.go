package bitmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marieof9/libvirt/internal/bitmap"
	"github.com/marieof9/libvirt/value"
)

func numbers(tokens ...string) value.ValueBuffer {
	var vb value.ValueBuffer
	for _, tok := range tokens {
		vb = vb.Append(value.NewNumberValue(tok))
	}
	return vb
}

type run struct {
	first, last uint32
}

func collectRuns(b *bitmap.Bitmap) []run {
	var runs []run
	b.Runs(func(first, last uint32) {
		runs = append(runs, run{first, last})
	})
	return runs
}

func TestFromArray(t *testing.T) {
	tests := []struct {
		name string
		arr  value.Array
		ok   bool
	}{
		{"ascending", numbers("0", "1", "2", "5", "7", "8", "9"), true},
		{"single", numbers("4"), true},
		{"starts above zero", numbers("3", "10"), true},
		{"empty", numbers(), false},
		{"duplicate", numbers("0", "1", "1"), false},
		{"descending", numbers("2", "1", "0"), false},
		{"unordered", numbers("1", "0", "2"), false},
		{"negative", numbers("-1", "0"), false},
		{"fractional", numbers("0", "1.5"), false},
		{"text element", value.NewValueBuffer(value.NewTextValue("a")), false},
		{"bool element", value.NewValueBuffer(value.NewBooleanValue(true)), false},
		{"mixed", value.NewValueBuffer(value.NewNumberValue("0"), value.NewTextValue("a")), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, ok := bitmap.FromArray(test.arr)
			require.Equal(t, test.ok, ok)
			if test.ok {
				require.NotNil(t, b)
			} else {
				require.Nil(t, b)
			}
		})
	}
}

func TestRuns(t *testing.T) {
	tests := []struct {
		name     string
		arr      value.Array
		expected []run
	}{
		{"mixed runs and singletons", numbers("0", "1", "2", "5", "7", "8", "9"), []run{{0, 2}, {5, 5}, {7, 9}}},
		{"single element", numbers("4"), []run{{4, 4}}},
		{"one consecutive run", numbers("2", "3", "4", "5"), []run{{2, 5}}},
		{"all isolated", numbers("0", "2", "4", "6"), []run{{0, 0}, {2, 2}, {4, 4}, {6, 6}}},
		{"pair runs", numbers("1", "2", "10", "11"), []run{{1, 2}, {10, 11}}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, ok := bitmap.FromArray(test.arr)
			require.True(t, ok)

			got := collectRuns(b)
			require.Equal(t, test.expected, got)

			// runs must be maximal: no two adjacent runs can be merged
			for i := 1; i < len(got); i++ {
				require.Greater(t, got[i].first, got[i-1].last+1)
			}
		})
	}
}

func TestContains(t *testing.T) {
	b, ok := bitmap.FromArray(numbers("1", "3"))
	require.True(t, ok)

	require.True(t, b.Contains(1))
	require.True(t, b.Contains(3))
	require.False(t, b.Contains(0))
	require.False(t, b.Contains(2))
	require.False(t, b.Contains(4))
}
