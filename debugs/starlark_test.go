package debugs

import (
	"testing"

	"github.com/reusee/tapebf/tape"
	"go.starlark.net/starlark"
)

func dict(pairs ...starlark.Value) *starlark.Dict {
	d := starlark.NewDict(len(pairs) / 2)
	for i := 0; i < len(pairs); i += 2 {
		if err := d.SetKey(pairs[i], pairs[i+1]); err != nil {
			panic(err)
		}
	}
	return d
}

func TestToStarlarkValue(t *testing.T) {
	type cell struct {
		Value   byte
		touched bool
	}
	ptr := &cell{Value: 7, touched: true}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"string", "hello", starlark.String("hello")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(-42), starlark.MakeInt(-42)},
		{"byte", byte(255), starlark.MakeInt(255)},
		{"uint64", uint64(1) << 40, starlark.MakeUint64(1 << 40)},
		{"float", 1.5, starlark.Float(1.5)},
		{"starlark value", starlark.String("x"), starlark.String("x")},
		{"ints", []int{1, 2, 3}, starlark.NewList([]starlark.Value{
			starlark.MakeInt(1), starlark.MakeInt(2), starlark.MakeInt(3),
		})},
		{"array", [2]string{"a", "b"}, starlark.NewList([]starlark.Value{
			starlark.String("a"), starlark.String("b"),
		})},
		{"map", map[string]any{"a": 1, "b": nil}, dict(
			starlark.String("a"), starlark.MakeInt(1),
			starlark.String("b"), starlark.None,
		)},
		{"struct", cell{Value: 3}, dict(
			starlark.String("Value"), starlark.MakeInt(3),
		)},
		{"pointer", ptr, dict(
			starlark.String("Value"), starlark.MakeInt(7),
		)},
		{"pointer to pointer", &ptr, dict(
			starlark.String("Value"), starlark.MakeInt(7),
		)},
		{"nil pointer", (*cell)(nil), starlark.None},
		{"snapshot", tape.Snapshot{Cursor: 1, Cells: []byte{0, 9}}, dict(
			starlark.String("Cursor"), starlark.MakeInt(1),
			starlark.String("Cells"), starlark.Bytes("\x00\x09"),
		)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("func", func(t *testing.T) {
		v := toStarlarkValue(func() int { return 1 })
		if v == nil || v == starlark.None {
			t.Fatalf("got %v", v)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("no panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
