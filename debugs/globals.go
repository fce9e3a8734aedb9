package debugs

import (
	"github.com/reusee/tapebf/bfvm"
	"github.com/reusee/tapebf/loops"
)

// VMGlobals exposes a paused engine to a tap shell.
// Cells cover the tape up to the highest touched cell.
func VMGlobals(vm *bfvm.VM) map[string]any {
	snapshot := vm.Tape.Snapshot()
	cells := make([]int, len(snapshot.Cells))
	for i, c := range snapshot.Cells {
		cells[i] = int(c)
	}

	globals := map[string]any{
		"cells":  cells,
		"cursor": snapshot.Cursor,
		"ip":     vm.Cursor.IP,
		"steps":  vm.Steps,
		"loop":   nil,

		"get": func() int {
			return int(vm.Tape.Get())
		},
		"set": func(v int) {
			vm.Tape.Set(byte(v))
		},
	}

	if id := vm.Cursor.Loop; id != loops.None {
		node := vm.Index.Node(id)
		globals["loop"] = map[string]any{
			"begin": node.Begin,
			"end":   node.End,
			"depth": vm.Index.Depth(id),
		}
	}

	return globals
}
