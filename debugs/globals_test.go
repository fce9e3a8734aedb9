package debugs

import (
	"testing"

	"github.com/reusee/tapebf/bfvm"
	"github.com/reusee/tapebf/loops"
	"github.com/reusee/tapebf/tape"
)

func TestVMGlobals(t *testing.T) {
	src := []byte("++>+[#-]")
	index, err := loops.Build(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	tp, err := tape.New(8)
	if err != nil {
		t.Fatal(err)
	}
	vm := bfvm.New(src, index, tp, &bfvm.Options{
		Breakpoints: true,
	})

	var globals map[string]any
	for interrupt, err := range vm.Run {
		if err != nil {
			t.Fatal(err)
		}
		if interrupt.Breakpoint {
			globals = VMGlobals(vm)
			break
		}
	}
	if globals == nil {
		t.Fatal("breakpoint not hit")
	}

	cells := globals["cells"].([]int)
	if len(cells) != 2 || cells[0] != 2 || cells[1] != 1 {
		t.Fatalf("got %v", cells)
	}
	if globals["cursor"] != 1 {
		t.Fatalf("got %v", globals["cursor"])
	}
	if globals["ip"] != 6 {
		t.Fatalf("got %v", globals["ip"])
	}
	loop := globals["loop"].(map[string]any)
	if loop["begin"] != 4 || loop["end"] != 7 || loop["depth"] != 0 {
		t.Fatalf("got %v", loop)
	}

	globals["set"].(func(int))(9)
	if tp.Get() != 9 {
		t.Fatalf("got %d", tp.Get())
	}
	if globals["get"].(func() int)() != 9 {
		t.Fatal("get")
	}
}
