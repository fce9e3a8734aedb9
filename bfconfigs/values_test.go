package bfconfigs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tapebf/cmds"
	"github.com/reusee/tapebf/configs"
	"github.com/reusee/tapebf/modes"
)

func TestDefaults(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, Schema)),
	).Call(func(
		size TapeSize,
		eof EOF,
		depth MaxDepth,
		target Target,
		backend Backend,
		debug Debug,
	) {
		if size != 30000 {
			t.Fatalf("got %v", size)
		}
		if eof != "zero" {
			t.Fatalf("got %v", eof)
		}
		if depth != 0 {
			t.Fatalf("got %v", depth)
		}
		if target != "c" {
			t.Fatalf("got %v", target)
		}
		if backend != BackendNative {
			t.Fatalf("got %v", backend)
		}
		if debug {
			t.Fatal()
		}
	})
}

func TestConfigFile(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader([]string{"testdata/tapebf.cue"}, Schema)),
	).Call(func(
		size TapeSize,
		eof EOF,
		depth MaxDepth,
		target Target,
		backend Backend,
	) {
		if size != 16 {
			t.Fatalf("got %v", size)
		}
		if eof != "max" {
			t.Fatalf("got %v", eof)
		}
		if depth != 8 {
			t.Fatalf("got %v", depth)
		}
		if target != "starlark" {
			t.Fatalf("got %v", target)
		}
		if backend != BackendNative {
			t.Fatalf("got %v", backend)
		}
	})
}

func TestFlagOverridesConfigFile(t *testing.T) {
	cmds.GlobalExecutor.MustExecute([]string{"-tape-size", "64"})
	defer cmds.GlobalExecutor.MustExecute([]string{"-tape-size."})

	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader([]string{"testdata/tapebf.cue"}, Schema)),
	).Call(func(
		size TapeSize,
	) {
		if size != 64 {
			t.Fatalf("got %v", size)
		}
	})
}

func TestSchemaRejectsInvalidValue(t *testing.T) {
	loader := configs.NewLoader([]string{"testdata/invalid.cue"}, Schema)
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
}
