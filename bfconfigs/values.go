package bfconfigs

import (
	"github.com/reusee/tapebf/cmds"
	"github.com/reusee/tapebf/configs"
	"github.com/reusee/tapebf/tape"
	"github.com/reusee/tapebf/vars"
)

var (
	tapeSizeFlag = cmds.Var[int]("-tape-size", "number of tape cells (default 30000)")
	eofFlag      = cmds.Var[string]("-eof", "value stored on exhausted input: zero, keep or max")
	maxDepthFlag = cmds.Var[int]("-max-depth", "reject programs nesting loops deeper than this")
	targetFlag   = cmds.Var[string]("-target", "translation target: c or starlark")
	backendFlag  = cmds.Var[string]("-backend", "execution backend: native or starlark")
	debugFlag    = cmds.Switch("-debug", "stop at '#' and open a starlark shell over the tape (native backend only)")
)

type TapeSize int

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return TapeSize(vars.FirstNonZero(
		*tapeSizeFlag,
		configs.First[int](loader, "tape_size"),
		tape.DefaultSize,
	))
}

// EOF is the name of an input exhaustion policy, parsed by tape.ParseEOFPolicy.
type EOF string

func (Module) EOF(
	loader configs.Loader,
) EOF {
	return EOF(vars.FirstNonZero(
		*eofFlag,
		configs.First[string](loader, "eof"),
		"zero",
	))
}

// MaxDepth of 0 means unbounded.
type MaxDepth int

func (Module) MaxDepth(
	loader configs.Loader,
) MaxDepth {
	return MaxDepth(vars.FirstNonZero(
		*maxDepthFlag,
		configs.First[int](loader, "max_depth"),
	))
}

type Target string

func (Module) Target(
	loader configs.Loader,
) Target {
	return Target(vars.FirstNonZero(
		*targetFlag,
		configs.First[string](loader, "target"),
		"c",
	))
}

type Backend string

const (
	BackendNative   Backend = "native"
	BackendStarlark Backend = "starlark"
)

func (Module) Backend(
	loader configs.Loader,
) Backend {
	return Backend(vars.FirstNonZero(
		*backendFlag,
		configs.First[string](loader, "backend"),
		string(BackendNative),
	))
}

type Debug bool

func (Module) Debug() Debug {
	return Debug(*debugFlag)
}
