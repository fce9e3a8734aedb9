// Package programs wires loading, configuration and the execution backends into the
// operations the command line exposes.
package programs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/tapebf/bfconfigs"
	"github.com/reusee/tapebf/debugs"
	"github.com/reusee/tapebf/logs"
	"github.com/reusee/tapebf/sources"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Sources sources.Module
	Configs bfconfigs.Module
	Debugs  debugs.Module
}

// Input feeds the input instruction of running programs.
type Input io.Reader

func (Module) Input() Input {
	return os.Stdin
}

// Output receives program output, translations and loop dumps.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}
