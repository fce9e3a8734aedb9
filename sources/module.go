package sources

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/tapebf/logs"
	"github.com/reusee/tapebf/nets"
)

type Module struct {
	dscope.Module
	Logs logs.Module
	Nets nets.Module
}

// Stdin is read when a program location is "-".
type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}
