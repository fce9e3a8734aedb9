// Package bfconfigs resolves run settings from flags, CUE config files and defaults, in that order.
package bfconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapebf/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
