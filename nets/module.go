// Package nets provides the HTTP client used to fetch remote programs, routed through
// a proxy when one is configured.
package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapebf/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
