package loops

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes one line per loop, indented by depth.
func (i *Index) Dump(w io.Writer) error {
	for id, depth := range i.Walk() {
		node := i.nodes[id]
		if _, err := fmt.Fprintf(w, "%s#%d [%d, %d]\n",
			strings.Repeat("  ", depth),
			id,
			node.Begin,
			node.End,
		); err != nil {
			return err
		}
	}
	return nil
}
