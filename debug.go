package recdb

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// DumpStore formats every record for debugging, deactivated ones included.
// Deactivated records are marked with an x.
func DumpStore[T any, P Row[T]](s *Store[T, P]) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "== %s (%d records, capacity %d)\n", s.name, len(s.rows), s.cap)
	for i := range s.rows {
		p := P(&s.rows[i])
		m := p.meta()
		marker := byte(' ')
		if !m.Active {
			marker = 'x'
		}
		fmt.Fprintf(&buf, "%c %d: %s", marker, m.ID, dumpConfig.Sdump(*(*T)(p)))
	}
	return buf.String()
}
