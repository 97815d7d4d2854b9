package bitalloc

import (
	"fmt"
	"strings"
)

const (
	// dumpBudget caps the number of keys one Dump walks, keeping String()
	// usable on the multi-million-unit cascades.
	dumpBudget = 1 << 16

	// maxDumpRuns caps the runs printed per Dump.
	maxDumpRuns = 8
)

// Dump renders the free set of a as "cap=N free=[a-b c d-e]", for debugging
// and test failure messages. Long free sets end in "..." once the run or
// key-walk limit is hit.
func Dump(a Allocator) string {
	capacity := a.Cap()
	var sb strings.Builder
	fmt.Fprintf(&sb, "cap=%d free=[", capacity)
	budget := dumpBudget
	key, runs := 0, 0
	for key < capacity {
		start, ok := a.Next(key)
		if !ok {
			break
		}
		if runs == maxDumpRuns || budget == 0 {
			if runs > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString("...")
			break
		}
		end := start + 1
		for end < capacity && budget > 0 && a.Test(end) {
			end++
			budget--
		}
		if runs > 0 {
			sb.WriteByte(' ')
		}
		if budget == 0 && end < capacity && a.Test(end) {
			// the walk budget ran out with the run still open
			fmt.Fprintf(&sb, "%d-...", start)
			sb.WriteByte(']')
			return sb.String()
		}
		if end == start+1 {
			fmt.Fprintf(&sb, "%d", start)
		} else {
			fmt.Fprintf(&sb, "%d-%d", start, end-1)
		}
		runs++
		key = end
	}
	sb.WriteByte(']')
	return sb.String()
}

// String renders the free set; see Dump.
func (a *Alloc16) String() string { return Dump(a) }

// String renders the free set; see Dump.
func (c *Cascade16[T, PT]) String() string { return Dump(c) }
