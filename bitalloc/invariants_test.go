package bitalloc

import (
	"fmt"
	"testing"

	"github.com/joshuapare/bitkit/internal/bitword"
)

// invariantChecker is implemented by the in-package allocators so tests can
// walk a cascade and compare every cached summary bit against the child it
// describes.
type invariantChecker interface {
	checkInvariants() error
}

func (a *Alloc16) checkInvariants() error { return nil }

func (c *Cascade16[T, PT]) checkInvariants() error {
	for i := range Fanout {
		ch := c.child(i)
		if got := bitword.Get(c.summary, i); got != ch.Any() {
			return fmt.Errorf("summary bit %d is %v but child.Any() is %v", i, got, ch.Any())
		}
		if sub, ok := any(ch).(invariantChecker); ok {
			if err := sub.checkInvariants(); err != nil {
				return fmt.Errorf("child %d: %w", i, err)
			}
		}
	}
	return nil
}

// validateAllocator fails the test when any cached summary bit disagrees
// with the child under it.
func validateAllocator(t *testing.T, a Allocator) {
	t.Helper()
	if c, ok := a.(invariantChecker); ok {
		if err := c.checkInvariants(); err != nil {
			t.Fatalf("invariant violation: %v\nstate: %s", err, Dump(a))
		}
	}
}
