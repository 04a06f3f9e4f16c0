package slimetrain

import (
	"fmt"
	"io"
)

// SetDebugMode enables or disables debug mode. When enabled, every Tick
// validates the chain's structure and panics on a violation, and lifecycle
// events plus per-tick stats are written to the debug output.
func (c *Chain) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// SetDebugOutput redirects debug lines. Defaults to os.Stderr.
func (c *Chain) SetDebugOutput(w io.Writer) {
	c.debugOut = w
}

func (c *Chain) debugf(format string, args ...any) {
	if !c.debug || c.debugOut == nil {
		return
	}
	_, _ = fmt.Fprintf(c.debugOut, "[slimetrain] "+format+"\n", args...)
}

// debugLog prints per-tick chain stats.
func (c *Chain) debugLog() {
	var pending, thrown int
	for _, id := range c.spawned {
		m := c.members[id]
		switch {
		case m.Thrown():
			thrown++
		case !m.Leader && !m.joined:
			pending++
		}
	}
	c.debugf("tick %d | order: %d | ledger: %d | pending: %d | thrown: %d | queued: %d",
		c.ticks, c.order.Len(), c.ledger.Len(), pending, thrown, c.inbox.Pending())
}

// Validate checks the structural invariants of the chain and returns the
// first violation found:
//
//   - the leader occupies index 0 of the follow order
//   - no identity appears twice in the follow order
//   - every other entry is a live member that is still following
//   - the ledger only holds entries for members in the follow order
//   - the leader has a ledger entry once the chain has ticked
//
// A chain without a leader is trivially valid.
func (c *Chain) Validate() error {
	if c.leader == 0 {
		return nil
	}
	if c.order.Len() > 0 && c.order.At(0) != c.leader {
		return fmt.Errorf("follow order starts with %d, want leader %d", c.order.At(0), c.leader)
	}
	seen := make(map[MemberID]struct{}, c.order.Len())
	for i, id := range c.order.All() {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("member %d appears twice in the follow order", id)
		}
		seen[id] = struct{}{}
		if i == 0 {
			continue
		}
		m, ok := c.members[id]
		if !ok {
			return fmt.Errorf("follow order index %d holds unknown member %d", i, id)
		}
		if m.Leader || !m.Following {
			return fmt.Errorf("follow order index %d holds member %d that is not following", i, id)
		}
	}
	for id := range c.ledger.positions {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("ledger holds member %d outside the follow order", id)
		}
	}
	if c.ticks > 0 && !c.ledger.Has(c.leader) {
		return fmt.Errorf("ledger is missing leader %d after %d ticks", c.leader, c.ticks)
	}
	return nil
}
