package slimetrain

import (
	"fmt"
	"iter"
)

// FollowOrder is the queue that decides who follows whom. The leader sits at
// index 0 and every later entry follows the one before it. Joins append;
// removals close the gap without reordering the survivors.
type FollowOrder struct {
	ids []MemberID
}

// NewFollowOrder returns an empty order.
func NewFollowOrder() *FollowOrder {
	return &FollowOrder{}
}

// EnsureLeaderPresent puts leader at index 0 the first time it is called.
// Later calls with the same leader are no-ops.
// Panics if a different leader is already in place or if leader was already
// queued as a follower.
func (o *FollowOrder) EnsureLeaderPresent(leader MemberID) {
	if len(o.ids) > 0 {
		if o.ids[0] == leader {
			return
		}
		if o.IndexOf(leader) < 0 {
			panic(fmt.Sprintf("slimetrain: follow order already led by %d, cannot lead with %d", o.ids[0], leader))
		}
		panic(fmt.Sprintf("slimetrain: member %d is already queued as a follower", leader))
	}
	o.ids = append(o.ids, leader)
}

// EnsureMemberPresent appends id to the end of the order if it is absent.
// Panics if the order has no leader yet.
func (o *FollowOrder) EnsureMemberPresent(id MemberID) {
	if len(o.ids) == 0 {
		panic(fmt.Sprintf("slimetrain: member %d joined before the leader", id))
	}
	if o.IndexOf(id) >= 0 {
		return
	}
	o.ids = append(o.ids, id)
}

// PredecessorOf returns the member that id follows.
// Panics if id is absent or is the leader; both are caller bugs.
func (o *FollowOrder) PredecessorOf(id MemberID) MemberID {
	i := o.IndexOf(id)
	if i < 0 {
		panic(fmt.Sprintf("slimetrain: predecessor of member %d, which is not in the follow order", id))
	}
	if i == 0 {
		panic(fmt.Sprintf("slimetrain: predecessor of leader %d", id))
	}
	return o.ids[i-1]
}

// Remove deletes id and closes the gap: whoever followed id now follows id's
// predecessor. No-op if id is absent. Panics when asked to remove the leader.
func (o *FollowOrder) Remove(id MemberID) {
	i := o.IndexOf(id)
	if i < 0 {
		return
	}
	if i == 0 {
		panic(fmt.Sprintf("slimetrain: cannot remove leader %d from the follow order", id))
	}
	copy(o.ids[i:], o.ids[i+1:])
	o.ids = o.ids[:len(o.ids)-1]
}

// IndexOf returns the position of id, or -1.
func (o *FollowOrder) IndexOf(id MemberID) int {
	for i, v := range o.ids {
		if v == id {
			return i
		}
	}
	return -1
}

// Contains reports whether id is in the order.
func (o *FollowOrder) Contains(id MemberID) bool {
	return o.IndexOf(id) >= 0
}

// Len returns the number of entries, leader included.
func (o *FollowOrder) Len() int {
	return len(o.ids)
}

// At returns the entry at index i.
func (o *FollowOrder) At(i int) MemberID {
	return o.ids[i]
}

// Leader returns the entry at index 0, or 0 if the order is empty.
func (o *FollowOrder) Leader() MemberID {
	if len(o.ids) == 0 {
		return 0
	}
	return o.ids[0]
}

// IDs returns a copy of the order.
func (o *FollowOrder) IDs() []MemberID {
	out := make([]MemberID, len(o.ids))
	copy(out, o.ids)
	return out
}

// All iterates the order as (index, id) pairs. The order must not be modified
// during iteration.
func (o *FollowOrder) All() iter.Seq2[int, MemberID] {
	return func(yield func(int, MemberID) bool) {
		for i, id := range o.ids {
			if !yield(i, id) {
				return
			}
		}
	}
}
