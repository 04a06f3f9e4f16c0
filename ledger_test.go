package slimetrain

import (
	"maps"
	"testing"
)

func TestLedgerGetBeforeRefresh(t *testing.T) {
	l := NewPositionLedger()
	if _, ok := l.Get(1); ok {
		t.Error("Get on empty ledger should report missing")
	}
	if l.Has(1) {
		t.Error("Has on empty ledger should be false")
	}
}

func TestLedgerRefreshOverwrites(t *testing.T) {
	l := NewPositionLedger()
	l.Refresh(1, Vec2{0, 0}, maps.All(map[MemberID]Vec2{2: {5, 5}}))
	l.Refresh(1, Vec2{10, 20}, maps.All(map[MemberID]Vec2{2: {6, 7}}))

	if got, _ := l.Get(1); got != (Vec2{10, 20}) {
		t.Errorf("leader = %v, want (10, 20)", got)
	}
	if got, _ := l.Get(2); got != (Vec2{6, 7}) {
		t.Errorf("follower = %v, want (6, 7)", got)
	}
	if l.Len() != 2 {
		t.Errorf("Len = %d, want 2", l.Len())
	}
}

func TestLedgerRefreshKeepsUnmentioned(t *testing.T) {
	l := NewPositionLedger()
	l.Refresh(1, Vec2{}, maps.All(map[MemberID]Vec2{2: {1, 1}, 3: {2, 2}}))
	l.Refresh(1, Vec2{}, maps.All(map[MemberID]Vec2{2: {4, 4}}))

	if got, ok := l.Get(3); !ok || got != (Vec2{2, 2}) {
		t.Errorf("entry 3 = %v (ok=%v), want (2, 2) kept", got, ok)
	}
}

func TestLedgerRefreshNilFollowers(t *testing.T) {
	l := NewPositionLedger()
	l.Refresh(1, Vec2{3, 4}, nil)
	if got, ok := l.Get(1); !ok || got != (Vec2{3, 4}) {
		t.Errorf("leader = %v (ok=%v), want (3, 4)", got, ok)
	}
}

func TestLedgerDelete(t *testing.T) {
	l := NewPositionLedger()
	l.Refresh(1, Vec2{}, maps.All(map[MemberID]Vec2{2: {1, 1}}))
	l.Delete(2)
	l.Delete(99)
	if l.Has(2) {
		t.Error("deleted entry still present")
	}
	if l.Len() != 1 {
		t.Errorf("Len = %d, want 1", l.Len())
	}
}
