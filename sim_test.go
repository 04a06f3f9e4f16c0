package slimetrain

import "testing"

func newTestSim(mutate func(*Config)) *Sim {
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return NewSim(cfg, Vec2{})
}

func TestSimLeaderMovesAtConfiguredSpeed(t *testing.T) {
	s := newTestSim(nil)
	s.Update(Controls{Move: Vec2{2, 0}}, 0.5)
	assertVec(t, "leader", s.Chain().Leader().Position, Vec2{150, 0})

	s.Update(Controls{}, 0.5)
	assertVec(t, "leader at rest", s.Chain().Leader().Position, Vec2{150, 0})
}

func TestSimSpawnControl(t *testing.T) {
	s := newTestSim(nil)
	s.Update(Controls{Spawn: true}, testDT)
	s.Update(Controls{Spawn: true}, testDT)
	if got := s.Chain().Order().Len(); got != 3 {
		t.Errorf("order len = %d, want 3", got)
	}
}

func TestSimAimAndThrow(t *testing.T) {
	s := newTestSim(nil)
	s.Update(Controls{Spawn: true}, testDT)

	cursor := Vec2{100, 0}
	s.Update(Controls{Aim: true, Cursor: cursor}, testDT)
	if _, ok := s.Arrow(); !ok {
		t.Fatal("arrow hidden while aiming")
	}
	s.Update(Controls{Aim: true, Cursor: cursor}, testDT)
	s.Update(Controls{Cursor: cursor}, testDT)

	m := mustMember(t, s.Chain(), 2)
	if !m.Thrown() {
		t.Fatal("member not thrown on release")
	}
	wantSpeed := 300 + 5000*testDT
	if m.Motion.Speed != wantSpeed {
		t.Errorf("speed = %v, want %v", m.Motion.Speed, wantSpeed)
	}
	assertVec(t, "direction", m.Motion.Direction, Vec2{1, 0})
	if _, ok := s.Arrow(); ok {
		t.Error("arrow still shown after release")
	}

	s.Update(Controls{}, testDT)
	assertVec(t, "thrown member", m.Position, Vec2{wantSpeed * testDT, 0})
}

func TestSimDespawnsStrays(t *testing.T) {
	s := newTestSim(func(cfg *Config) { cfg.DespawnDistance = 10 })
	s.Update(Controls{Spawn: true}, testDT)
	s.Update(Controls{Aim: true, Cursor: Vec2{0, 100}}, testDT)
	s.Update(Controls{Cursor: Vec2{0, 100}}, testDT)

	if _, ok := s.Chain().Member(2); !ok {
		t.Fatal("thrown member despawned too early")
	}
	for range 3 {
		s.Update(Controls{}, testDT)
	}
	if _, ok := s.Chain().Member(2); ok {
		t.Error("thrown member beyond despawn distance still present")
	}
	assertValid(t, s.Chain())
}

func TestSimOrientationFollowsLeader(t *testing.T) {
	s := newTestSim(nil)
	s.Update(Controls{Move: Vec2{-1, 0}}, testDT)
	if got := s.Orientation(); got != (Orientation{FacingSide, true}) {
		t.Errorf("Orientation = %+v, want side flipped", got)
	}
}

func TestSimScriptKeepsChainValid(t *testing.T) {
	script, err := LoadScript([]byte(`{"steps": [
		{"action": "spawn", "count": 6},
		{"action": "move", "x": 1, "y": 1, "frames": 60},
		{"action": "aim", "x": 0, "y": 0, "frames": 10},
		{"action": "move", "x": -1, "y": 0, "frames": 30},
		{"action": "aim", "x": 500, "y": 0, "frames": 5},
		{"action": "spawn"},
		{"action": "wait", "frames": 120}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s := newTestSim(nil)
	s.Chain().SetDebugMode(true)
	s.Chain().SetDebugOutput(nil)
	for !script.Done() {
		s.Update(script.Next(), testDT)
		assertValid(t, s.Chain())
	}
	// 6 spawned, 2 thrown, 1 more spawned.
	if got := s.Chain().Order().Len(); got != 1+6-2+1 {
		t.Errorf("order len = %d, want 6", got)
	}
}
