package slimetrain

import "testing"

// setupBenchChain creates a chain with n joined followers strung out along
// the X axis.
func setupBenchChain(n int) *Chain {
	c := NewChain(DefaultConfig())
	c.AddLeader(Vec2{})
	for range n {
		c.Inbox().RequestSpawn()
	}
	c.Tick(1.0 / 60)
	i := 0
	for m := range c.Members() {
		m.Position = Vec2{X: float64(-i) * 30}
		i++
	}
	return c
}

// --- Chain Update Benchmarks ---

func BenchmarkTick_100Followers(b *testing.B) {
	benchmarkTick(b, 100)
}

func BenchmarkTick_1000Followers(b *testing.B) {
	benchmarkTick(b, 1000)
}

func BenchmarkTick_10000Followers(b *testing.B) {
	benchmarkTick(b, 10000)
}

func benchmarkTick(b *testing.B, n int) {
	c := setupBenchChain(n)
	leader := c.Leader()
	leader.Motion = Motion{Direction: Vec2{1, 0}, Speed: 300}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Integrate(c.Members(), 1.0/60)
		c.Tick(1.0 / 60)
	}
}

// --- Attach / Detach Benchmarks ---

func BenchmarkSpawnThrow_1000Followers(b *testing.B) {
	c := setupBenchChain(1000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.Inbox().RequestSpawn()
		c.Inbox().RequestThrow(Vec2{0, 1}, 500)
		c.Tick(1.0 / 60)
	}
}

func BenchmarkSimUpdate_Script(b *testing.B) {
	s := NewSim(DefaultConfig(), Vec2{})
	for range 200 {
		s.Update(Controls{Spawn: true}, 1.0/60)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ctl := Controls{Move: FromAngle(float64(i) * 0.01), Aim: i%60 < 20, Cursor: Vec2{100, 0}}
		s.Update(ctl, 1.0/60)
		if i%60 == 20 {
			s.Update(Controls{Spawn: true}, 1.0/60)
		}
	}
}
