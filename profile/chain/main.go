// Profiling:
// go build ./profile/chain
// go tool pprof -http=":8000" -nodefraction=0.001 ./chain cpu.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/phanxgames/slimetrain"
)

const dt = 1.0 / 60

func main() {
	rounds := 20
	ticks := 10000
	slimes := 300
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, ticks, slimes)
	p.Stop()
}

// run drives a headless sim in a slow circle, keeping roughly slimes
// followers in the chain and throwing one every two seconds.
func run(rounds, ticks, slimes int) {
	for range rounds {
		sim := slimetrain.NewSim(slimetrain.DefaultConfig(), slimetrain.Vec2{})
		for i := range ticks {
			angle := float64(i) * 0.01
			leader := sim.Chain().Leader().Position
			sim.Update(slimetrain.Controls{
				Move:   slimetrain.FromAngle(angle),
				Spawn:  sim.Chain().Order().Len() <= slimes,
				Aim:    i%120 < 30,
				Cursor: leader.Add(slimetrain.FromAngle(-angle).Scale(200)),
			}, dt)
		}
	}
}
