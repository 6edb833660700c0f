// Profiling:
// go build ./profile/insert
// go tool pprof -http=":8000" -nodefraction=0.001 ./insert mem.pprof

package main

import (
	"github.com/edwinsyarief/sparseset"
	"github.com/pkg/profile"
)

func main() {
	rounds := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		for range iters {
			s := sparseset.New()
			s.Reserve(numEntities)
			for i := 0; i < numEntities; i++ {
				s.Emplace(sparseset.Compose(uint32(i), 0))
			}
		}
	}
}
