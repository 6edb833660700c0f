// Profiling CPU cost of repeated emplace/erase churn and a sort pass on a
// sparse set.
//
// go build ./profile/churn
// go tool pprof -http=":8000" ./churn cpu.pprof

package main

import (
	"github.com/edwinsyarief/sparseset"
	"github.com/pkg/profile"
)

func main() {
	rounds := 20
	iters := 2000
	entities := 2000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		s := sparseset.New()
		s.Reserve(numEntities)
		for i := 0; i < numEntities; i++ {
			s.Emplace(sparseset.Compose(uint32(i), 0))
		}
		for range iters {
			e := s.At(s.Size() - 1)
			s.Remove(e, nil)
			s.Emplace(e)
		}
		s.Sort(func(a, b sparseset.Entity) bool {
			return a.Index() < b.Index()
		})
	}
}
