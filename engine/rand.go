package engine

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/fluid-sketch/common"
)

// NewRandom returns the run's random source. Without a seed override the
// page's fxrand drives every draw, so the output matches the token hash;
// otherwise, or when fxrand is absent, a seeded generator is used.
func NewRandom(seed string) common.Random {
	if seed == "" {
		if f := js.Global.Get("fxrand"); defined(f) {
			return common.Source(func() float64 { return f.Invoke().Float() })
		}
		if h := js.Global.Get("fxhash"); defined(h) {
			seed = h.String()
		}
	}
	return common.NewSeededRNG(common.HashSeed(seed))
}
