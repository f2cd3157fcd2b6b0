package falldown

import (
	"github.com/vovakirdan/falldown/internal/config"
)

// scriptedRNG replays a fixed sequence of values, cycling when exhausted.
type scriptedRNG struct {
	vals  []float64
	calls int
}

func (r *scriptedRNG) Float64() float64 {
	v := r.vals[r.calls%len(r.vals)]
	r.calls++
	return v
}

func newScripted(vals ...float64) *scriptedRNG {
	return &scriptedRNG{vals: vals}
}

// testWorld builds a default-config world on a scripted RNG.
func testWorld(vals ...float64) (*World, *scriptedRNG) {
	if len(vals) == 0 {
		vals = []float64{0.5}
	}
	rng := newScripted(vals...)
	return NewWorld(config.DefaultFallConfig(), rng), rng
}
