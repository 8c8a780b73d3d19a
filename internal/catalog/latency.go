package catalog

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"
)

// band is a simulated latency range in seconds.
type band struct {
	min float64
	max float64
}

// The bands mirror what each endpoint class would cost against a real
// backend: reads are fast, writes slower, processing heavy, and the fake
// model inference pathological on purpose so the duration histogram has a
// long tail to chart.
var (
	bandRead    = band{0.05, 0.2}
	bandWrite   = band{0.1, 0.3}
	bandHeavy   = band{0.3, 0.8}
	bandPredict = band{0.1, 59.0}
	bandLookup  = band{0.05, 0.5}
)

// Simulator produces the fabricated latency and randomness behind the demo
// endpoints. Scale multiplies every band; zero disables sleeping entirely,
// which tests and fast local demos rely on.
type Simulator struct {
	scale float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator returns a Simulator with the given latency scale and an
// arbitrary random sequence.
func NewSimulator(scale float64) *Simulator {
	return NewSimulatorWithSeed(scale, rand.Uint64())
}

// NewSimulatorWithSeed pins the random sequence so tests are reproducible.
func NewSimulatorWithSeed(scale float64, seed uint64) *Simulator {
	return &Simulator{
		scale: scale,
		rng:   rand.New(rand.NewPCG(seed, seed)),
	}
}

// sleep blocks for a random duration drawn from b, scaled by the configured
// factor. It returns the seconds actually slept, or early with the context
// error when the caller goes away mid-sleep.
func (s *Simulator) sleep(ctx context.Context, b band) (float64, error) {
	seconds := s.uniform(b.min, b.max) * s.scale
	if seconds <= 0 {
		return 0, ctx.Err()
	}

	timer := time.NewTimer(time.Duration(seconds * float64(time.Second)))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-timer.C:
		return seconds, nil
	}
}

func (s *Simulator) uniform(min, max float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return min + s.rng.Float64()*(max-min)
}

// chance reports true with probability p.
func (s *Simulator) chance(p float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Float64() < p
}

func (s *Simulator) intN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.IntN(n)
}
