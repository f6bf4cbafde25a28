package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/IvanPalatovA/GraphAlgorithmsLab/core"
)

// Probability domain for Random.
const (
	probMin = 0.0
	probMax = 1.0
)

// Default weight range when WithWeightRange is not given.
const (
	defaultMinWeight = 1.0
	defaultMaxWeight = 10.0
)

// Sentinel errors for generator configuration.
var (
	// ErrNegativeVertexCount indicates n < 0 passed to Random.
	ErrNegativeVertexCount = errors.New("builder: vertex count must be non-negative")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: edge probability must lie in [0, 1]")
)

// Options configures Random. Use the With* functional options.
type Options struct {
	// Directed selects the arc model (default undirected, matching core).
	Directed bool

	// MinWeight and MaxWeight bound the uniform weight draw; if inverted
	// they are swapped rather than rejected.
	MinWeight float64
	MaxWeight float64

	// Rand is the randomness source. Defaults to a freshly seeded
	// generator; inject a seeded one for reproducible graphs.
	Rand *rand.Rand
}

// Option is a functional option for Random.
type Option func(*Options)

// WithDirected selects directed (true) or undirected (false) output.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.Directed = directed }
}

// WithWeightRange bounds the uniform weight distribution. An inverted
// pair is swapped, mirroring the generator's lenient original contract.
func WithWeightRange(min, max float64) Option {
	return func(o *Options) {
		o.MinWeight = min
		o.MaxWeight = max
	}
}

// WithRand injects the randomness source, typically a seeded *rand.Rand
// for deterministic test graphs.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// Random samples a graph over n vertices where each admissible pair of
// distinct vertices is connected with probability p (self-loops are
// never generated). Weights are uniform in [MinWeight, MaxWeight].
//
// Returns ErrNegativeVertexCount or ErrInvalidProbability on bad input.
// Complexity: O(n²) Bernoulli trials.
func Random(n int, p float64, opts ...Option) (*core.Graph, error) {
	// 1) Validate parameters before any allocation.
	if n < 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrNegativeVertexCount)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("p=%v: %w", p, ErrInvalidProbability)
	}

	// 2) Resolve options over defaults.
	cfg := Options{
		MinWeight: defaultMinWeight,
		MaxWeight: defaultMaxWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MinWeight > cfg.MaxWeight {
		cfg.MinWeight, cfg.MaxWeight = cfg.MaxWeight, cfg.MinWeight
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	g, err := core.NewGraph(n, core.WithDirected(cfg.Directed))
	if err != nil {
		return nil, err
	}

	// 3) Fixed trial order: u ascending, v ascending; undirected graphs
	//    trial only unordered pairs (v > u) so each edge gets one draw.
	span := cfg.MaxWeight - cfg.MinWeight
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if !cfg.Directed && v <= u {
				continue
			}
			if rng.Float64() > p {
				continue
			}
			w := cfg.MinWeight + rng.Float64()*span
			if err := g.AddEdge(u, v, w); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
