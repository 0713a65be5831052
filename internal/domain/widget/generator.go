package widget

import (
	"math"
	"math/rand/v2"
)

const (
	DefaultMin = 1
	DefaultMax = 100

	// MaxRangeSize is the largest number of values a generator range may
	// hold. History and the fallback scan are both linear in it.
	MaxRangeSize = 1 << 20

	// maxRejectedDraws caps the rejection-sampling loop. Past it the generator
	// picks directly among the values still free.
	maxRejectedDraws = 64

	seenSizeHint = 128
)

// RangeSize returns how many values [min, max] holds. It returns 0 when
// min > max and saturates at math.MaxUint64 for the full int range.
func RangeSize(min, max int) uint64 {
	if min > max {
		return 0
	}
	// max-min wraps for wide ranges; as unsigned it is still exact.
	d := uint64(max - min)
	if d == math.MaxUint64 {
		return d
	}
	return d + 1
}

// NumberSource produces integers for a NumberList.
type NumberSource interface {
	Next() (int, error)
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithRange sets the inclusive range values are drawn from.
func WithRange(min, max int) GeneratorOption {
	return func(g *Generator) {
		g.min = min
		g.max = max
	}
}

// WithSeed makes the generator deterministic.
func WithSeed(seed uint64) GeneratorOption {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand supplies the random source directly.
func WithRand(r *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// Generator draws random integers that are unique for the lifetime of the
// instance. Each instance owns its own history.
type Generator struct {
	min     int
	max     int
	rng     *rand.Rand
	seen    map[int]struct{}
	history []int
}

// NewGenerator creates a generator over [DefaultMin, DefaultMax] unless
// WithRange says otherwise.
func NewGenerator(opts ...GeneratorOption) (*Generator, error) {
	g := &Generator{
		min: DefaultMin,
		max: DefaultMax,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.min > g.max {
		return nil, newValidationError("generator range is empty", map[string]interface{}{
			"min": g.min,
			"max": g.max,
		})
	}
	if RangeSize(g.min, g.max) > MaxRangeSize {
		return nil, newValidationError("generator range is too large", map[string]interface{}{
			"min":   g.min,
			"max":   g.max,
			"limit": MaxRangeSize,
		})
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	g.seen = make(map[int]struct{}, min(g.Capacity(), seenSizeHint))
	return g, nil
}

// Next returns a value never returned before by this generator. Once the range
// is used up it returns an error matching ErrExhausted.
func (g *Generator) Next() (int, error) {
	if g.Exhausted() {
		return 0, ErrExhausted.WithContext(map[string]interface{}{
			"min":       g.min,
			"max":       g.max,
			"generated": len(g.history),
		})
	}

	span := g.Capacity()
	for i := 0; i < maxRejectedDraws; i++ {
		candidate := g.min + g.rng.IntN(span)
		if _, taken := g.seen[candidate]; !taken {
			return g.record(candidate), nil
		}
	}

	free := make([]int, 0, g.Remaining())
	for offset := 0; offset < span; offset++ {
		v := g.min + offset
		if _, taken := g.seen[v]; !taken {
			free = append(free, v)
		}
	}
	return g.record(free[g.rng.IntN(len(free))]), nil
}

func (g *Generator) record(v int) int {
	g.seen[v] = struct{}{}
	g.history = append(g.history, v)
	return v
}

// Min returns the lower bound of the range.
func (g *Generator) Min() int { return g.min }

// Max returns the upper bound of the range.
func (g *Generator) Max() int { return g.max }

// Capacity is the number of distinct values the range holds.
func (g *Generator) Capacity() int {
	return int(RangeSize(g.min, g.max))
}

// Remaining is the number of values not yet produced.
func (g *Generator) Remaining() int {
	return g.Capacity() - len(g.history)
}

// Exhausted reports whether every value in the range has been produced.
func (g *Generator) Exhausted() bool {
	return g.Remaining() <= 0
}

// History returns produced values in production order.
func (g *Generator) History() []int {
	out := make([]int, len(g.history))
	copy(out, g.history)
	return out
}

var _ NumberSource = (*Generator)(nil)
