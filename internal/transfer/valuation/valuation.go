// Package valuation re-prices a player after a completed transfer.
package valuation

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/shopspring/decimal"
)

// Sampler yields the inflation factor applied to a player's market value.
type Sampler interface {
	Factor() float64
}

// UniformSampler draws factors uniformly from [lo, hi).
type UniformSampler struct {
	lo, hi float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewUniformSampler returns a sampler over [lo, hi). It requires
// 1 <= lo < hi <= 2 so that revaluation never lowers a price and at most
// doubles it.
func NewUniformSampler(lo, hi float64) (*UniformSampler, error) {
	if lo < 1 || hi > 2 || lo >= hi {
		return nil, fmt.Errorf("invalid inflation range [%v, %v)", lo, hi)
	}
	return &UniformSampler{
		lo: lo,
		hi: hi,
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}, nil
}

// NewSeededSampler is NewUniformSampler with a deterministic source.
func NewSeededSampler(lo, hi float64, seed uint64) (*UniformSampler, error) {
	s, err := NewUniformSampler(lo, hi)
	if err != nil {
		return nil, err
	}
	s.rng = rand.New(rand.NewPCG(seed, seed))
	return s, nil
}

// Factor returns a value in [lo, hi).
func (s *UniformSampler) Factor() float64 {
	s.mu.Lock()
	u := s.rng.Float64()
	s.mu.Unlock()

	f := s.lo + u*(s.hi-s.lo)
	if f >= s.hi {
		f = math.Nextafter(s.hi, s.lo)
	}
	return f
}

// FixedSampler always returns the same factor.
type FixedSampler float64

// Factor returns the fixed factor.
func (f FixedSampler) Factor() float64 {
	return float64(f)
}

// maxValue is the largest market value a bigint column can hold.
var maxValue = decimal.NewFromInt(math.MaxInt64)

// Inflate returns floor(value * factor), kept within [value, 2*value].
// The upper bound saturates at math.MaxInt64.
func Inflate(value int64, factor float64) int64 {
	if value <= 0 {
		return value
	}

	old := decimal.NewFromInt(value)
	limit := decimal.Min(old.Mul(decimal.NewFromInt(2)), maxValue)
	inflated := old.Mul(decimal.NewFromFloat(factor)).Floor()

	switch {
	case inflated.LessThan(old):
		return value
	case inflated.GreaterThan(limit):
		return limit.IntPart()
	}
	return inflated.IntPart()
}
