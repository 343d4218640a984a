package ratmath

import "fmt"

// FractionInterval is a closed interval over finite Fractions, low <= high
// by value. It exists for mediant-based recursive partitioning; there is no
// infinity support here.
type FractionInterval struct {
	low, high Fraction
}

func NewFractionInterval(a, b Fraction) (FractionInterval, error) {
	if a.IsInfinite() || b.IsInfinite() {
		return FractionInterval{}, fmt.Errorf("fraction intervals must have finite endpoints: %w", ErrUndefinedOperation)
	}
	if a.Cmp(b) > 0 {
		a, b = b, a
	}
	return FractionInterval{low: a, high: b}, nil
}

func (iv FractionInterval) Low() Fraction  { return iv.low }
func (iv FractionInterval) High() Fraction { return iv.high }

func (iv FractionInterval) String() string {
	return iv.low.String() + ":" + iv.high.String()
}

func (iv FractionInterval) Mediant() Fraction {
	return Mediant(iv.low, iv.high)
}

// MediantSplit divides the interval in two at the mediant of its endpoints.
func (iv FractionInterval) MediantSplit() (FractionInterval, FractionInterval) {
	m := iv.Mediant()
	return FractionInterval{low: iv.low, high: m}, FractionInterval{low: m, high: iv.high}
}

// PartitionWithMediants recursively mediant-splits to the given depth,
// yielding 2^depth subintervals in order.
func (iv FractionInterval) PartitionWithMediants(depth int) ([]FractionInterval, error) {
	if depth < 0 || depth > 30 {
		return nil, fmt.Errorf("partition depth %d: %w", depth, ErrOutOfRange)
	}
	parts := []FractionInterval{iv}
	for d := 0; d < depth; d++ {
		next := make([]FractionInterval, 0, 2*len(parts))
		for _, p := range parts {
			a, b := p.MediantSplit()
			next = append(next, a, b)
		}
		parts = next
	}
	return parts, nil
}

// PartitionWith splits the interval at the points the callback supplies.
// Points must be finite and lie strictly inside the interval; they are used
// in the order given and must be increasing.
func (iv FractionInterval) PartitionWith(fn func(FractionInterval) []Fraction) ([]FractionInterval, error) {
	points := fn(iv)
	parts := make([]FractionInterval, 0, len(points)+1)
	prev := iv.low
	for _, p := range points {
		if p.IsInfinite() {
			return nil, fmt.Errorf("partition point %s: %w", p, ErrUndefinedOperation)
		}
		if p.Cmp(prev) <= 0 || p.Cmp(iv.high) >= 0 {
			return nil, fmt.Errorf("partition point %s outside %s: %w", p, iv, ErrOutOfRange)
		}
		parts = append(parts, FractionInterval{low: prev, high: p})
		prev = p
	}
	return append(parts, FractionInterval{low: prev, high: iv.high}), nil
}

// ToRationalInterval reduces both endpoints to canonical Rationals.
func (iv FractionInterval) ToRationalInterval() (RationalInterval, error) {
	low, err := iv.low.Reduce()
	if err != nil {
		return RationalInterval{}, err
	}
	high, err := iv.high.Reduce()
	if err != nil {
		return RationalInterval{}, err
	}
	return NewRationalInterval(low, high), nil
}
