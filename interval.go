package ratmath

import (
	"fmt"
	"math/big"
	"strings"
)

// RationalInterval is an immutable closed interval [low, high] over
// Rationals, low <= high. Operations return new intervals whose bounds are
// selected by exact comparison, never by floating approximation.
type RationalInterval struct {
	low, high Rational
}

// NewRationalInterval sorts its two endpoints into order.
func NewRationalInterval(a, b Rational) RationalInterval {
	if a.Cmp(b) > 0 {
		a, b = b, a
	}
	return RationalInterval{low: a, high: b}
}

// Point is the degenerate interval [r, r].
func Point(r Rational) RationalInterval {
	return RationalInterval{low: r, high: r}
}

// ParseInterval decodes the "low:high" form.
func ParseInterval(s string) (RationalInterval, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return RationalInterval{}, parseErr(s, "expected low:high")
	}
	low, err := ParseRational(parts[0])
	if err != nil {
		return RationalInterval{}, err
	}
	high, err := ParseRational(parts[1])
	if err != nil {
		return RationalInterval{}, err
	}
	return NewRationalInterval(low, high), nil
}

func (iv RationalInterval) Low() Rational  { return iv.low }
func (iv RationalInterval) High() Rational { return iv.high }

func (iv RationalInterval) NumericKind() Kind { return KindInterval }

func (iv RationalInterval) String() string {
	return iv.low.String() + ":" + iv.high.String()
}

func (iv RationalInterval) IsPoint() bool { return iv.low.Equal(iv.high) }

func (iv RationalInterval) Width() Rational { return iv.high.Sub(iv.low) }

func (iv RationalInterval) Equal(o RationalInterval) bool {
	return iv.low.Equal(o.low) && iv.high.Equal(o.high)
}

func (iv RationalInterval) Add(o RationalInterval) RationalInterval {
	return RationalInterval{low: iv.low.Add(o.low), high: iv.high.Add(o.high)}
}

func (iv RationalInterval) Sub(o RationalInterval) RationalInterval {
	return RationalInterval{low: iv.low.Sub(o.high), high: iv.high.Sub(o.low)}
}

func minMax4(a, b, c, d Rational) (Rational, Rational) {
	lo, hi := a, a
	for _, v := range []Rational{b, c, d} {
		if v.Cmp(lo) < 0 {
			lo = v
		}
		if v.Cmp(hi) > 0 {
			hi = v
		}
	}
	return lo, hi
}

// Mul applies the corner rule: the product of all four endpoint pairs,
// min/max selected by exact comparison.
func (iv RationalInterval) Mul(o RationalInterval) RationalInterval {
	lo, hi := minMax4(
		iv.low.Mul(o.low), iv.low.Mul(o.high),
		iv.high.Mul(o.low), iv.high.Mul(o.high),
	)
	return RationalInterval{low: lo, high: hi}
}

// Div fails when the divisor interval contains zero: a point-zero divisor is
// a plain division by zero, anything else containing zero makes the quotient
// indeterminate.
func (iv RationalInterval) Div(o RationalInterval) (RationalInterval, error) {
	if o.IsPoint() && o.low.IsZero() {
		return RationalInterval{}, fmt.Errorf("%s / %s: %w", iv, o, ErrDivisionByZero)
	}
	if o.ContainsZero() {
		return RationalInterval{}, fmt.Errorf("%s / %s: %w", iv, o, ErrIndeterminateDivision)
	}
	rl, _ := iv.low.Div(o.low)
	rh, _ := iv.low.Div(o.high)
	sl, _ := iv.high.Div(o.low)
	sh, _ := iv.high.Div(o.high)
	lo, hi := minMax4(rl, rh, sl, sh)
	return RationalInterval{low: lo, high: hi}, nil
}

func (iv RationalInterval) Neg() RationalInterval {
	return RationalInterval{low: iv.high.Neg(), high: iv.low.Neg()}
}

// Pow raises the interval to an integer power. Even powers of an interval
// straddling zero bottom out at zero; negative powers reciprocate first and
// fail if the interval contains zero.
func (iv RationalInterval) Pow(n int) (RationalInterval, error) {
	if n == 0 {
		if iv.ContainsZero() {
			return RationalInterval{}, fmt.Errorf("%s^0: %w", iv, ErrUndefinedOperation)
		}
		return Point(RationalFromInt(1)), nil
	}
	if n < 0 {
		if iv.ContainsZero() {
			return RationalInterval{}, fmt.Errorf("%s^%d: %w", iv, n, ErrDivisionByZero)
		}
		rl, _ := iv.high.Reciprocal()
		rh, _ := iv.low.Reciprocal()
		return NewRationalInterval(rl, rh).Pow(-n)
	}
	pl, err := iv.low.Pow(n)
	if err != nil {
		return RationalInterval{}, err
	}
	ph, err := iv.high.Pow(n)
	if err != nil {
		return RationalInterval{}, err
	}
	if n%2 == 0 && iv.ContainsZero() {
		return RationalInterval{low: RationalFromInt(0), high: pl.Max(ph)}, nil
	}
	return NewRationalInterval(pl, ph), nil
}

func (iv RationalInterval) ContainsValue(r Rational) bool {
	return iv.low.Cmp(r) <= 0 && r.Cmp(iv.high) <= 0
}

func (iv RationalInterval) ContainsZero() bool {
	return iv.ContainsValue(RationalFromInt(0))
}

func (iv RationalInterval) Contains(o RationalInterval) bool {
	return iv.low.Cmp(o.low) <= 0 && o.high.Cmp(iv.high) <= 0
}

func (iv RationalInterval) Overlaps(o RationalInterval) bool {
	return iv.low.Cmp(o.high) <= 0 && o.low.Cmp(iv.high) <= 0
}

// Intersection returns the shared subinterval, or ok=false when the
// intervals have no common point.
func (iv RationalInterval) Intersection(o RationalInterval) (RationalInterval, bool) {
	if !iv.Overlaps(o) {
		return RationalInterval{}, false
	}
	return RationalInterval{low: iv.low.Max(o.low), high: iv.high.Min(o.high)}, true
}

// Union returns the merged interval when the two overlap or are adjacent
// (closed endpoints touching), otherwise ok=false.
func (iv RationalInterval) Union(o RationalInterval) (RationalInterval, bool) {
	if !iv.Overlaps(o) {
		return RationalInterval{}, false
	}
	return RationalInterval{low: iv.low.Min(o.low), high: iv.high.Max(o.high)}, true
}

func (iv RationalInterval) Midpoint() Rational {
	return iv.low.Add(iv.high).Mul(newRational(big.NewInt(1), big.NewInt(2)))
}

// Mediant returns the mediant of the two endpoints in lowest terms.
func (iv RationalInterval) Mediant() Rational {
	num := new(big.Int).Add(iv.low.n(), iv.high.n())
	den := new(big.Int).Add(iv.low.d(), iv.high.d())
	return newRational(num, den)
}

// ShortestDecimal finds the rational with the smallest power-of-base
// denominator lying inside the interval, by scaling the interval by growing
// powers of the base and testing for an integer in the scaled range. A point
// interval whose denominator has a prime factor outside the base can never
// be represented and fails.
func (iv RationalInterval) ShortestDecimal(base int) (Rational, error) {
	if base < 2 {
		return Rational{}, fmt.Errorf("base %d: %w", base, ErrOutOfRange)
	}
	if iv.IsPoint() {
		// Representable iff every prime factor of the reduced denominator
		// divides the base.
		d := new(big.Int).Set(iv.low.d())
		b := big.NewInt(int64(base))
		for d.Cmp(big1) != 0 {
			g := new(big.Int).GCD(nil, nil, d, b)
			if g.Cmp(big1) == 0 {
				return Rational{}, fmt.Errorf("%s has no base-%d representation: %w", iv.low, base, ErrNoRepresentableValue)
			}
			d.Quo(d, g)
		}
		return iv.low, nil
	}
	b := RationalFromInt(int64(base))
	scale := RationalFromInt(1)
	for k := 0; ; k++ {
		lo := iv.low.Mul(scale).Ceil()
		hi := iv.high.Mul(scale).Floor()
		if lo.Cmp(hi) <= 0 {
			den := new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(k)), nil)
			return newRational(lo.Big(), den), nil
		}
		// Once base^k * width >= 1 an integer must exist, so the loop is
		// bounded; the explicit cap guards the invariant.
		if k > MaxPeriodDigits {
			return Rational{}, fmt.Errorf("shortest decimal search: %w", ErrNoRepresentableValue)
		}
		scale = scale.Mul(b)
	}
}

// decimalAt rounds r outward to d fractional digits: down when up is false,
// up otherwise. It returns the rounded value and its plain decimal string.
func decimalAt(r Rational, d int, up bool) (Rational, string) {
	scaled := r.mulPow10(d)
	var i Integer
	if up {
		i = scaled.Ceil()
	} else {
		i = scaled.Floor()
	}
	v := i.Rational().mulPow10(-d)

	s := new(big.Int).Abs(i.big()).String()
	sign := ""
	if i.Sign() < 0 {
		sign = "-"
	}
	if d == 0 {
		return v, sign + s
	}
	for len(s) <= d {
		s = "0" + s
	}
	return v, sign + s[:len(s)-d] + "." + s[len(s)-d:]
}

// CompactedDecimalInterval renders an outward-rounded decimal enclosure of
// the interval at the fewest fractional digits for which the rounding at
// most doubles the width, with the endpoints' common prefix factored out:
// "3.145:3.147" compacts to "3.14[5,7]". Candidate precisions are verified
// by exact comparison before being accepted.
func (iv RationalInterval) CompactedDecimalInterval(maxDigits int) string {
	width := iv.Width()
	two := RationalFromInt(2)
	for d := 0; d <= maxDigits; d++ {
		lo, loS := decimalAt(iv.low, d, false)
		hi, hiS := decimalAt(iv.high, d, true)
		rounded := hi.Sub(lo)
		ok := loS == hiS || rounded.Cmp(width.Mul(two)) <= 0
		if ok || d == maxDigits {
			if loS == hiS {
				return loS
			}
			return compactPair(loS, hiS)
		}
	}
	return iv.String()
}

func compactPair(lo, hi string) string {
	if strings.HasPrefix(lo, "-") || strings.HasPrefix(hi, "-") {
		return lo + ":" + hi
	}
	if !strings.Contains(lo, ".") || !strings.Contains(hi, ".") ||
		strings.IndexByte(lo, '.') != strings.IndexByte(hi, '.') {
		return lo + ":" + hi
	}
	p := 0
	for p < len(lo) && p < len(hi) && lo[p] == hi[p] {
		p++
	}
	if p <= strings.IndexByte(lo, '.')+1 || p == len(lo) || p == len(hi) {
		return lo + ":" + hi
	}
	return lo[:p] + "[" + lo[p:] + "," + hi[p:] + "]"
}

// RelativeDecimalInterval renders the interval as "midpoint +- delta" with
// both parts rounded to d fractional digits at the fewest d for which the
// result still encloses the interval, verified exactly.
func (iv RationalInterval) RelativeDecimalInterval(maxDigits int) string {
	mid := iv.Midpoint()
	for d := 0; d <= maxDigits; d++ {
		m, mS := decimalAt(mid, d, false)
		delta := m.Sub(iv.low).Max(iv.high.Sub(m))
		dv, dS := decimalAt(delta, d, true)
		encloses := m.Sub(dv).Cmp(iv.low) <= 0 && iv.high.Cmp(m.Add(dv)) <= 0
		if encloses && (dv.Cmp(iv.Width()) <= 0 || d == maxDigits) {
			return mS + " +- " + dS
		}
	}
	return iv.String()
}
