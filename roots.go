package ratmath

import (
	"fmt"
	"math"
	"math/big"
)

// NewtonRoot encloses the n-th root of q by Newton's method on a^n = q,
// iterating a <- a + (q/a^(n-1) - a)/n from a floating seed. The loop stops
// when two successive iterates differ by less than epsilon; the pair is then
// nudged outward until it provably brackets the root by exact power
// comparison. Runaway rational denominators trigger the padded float
// fallback.
func NewtonRoot(q Rational, n int, prec int) (RationalInterval, error) {
	if n <= 0 {
		return RationalInterval{}, fmt.Errorf("%d-th root: %w", n, ErrDomain)
	}
	if q.Sign() < 0 {
		if n%2 == 0 {
			return RationalInterval{}, fmt.Errorf("even root of %s: %w", q, ErrDomain)
		}
		iv, err := NewtonRoot(q.Neg(), n, prec)
		if err != nil {
			return RationalInterval{}, err
		}
		return iv.Neg(), nil
	}
	if q.IsZero() {
		return Point(RationalFromInt(0)), nil
	}
	if n == 1 {
		return Point(q), nil
	}

	eps := epsilonFor(prec)
	seed := math.Pow(q.Float64(), 1/float64(n))
	if seed <= 0 || math.IsNaN(seed) || math.IsInf(seed, 0) {
		seed = 1
	}
	fr := new(big.Rat).SetFloat64(seed)
	a := newRational(fr.Num(), fr.Denom())
	if a.Sign() <= 0 {
		a = RationalFromInt(1)
	}
	nRat := RationalFromInt(int64(n))

	for i := 0; i < MaxNewtonIterations; i++ {
		if a.Sign() <= 0 {
			// An overshoot below zero cannot happen near the positive root;
			// restart from a safe seed.
			a = RationalFromInt(1)
		}
		pow, err := a.Pow(n - 1)
		if err != nil {
			return RationalInterval{}, err
		}
		ratio, err := q.Div(pow)
		if err != nil {
			return RationalInterval{}, err
		}
		step, _ := ratio.Sub(a).Div(nRat)
		next := a.Add(step)
		if next.d().BitLen() > maxSeriesDenomBits {
			return padFloat(math.Pow(q.Float64(), 1/float64(n)))
		}
		if next.Sub(a).Abs().Cmp(eps) < 0 {
			return bracketRoot(q, n, a, next, eps)
		}
		a = next
	}
	return RationalInterval{}, fmt.Errorf("newton root of %s: %w", q, ErrConvergenceLimit)
}

// bracketRoot sorts the final iterate pair and widens it by epsilon steps
// until low^n <= q <= high^n holds exactly. q is positive here, so the
// lower bound is floored at zero rather than stepped below the root of a
// value smaller than epsilon.
func bracketRoot(q Rational, n int, a, b Rational, eps Rational) (RationalInterval, error) {
	iv := NewRationalInterval(a, b)
	low, high := iv.Low(), iv.High()
	for i := 0; i < 64; i++ {
		lp, err := low.Pow(n)
		if err == nil && lp.Cmp(q) <= 0 {
			break
		}
		low = low.Sub(eps)
		if low.Sign() < 0 {
			low = RationalFromInt(0)
		}
	}
	for i := 0; i < 64; i++ {
		hp, err := high.Pow(n)
		if err != nil {
			high = high.Add(eps)
			continue
		}
		if hp.Cmp(q) >= 0 {
			break
		}
		high = high.Add(eps)
	}
	lp, errL := low.Pow(n)
	hp, errH := high.Pow(n)
	if errL != nil || errH != nil || lp.Cmp(q) > 0 || hp.Cmp(q) < 0 {
		return RationalInterval{}, fmt.Errorf("root bracketing of %s: %w", q, ErrConvergenceLimit)
	}
	return RationalInterval{low: low, high: high}, nil
}

// RationalPower encloses base^exp for a rational exponent. Integer
// exponents stay exact; exponents with denominator at most 10 go through
// NewtonRoot and exact integer powers; everything else is exp(ln(base)*exp).
func RationalPower(base, exp Rational, prec int) (RationalInterval, error) {
	if exp.IsInteger() {
		if !exp.n().IsInt64() {
			return RationalInterval{}, fmt.Errorf("exponent %s: %w", exp, ErrConvergenceLimit)
		}
		p, err := base.Pow(int(exp.n().Int64()))
		if err != nil {
			return RationalInterval{}, err
		}
		return Point(p), nil
	}

	den := exp.d()
	if den.IsInt64() && den.Int64() <= 10 {
		root, err := NewtonRoot(base, int(den.Int64()), prec)
		if err != nil {
			return RationalInterval{}, err
		}
		if !exp.n().IsInt64() {
			return RationalInterval{}, fmt.Errorf("exponent %s: %w", exp, ErrConvergenceLimit)
		}
		return root.Pow(int(exp.n().Int64()))
	}

	if base.Sign() <= 0 {
		return RationalInterval{}, fmt.Errorf("%s^%s: %w", base, exp, ErrDomain)
	}
	ln, err := Ln(base, prec)
	if err != nil {
		return RationalInterval{}, err
	}
	return ExpInterval(ln.Mul(Point(exp)), prec)
}
