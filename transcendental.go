package ratmath

import (
	"fmt"
	"math"
	"math/big"
)

// Enclosure is a rigorous interval result plus a flag for results obtained
// by dense sampling rather than an exact interval transform. Sampled
// enclosures are widened to stay safe but are not tight; callers that need
// the corner-exact guarantee must check Approximate.
type Enclosure struct {
	RationalInterval
	Approximate bool
}

// epsilonFor decodes the precision convention of the transcendental
// functions: a positive n means "within 1/n", a negative n means "within
// 10^-n", zero selects DefaultPrecision.
func epsilonFor(prec int) Rational {
	if prec == 0 {
		prec = DefaultPrecision
	}
	if prec > 0 {
		return newRational(big.NewInt(1), big.NewInt(int64(prec)))
	}
	return RationalFromInt(1).mulPow10(prec)
}

// padFloat converts a float estimate into a conservatively padded rational
// interval. The padding is relative 2^-40 plus a small absolute floor, far
// beyond the error of any float64 computation that feeds it.
func padFloat(f float64) (RationalInterval, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return RationalInterval{}, fmt.Errorf("float fallback overflowed: %w", ErrConvergenceLimit)
	}
	fr := new(big.Rat).SetFloat64(f)
	center := newRational(fr.Num(), fr.Denom())
	rel := center.Abs().Mul(newRational(big.NewInt(1), new(big.Int).Lsh(big1, 40)))
	pad := rel.Add(newRational(big.NewInt(1), new(big.Int).Exp(big10, big.NewInt(18), nil)))
	return RationalInterval{low: center.Sub(pad), high: center.Add(pad)}, nil
}

// cfEnclosure truncates a continued-fraction term stream at the shortest
// prefix whose last two convergents differ by less than eps. Successive
// convergents bracket the true value, so the sorted pair is an enclosure.
func cfEnclosure(term func(i int) (*big.Int, bool), eps Rational) (RationalInterval, error) {
	conv := newCFConvergents()
	var prev, cur Rational
	for i := 0; i < MaxSeriesTerms; i++ {
		t, ok := term(i)
		if !ok {
			break
		}
		cur = conv.push(t)
		if i > 0 && cur.Sub(prev).Abs().Cmp(eps) < 0 {
			return NewRationalInterval(prev, cur), nil
		}
		prev = cur
	}
	return RationalInterval{}, fmt.Errorf("continued fraction did not converge within %s: %w", eps, ErrConvergenceLimit)
}

// Pi returns an interval containing pi, within the requested precision.
func Pi(prec int) (RationalInterval, error) {
	return cfEnclosure(func(i int) (*big.Int, bool) {
		if i >= len(piCFTerms) {
			return nil, false
		}
		return big.NewInt(piCFTerms[i]), true
	}, epsilonFor(prec))
}

// E returns an interval containing Euler's number. The continued fraction
// of e follows a fixed pattern, so terms are generated on demand.
func E(prec int) (RationalInterval, error) {
	return cfEnclosure(func(i int) (*big.Int, bool) {
		return big.NewInt(eCFTerm(i)), true
	}, epsilonFor(prec))
}

// Ln2 encloses ln 2 via the series sum 1/(k*2^k), whose tail after any term
// is bounded by that term.
func Ln2(prec int) (RationalInterval, error) {
	eps := epsilonFor(prec)
	sum := RationalFromInt(0)
	pow := newRational(big.NewInt(1), big.NewInt(2))
	half := pow
	for k := 1; k <= MaxSeriesTerms; k++ {
		term := pow.Mul(newRational(big.NewInt(1), big.NewInt(int64(k))))
		sum = sum.Add(term)
		if term.Cmp(eps) < 0 {
			return RationalInterval{low: sum, high: sum.Add(term)}, nil
		}
		pow = pow.Mul(half)
	}
	return RationalInterval{}, fmt.Errorf("ln 2 did not converge within %s: %w", eps, ErrConvergenceLimit)
}

// expSeries encloses e^r for |r| < 1 by the Taylor series, with error bound
// twice the last computed term. ok is false when the term cap or the
// denominator safety bound tripped.
func expSeries(r Rational, eps Rational) (RationalInterval, bool) {
	sum := RationalFromInt(1)
	term := RationalFromInt(1)
	for n := 1; n <= MaxSeriesTerms; n++ {
		term = term.Mul(r).Mul(newRational(big.NewInt(1), big.NewInt(int64(n))))
		sum = sum.Add(term)
		if sum.d().BitLen() > maxSeriesDenomBits {
			return RationalInterval{}, false
		}
		if term.Abs().Cmp(eps) < 0 && n >= 2 {
			bound := term.Abs().Mul(RationalFromInt(2))
			return RationalInterval{low: sum.Sub(bound), high: sum.Add(bound)}, true
		}
	}
	return RationalInterval{}, false
}

// Exp encloses e^x. The argument is range-reduced as x = k*ln2 + r with
// |r| < ln2: k comes from flooring x/ln2 (corrected by one when the
// remainder lands negative), the series runs on r, and the result is
// rescaled by an exact integer power of two, never a floating power.
func Exp(x Rational, prec int) (RationalInterval, error) {
	eps := epsilonFor(prec)
	if x.IsZero() {
		return Point(RationalFromInt(1)), nil
	}

	// The ln2 enclosure must be tight enough that k*width, amplified by the
	// final 2^k rescale, stays well under eps. The float estimate only
	// tunes the tightness, never the bounds, and must stay finite before it
	// is converted to a shift count.
	fx := x.Float64()
	if math.IsNaN(fx) || math.Abs(fx) > maxExpArgument {
		return RationalInterval{}, fmt.Errorf("exp(%s): argument exceeds the range-reduction bound %d: %w", x, maxExpArgument, ErrConvergenceLimit)
	}
	kEst := int(math.Abs(fx)/math.Ln2) + 2
	kPos := 0
	if x.Sign() > 0 {
		kPos = kEst
	}
	amp := newRational(big.NewInt(1), new(big.Int).Lsh(big1, uint(kPos)))
	ln2Prec := eps.Mul(amp).Mul(newRational(big.NewInt(1), big.NewInt(int64(8*kEst))))
	ln2, err := Ln2(precisionOf(ln2Prec))
	if err != nil {
		return RationalInterval{}, err
	}

	k := x.floorDiv(ln2.Midpoint())
	r := Point(x).Sub(ln2.Mul(Point(RationalFromInt(int64(k)))))
	if r.High().Sign() < 0 {
		k--
		r = Point(x).Sub(ln2.Mul(Point(RationalFromInt(int64(k)))))
	}

	seriesEps := eps.Mul(amp).Mul(newRational(big.NewInt(1), big.NewInt(8)))
	loIv, okLo := expSeries(r.Low(), seriesEps)
	hiIv, okHi := expSeries(r.High(), seriesEps)
	if !okLo || !okHi {
		return padFloat(math.Exp(fx))
	}

	// e^x on an interval is monotone, so the enclosure spans the lower
	// bound at r.low to the upper bound at r.high.
	out := RationalInterval{low: loIv.Low(), high: hiIv.High()}
	return scalePow2(out, k), nil
}

// floorDiv is floor(r / d) as a machine int, used only for range-reduction
// counts, which are small by construction.
func (r Rational) floorDiv(d Rational) int {
	q, _ := r.Div(d)
	f := q.Floor()
	if !f.big().IsInt64() {
		return 0
	}
	return int(f.big().Int64())
}

// scalePow2 multiplies an interval by 2^k using exact integer
// exponentiation.
func scalePow2(iv RationalInterval, k int) RationalInterval {
	if k == 0 {
		return iv
	}
	p := new(big.Int).Lsh(big1, uint(abs(k)))
	var s Rational
	if k > 0 {
		s = newRational(new(big.Int).Set(p), big.NewInt(1))
	} else {
		s = newRational(big.NewInt(1), new(big.Int).Set(p))
	}
	return iv.Mul(Point(s))
}

// precisionOf converts an epsilon back into the precision convention: the
// smallest 10^-n at or below eps.
func precisionOf(eps Rational) int {
	n := 1
	cur := newRational(big.NewInt(1), big.NewInt(10))
	for cur.Cmp(eps) > 0 && n < 1000 {
		n++
		cur = cur.mulPow10(-1)
	}
	return -n
}

// lnSeries encloses ln(1+z) for |z| <= 1/2, error bound twice the last
// term.
func lnSeries(z Rational, eps Rational) (RationalInterval, bool) {
	sum := RationalFromInt(0)
	pow := RationalFromInt(1)
	for m := 1; m <= MaxSeriesTerms; m++ {
		pow = pow.Mul(z)
		term := pow.Mul(newRational(big.NewInt(1), big.NewInt(int64(m))))
		if m%2 == 0 {
			term = term.Neg()
		}
		sum = sum.Add(term)
		if sum.d().BitLen() > maxSeriesDenomBits {
			return RationalInterval{}, false
		}
		if term.Abs().Cmp(eps) < 0 && m >= 2 {
			bound := term.Abs().Mul(RationalFromInt(2))
			return RationalInterval{low: sum.Sub(bound), high: sum.Add(bound)}, true
		}
	}
	return RationalInterval{}, false
}

// Ln encloses the natural logarithm of a positive rational. The argument is
// reduced by exact halving and doubling into [3/4, 3/2), which keeps the
// series ratio at most 1/2, and k*ln2 is added back as an interval.
func Ln(x Rational, prec int) (RationalInterval, error) {
	if x.Sign() <= 0 {
		return RationalInterval{}, fmt.Errorf("ln(%s): %w", x, ErrDomain)
	}
	eps := epsilonFor(prec)
	if x.Equal(RationalFromInt(1)) {
		return Point(RationalFromInt(0)), nil
	}

	half := newRational(big.NewInt(1), big.NewInt(2))
	upper := newRational(big.NewInt(3), big.NewInt(2))
	lower := newRational(big.NewInt(3), big.NewInt(4))
	y := x
	k := 0
	for y.Cmp(upper) >= 0 {
		y = y.Mul(half)
		k++
	}
	for y.Cmp(lower) < 0 {
		y = y.Mul(RationalFromInt(2))
		k--
	}

	seriesIv, ok := lnSeries(y.Sub(RationalFromInt(1)), eps.Mul(half))
	if !ok {
		return padFloat(math.Log(x.Float64()))
	}
	if k == 0 {
		return seriesIv, nil
	}
	ln2Prec := eps.Mul(newRational(big.NewInt(1), big.NewInt(int64(4*(abs(k)+1)))))
	ln2, err := Ln2(precisionOf(ln2Prec))
	if err != nil {
		return RationalInterval{}, err
	}
	return seriesIv.Add(ln2.Mul(Point(RationalFromInt(int64(k))))), nil
}

// Log encloses log_base(x).
func Log(x, base Rational, prec int) (RationalInterval, error) {
	if base.Sign() <= 0 || base.Equal(RationalFromInt(1)) {
		return RationalInterval{}, fmt.Errorf("log base %s: %w", base, ErrDomain)
	}
	num, err := Ln(x, prec)
	if err != nil {
		return RationalInterval{}, err
	}
	den, err := Ln(base, prec)
	if err != nil {
		return RationalInterval{}, err
	}
	out, err := num.Div(den)
	if err != nil {
		// A loose denominator enclosure can brush zero even though
		// ln(base) != 0; tightening resolves it.
		tighter := precisionOf(epsilonFor(prec).Mul(newRational(big.NewInt(1), big.NewInt(1000))))
		den, err = Ln(base, tighter)
		if err != nil {
			return RationalInterval{}, err
		}
		return num.Div(den)
	}
	return out, nil
}

// ExpInterval encloses e^iv by monotonicity.
func ExpInterval(iv RationalInterval, prec int) (RationalInterval, error) {
	lo, err := Exp(iv.Low(), prec)
	if err != nil {
		return RationalInterval{}, err
	}
	if iv.IsPoint() {
		return lo, nil
	}
	hi, err := Exp(iv.High(), prec)
	if err != nil {
		return RationalInterval{}, err
	}
	return RationalInterval{low: lo.Low(), high: hi.High()}, nil
}

// LnInterval encloses ln over an interval by monotonicity.
func LnInterval(iv RationalInterval, prec int) (RationalInterval, error) {
	lo, err := Ln(iv.Low(), prec)
	if err != nil {
		return RationalInterval{}, err
	}
	if iv.IsPoint() {
		return lo, nil
	}
	hi, err := Ln(iv.High(), prec)
	if err != nil {
		return RationalInterval{}, err
	}
	return RationalInterval{low: lo.Low(), high: hi.High()}, nil
}
