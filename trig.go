package ratmath

import (
	"fmt"
	"math"
	"math/big"
)

// trigSamples is the grid density used for interval-valued trig arguments.
const trigSamples = 100

// trigReduce rewrites x as k*(pi/2) + r with k the nearest quadrant count,
// returning the enclosure of r and k mod 4. The pi enclosure used for the
// reduction is tightened with k so the remainder interval stays narrow.
func trigReduce(x Rational, eps Rational) (RationalInterval, int, error) {
	fx := x.Float64()
	if math.IsNaN(fx) || math.Abs(fx) > maxTrigArgument {
		return RationalInterval{}, 0, fmt.Errorf("quadrant reduction of %s: %w", x, ErrConvergenceLimit)
	}
	kEst := int(math.Abs(fx)/1.5) + 2
	piEps := eps.Mul(newRational(big.NewInt(1), big.NewInt(int64(8*kEst))))
	pi, err := Pi(precisionOf(piEps))
	if err != nil {
		return RationalInterval{}, 0, err
	}
	halfPi := pi.Mul(Point(newRational(big.NewInt(1), big.NewInt(2))))

	half := newRational(big.NewInt(1), big.NewInt(2))
	k := x.Add(halfPi.Midpoint().Mul(half)).floorDiv(halfPi.Midpoint())
	r := Point(x).Sub(halfPi.Mul(Point(RationalFromInt(int64(k)))))
	return r, ((k % 4) + 4) % 4, nil
}

// sinSeries encloses sin r for |r| < 1, error bound twice the last term.
func sinSeries(r Rational, eps Rational) (RationalInterval, bool) {
	negSq := r.Mul(r).Neg()
	term := r
	sum := r
	for m := 1; m <= MaxSeriesTerms; m++ {
		term = term.Mul(negSq).Mul(newRational(big.NewInt(1), big.NewInt(int64(2*m)*int64(2*m+1))))
		sum = sum.Add(term)
		if sum.d().BitLen() > maxSeriesDenomBits {
			return RationalInterval{}, false
		}
		if term.Abs().Cmp(eps) < 0 {
			bound := term.Abs().Mul(RationalFromInt(2))
			return RationalInterval{low: sum.Sub(bound), high: sum.Add(bound)}, true
		}
	}
	return RationalInterval{}, false
}

// cosSeries encloses cos r for |r| < 1.
func cosSeries(r Rational, eps Rational) (RationalInterval, bool) {
	negSq := r.Mul(r).Neg()
	term := RationalFromInt(1)
	sum := RationalFromInt(1)
	for m := 1; m <= MaxSeriesTerms; m++ {
		term = term.Mul(negSq).Mul(newRational(big.NewInt(1), big.NewInt(int64(2*m-1)*int64(2*m))))
		sum = sum.Add(term)
		if sum.d().BitLen() > maxSeriesDenomBits {
			return RationalInterval{}, false
		}
		if term.Abs().Cmp(eps) < 0 {
			bound := term.Abs().Mul(RationalFromInt(2))
			return RationalInterval{low: sum.Sub(bound), high: sum.Add(bound)}, true
		}
	}
	return RationalInterval{}, false
}

// evalSin encloses sin over a narrow remainder interval, where sin is
// monotone increasing.
func evalSin(r RationalInterval, eps Rational) (RationalInterval, bool) {
	lo, okL := sinSeries(r.Low(), eps)
	hi, okH := sinSeries(r.High(), eps)
	if !okL || !okH {
		return RationalInterval{}, false
	}
	return RationalInterval{low: lo.Low(), high: hi.High()}, true
}

// evalCos encloses cos over a narrow remainder interval. cos peaks at zero,
// so an interval straddling zero tops out at exactly 1.
func evalCos(r RationalInterval, eps Rational) (RationalInterval, bool) {
	lo, okL := cosSeries(r.Low(), eps)
	hi, okH := cosSeries(r.High(), eps)
	if !okL || !okH {
		return RationalInterval{}, false
	}
	low := lo.Low().Min(hi.Low())
	high := lo.High().Max(hi.High())
	if r.ContainsZero() {
		high = RationalFromInt(1)
	}
	return RationalInterval{low: low, high: high}, true
}

func quadrantEval(r RationalInterval, quadrant int, eps Rational) (RationalInterval, bool) {
	switch quadrant {
	case 0:
		return evalSin(r, eps)
	case 1:
		return evalCos(r, eps)
	case 2:
		iv, ok := evalSin(r, eps)
		return iv.Neg(), ok
	default:
		iv, ok := evalCos(r, eps)
		return iv.Neg(), ok
	}
}

// Sin encloses sin x. Zero is exact: sin 0 is the point interval [0,0].
func Sin(x Rational, prec int) (RationalInterval, error) {
	if x.IsZero() {
		return Point(RationalFromInt(0)), nil
	}
	eps := epsilonFor(prec)
	r, q, err := trigReduce(x, eps)
	if err != nil {
		return RationalInterval{}, err
	}
	iv, ok := quadrantEval(r, q, eps.Mul(newRational(big.NewInt(1), big.NewInt(4))))
	if !ok {
		return padFloat(math.Sin(x.Float64()))
	}
	return iv, nil
}

// Cos encloses cos x; cos 0 is exactly [1,1].
func Cos(x Rational, prec int) (RationalInterval, error) {
	if x.IsZero() {
		return Point(RationalFromInt(1)), nil
	}
	eps := epsilonFor(prec)
	r, q, err := trigReduce(x, eps)
	if err != nil {
		return RationalInterval{}, err
	}
	iv, ok := quadrantEval(r, (q+1)%4, eps.Mul(newRational(big.NewInt(1), big.NewInt(4))))
	if !ok {
		return padFloat(math.Cos(x.Float64()))
	}
	return iv, nil
}

// Tan encloses tan x as sin/cos, failing when x is within epsilon of an odd
// multiple of pi/2, where the cosine enclosure brushes zero.
func Tan(x Rational, prec int) (RationalInterval, error) {
	eps := epsilonFor(prec)
	cos, err := Cos(x, prec)
	if err != nil {
		return RationalInterval{}, err
	}
	if cos.ContainsZero() || cos.Low().Abs().Min(cos.High().Abs()).Cmp(eps) < 0 {
		return RationalInterval{}, fmt.Errorf("tan(%s) too close to an odd multiple of pi/2: %w", x, ErrDomain)
	}
	sin, err := Sin(x, prec)
	if err != nil {
		return RationalInterval{}, err
	}
	return sin.Div(cos)
}

// sampleGrid returns trigSamples evenly spaced points across iv plus the
// spacing between them.
func sampleGrid(iv RationalInterval) ([]Rational, Rational) {
	step, _ := iv.Width().Div(RationalFromInt(trigSamples - 1))
	points := make([]Rational, trigSamples)
	for i := 0; i < trigSamples; i++ {
		points[i] = iv.Low().Add(step.Mul(RationalFromInt(int64(i))))
	}
	return points, step
}

// sampledEnclosure evaluates fn on a dense grid and returns the min/max of
// the pointwise enclosures, widened by the grid spacing times the Lipschitz
// bound. This is not an exact interval transform; callers see the result
// flagged as approximate.
func sampledEnclosure(iv RationalInterval, prec int, lipschitz int64, fn func(Rational, int) (RationalInterval, error)) (Enclosure, error) {
	if iv.IsPoint() {
		out, err := fn(iv.Low(), prec)
		if err != nil {
			return Enclosure{}, err
		}
		return Enclosure{RationalInterval: out}, nil
	}
	points, step := sampleGrid(iv)
	var low, high Rational
	for i, p := range points {
		out, err := fn(p, prec)
		if err != nil {
			return Enclosure{}, err
		}
		if i == 0 {
			low, high = out.Low(), out.High()
			continue
		}
		low = low.Min(out.Low())
		high = high.Max(out.High())
	}
	pad := step.Mul(RationalFromInt(lipschitz))
	return Enclosure{
		RationalInterval: RationalInterval{low: low.Sub(pad), high: high.Add(pad)},
		Approximate:      true,
	}, nil
}

// SinInterval encloses sin over an interval by dense sampling. sin has
// Lipschitz constant 1, so the grid padding keeps the result a true
// enclosure, if a loose one.
func SinInterval(iv RationalInterval, prec int) (Enclosure, error) {
	return sampledEnclosure(iv, prec, 1, Sin)
}

// CosInterval is the sampled enclosure of cos over an interval.
func CosInterval(iv RationalInterval, prec int) (Enclosure, error) {
	return sampledEnclosure(iv, prec, 1, Cos)
}

// TanInterval samples tan across the interval. tan has no global Lipschitz
// bound, so the result is approximate in a stronger sense than sin or cos:
// the sampled min/max are widened by the spacing times the worst sampled
// slope, but a pole between grid points surfaces as a domain error only
// when a sample lands near it.
func TanInterval(iv RationalInterval, prec int) (Enclosure, error) {
	out, err := sampledEnclosure(iv, prec, 1, Tan)
	if err != nil {
		return Enclosure{}, err
	}
	out.Approximate = true
	return out, nil
}

// atanSeries encloses atan r for |r| <= 1 via the alternating series.
func atanSeries(r Rational, eps Rational) (RationalInterval, bool) {
	negSq := r.Mul(r).Neg()
	pow := r
	sum := r
	for m := 1; m <= MaxSeriesTerms; m++ {
		pow = pow.Mul(negSq)
		term := pow.Mul(newRational(big.NewInt(1), big.NewInt(int64(2*m+1))))
		sum = sum.Add(term)
		if sum.d().BitLen() > maxSeriesDenomBits {
			return RationalInterval{}, false
		}
		if term.Abs().Cmp(eps) < 0 {
			bound := term.Abs().Mul(RationalFromInt(2))
			return RationalInterval{low: sum.Sub(bound), high: sum.Add(bound)}, true
		}
	}
	return RationalInterval{}, false
}

// Arctan encloses atan x. Outside [-1,1] the identity
// atan(x) = +-pi/2 - atan(1/x) keeps the series region convergent.
func Arctan(x Rational, prec int) (RationalInterval, error) {
	eps := epsilonFor(prec)
	one := RationalFromInt(1)
	if x.Abs().Cmp(one) <= 0 {
		iv, ok := atanSeries(x, eps)
		if !ok {
			return padFloat(math.Atan(x.Float64()))
		}
		return iv, nil
	}
	recip, err := x.Reciprocal()
	if err != nil {
		return RationalInterval{}, err
	}
	inner, err := Arctan(recip, prec)
	if err != nil {
		return RationalInterval{}, err
	}
	pi, err := Pi(precisionOf(eps.Mul(newRational(big.NewInt(1), big.NewInt(4)))))
	if err != nil {
		return RationalInterval{}, err
	}
	halfPi := pi.Mul(Point(newRational(big.NewInt(1), big.NewInt(2))))
	if x.Sign() > 0 {
		return halfPi.Sub(inner), nil
	}
	return halfPi.Neg().Sub(inner), nil
}

// arcsinSeries encloses asin r for r*r <= 1/2 via the binomial series.
func arcsinSeries(r Rational, eps Rational) (RationalInterval, bool) {
	sq := r.Mul(r)
	term := r
	sum := r
	for n := 1; n <= MaxSeriesTerms; n++ {
		odd := int64(2*n - 1)
		term = term.Mul(sq).Mul(newRational(big.NewInt(odd*odd), big.NewInt(int64(2*n)*int64(2*n+1))))
		sum = sum.Add(term)
		if sum.d().BitLen() > maxSeriesDenomBits {
			return RationalInterval{}, false
		}
		if term.Abs().Cmp(eps) < 0 {
			bound := term.Abs().Mul(RationalFromInt(2))
			return RationalInterval{low: sum.Sub(bound), high: sum.Add(bound)}, true
		}
	}
	return RationalInterval{}, false
}

// Arcsin encloses asin x for x in [-1,1]. Arguments with x^2 > 1/2 go
// through asin(x) = pi/2 - asin(sqrt(1-x^2)), whose inner argument is back
// in the fast-converging region.
func Arcsin(x Rational, prec int) (RationalInterval, error) {
	one := RationalFromInt(1)
	if x.Abs().Cmp(one) > 0 {
		return RationalInterval{}, fmt.Errorf("asin(%s): %w", x, ErrDomain)
	}
	if x.Sign() < 0 {
		iv, err := Arcsin(x.Neg(), prec)
		if err != nil {
			return RationalInterval{}, err
		}
		return iv.Neg(), nil
	}
	eps := epsilonFor(prec)
	half := newRational(big.NewInt(1), big.NewInt(2))

	pi, err := Pi(precisionOf(eps.Mul(newRational(big.NewInt(1), big.NewInt(4)))))
	if err != nil {
		return RationalInterval{}, err
	}
	halfPi := pi.Mul(Point(half))

	if x.Equal(one) {
		return halfPi, nil
	}
	if x.Mul(x).Cmp(half) <= 0 {
		iv, ok := arcsinSeries(x, eps)
		if !ok {
			return padFloat(math.Asin(x.Float64()))
		}
		return iv, nil
	}

	inner := one.Sub(x.Mul(x))
	root, err := NewtonRoot(inner, 2, prec)
	if err != nil {
		return RationalInterval{}, err
	}
	loIv, okL := arcsinSeries(root.Low(), eps)
	hiIv, okH := arcsinSeries(root.High(), eps)
	if !okL || !okH {
		return padFloat(math.Asin(x.Float64()))
	}
	// asin is increasing, so the sqrt enclosure maps straight through.
	return halfPi.Sub(RationalInterval{low: loIv.Low(), high: hiIv.High()}), nil
}

// Arccos encloses acos x as pi/2 - asin x.
func Arccos(x Rational, prec int) (RationalInterval, error) {
	if x.Abs().Cmp(RationalFromInt(1)) > 0 {
		return RationalInterval{}, fmt.Errorf("acos(%s): %w", x, ErrDomain)
	}
	eps := epsilonFor(prec)
	asin, err := Arcsin(x, prec)
	if err != nil {
		return RationalInterval{}, err
	}
	pi, err := Pi(precisionOf(eps.Mul(newRational(big.NewInt(1), big.NewInt(4)))))
	if err != nil {
		return RationalInterval{}, err
	}
	halfPi := pi.Mul(Point(newRational(big.NewInt(1), big.NewInt(2))))
	return halfPi.Sub(asin), nil
}
