package ratmath

import (
	"fmt"
	"math/big"
	"strings"
	"sync"
)

// Rational is an immutable canonical fraction: denominator > 0,
// gcd(|numerator|, denominator) = 1, zero is 0/1. Every construction path
// normalizes. Derived encodings (decimal breakdown, period metadata) are
// memoized per instance; they are computed from the immutable numerator and
// denominator and never invalidated.
type Rational struct {
	num, den *big.Int
	memo     *rationalMemo
}

type rationalMemo struct {
	decOnce    sync.Once
	dec        decimalExpansion
	periodOnce sync.Once
	prefixLen  int
	periodLen  int
}

func (r Rational) n() *big.Int {
	if r.num == nil {
		return big0
	}
	return r.num
}

func (r Rational) d() *big.Int {
	if r.den == nil {
		return big1
	}
	return r.den
}

// newRational normalizes and takes ownership of num and den. den must be
// nonzero.
func newRational(num, den *big.Int) Rational {
	if den.Sign() < 0 {
		num = new(big.Int).Neg(num)
		den = new(big.Int).Neg(den)
	}
	if num.Sign() == 0 {
		return Rational{num: new(big.Int), den: big.NewInt(1), memo: &rationalMemo{}}
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(big1) != 0 {
		num = new(big.Int).Quo(num, g)
		den = new(big.Int).Quo(den, g)
	}
	return Rational{num: num, den: den, memo: &rationalMemo{}}
}

func NewRational(num, den int64) (Rational, error) {
	return RationalFromBig(big.NewInt(num), big.NewInt(den))
}

// RationalFromBig copies num and den and normalizes.
func RationalFromBig(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, fmt.Errorf("%s/0: %w", num, ErrDivisionByZero)
	}
	return newRational(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

func RationalFromInt(v int64) Rational {
	return newRational(big.NewInt(v), big.NewInt(1))
}

func (r Rational) NumericKind() Kind { return KindRational }

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int { return new(big.Int).Set(r.n()) }

// Den returns a copy of the denominator.
func (r Rational) Den() *big.Int { return new(big.Int).Set(r.d()) }

func (r Rational) Sign() int    { return r.n().Sign() }
func (r Rational) IsZero() bool { return r.n().Sign() == 0 }

func (r Rational) IsInteger() bool { return r.d().Cmp(big1) == 0 }

func (r Rational) Add(o Rational) Rational {
	num := new(big.Int).Mul(r.n(), o.d())
	num.Add(num, new(big.Int).Mul(o.n(), r.d()))
	return newRational(num, new(big.Int).Mul(r.d(), o.d()))
}

func (r Rational) Sub(o Rational) Rational {
	num := new(big.Int).Mul(r.n(), o.d())
	num.Sub(num, new(big.Int).Mul(o.n(), r.d()))
	return newRational(num, new(big.Int).Mul(r.d(), o.d()))
}

func (r Rational) Mul(o Rational) Rational {
	return newRational(new(big.Int).Mul(r.n(), o.n()), new(big.Int).Mul(r.d(), o.d()))
}

func (r Rational) Div(o Rational) (Rational, error) {
	if o.IsZero() {
		return Rational{}, fmt.Errorf("%s / 0: %w", r, ErrDivisionByZero)
	}
	return newRational(new(big.Int).Mul(r.n(), o.d()), new(big.Int).Mul(r.d(), o.n())), nil
}

func (r Rational) Neg() Rational {
	return newRational(new(big.Int).Neg(r.n()), new(big.Int).Set(r.d()))
}

func (r Rational) Abs() Rational {
	if r.Sign() >= 0 {
		return r
	}
	return r.Neg()
}

func (r Rational) Reciprocal() (Rational, error) {
	if r.IsZero() {
		return Rational{}, fmt.Errorf("reciprocal of zero: %w", ErrDivisionByZero)
	}
	return newRational(new(big.Int).Set(r.d()), new(big.Int).Set(r.n())), nil
}

// Pow raises r to an integer power. 0^0 and 0^negative are undefined.
func (r Rational) Pow(e int) (Rational, error) {
	if r.IsZero() && e <= 0 {
		return Rational{}, fmt.Errorf("0^%d: %w", e, ErrUndefinedOperation)
	}
	n := e
	if n < 0 {
		n = -n
	}
	exp := big.NewInt(int64(n))
	pn := new(big.Int).Exp(r.n(), exp, nil)
	pd := new(big.Int).Exp(r.d(), exp, nil)
	if e < 0 {
		pn, pd = pd, pn
	}
	return newRational(pn, pd), nil
}

// Cmp orders rationals by cross-multiplication; it never converts to
// floating point.
func (r Rational) Cmp(o Rational) int {
	l := new(big.Int).Mul(r.n(), o.d())
	rhs := new(big.Int).Mul(o.n(), r.d())
	return l.Cmp(rhs)
}

func (r Rational) Equal(o Rational) bool { return r.Cmp(o) == 0 }

func (r Rational) Min(o Rational) Rational {
	if r.Cmp(o) <= 0 {
		return r
	}
	return o
}

func (r Rational) Max(o Rational) Rational {
	if r.Cmp(o) >= 0 {
		return r
	}
	return o
}

// Floor returns the greatest Integer not above r.
func (r Rational) Floor() Integer {
	q, _ := new(big.Int).DivMod(r.n(), r.d(), new(big.Int))
	return Integer{v: q}
}

// Ceil returns the least Integer not below r.
func (r Rational) Ceil() Integer {
	q, m := new(big.Int).DivMod(r.n(), r.d(), new(big.Int))
	if m.Sign() != 0 {
		q.Add(q, big1)
	}
	return Integer{v: q}
}

// Float64 converts for display and interop only. Comparisons and equality
// always use exact arithmetic.
func (r Rational) Float64() float64 {
	f, _ := new(big.Rat).SetFrac(r.n(), r.d()).Float64()
	return f
}

func (r Rational) String() string {
	if r.IsInteger() {
		return r.n().String()
	}
	return r.n().String() + "/" + r.d().String()
}

// MixedString renders the value as "w..n/d" with 0 <= n/d < 1, or the plain
// integer when the fraction part vanishes.
func (r Rational) MixedString() string {
	if r.IsInteger() {
		return r.n().String()
	}
	w, rem := r.wholeAndRemainder()
	sign := ""
	if r.Sign() < 0 {
		sign = "-"
	}
	if w.Sign() == 0 {
		return sign + rem.String() + "/" + r.d().String()
	}
	return sign + w.String() + ".." + rem.String() + "/" + r.d().String()
}

// wholeAndRemainder splits |r| into whole part and remaining numerator.
func (r Rational) wholeAndRemainder() (whole, rem *big.Int) {
	return new(big.Int).QuoRem(new(big.Int).Abs(r.n()), r.d(), new(big.Int))
}

// ParseRational parses the kernel's textual value formats: plain integers,
// "a/b" fractions, "w..n/d" mixed numbers, decimal strings, repeating
// decimals with '#' period markers and {digit~count} run-length tokens,
// scientific "mEn" forms, and "a.~t~t" continued fractions.
func ParseRational(s string) (Rational, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Rational{}, parseErr(s, "empty input")
	}
	if strings.Contains(t, ".~") {
		return ParseContinuedFraction(t)
	}
	if strings.Contains(t, "..") {
		return parseMixed(t)
	}
	if strings.Contains(t, "/") {
		return parseFractionString(t)
	}
	if strings.ContainsAny(t, ".#E{") {
		return parseDecimalString(t)
	}
	n, ok := new(big.Int).SetString(t, 10)
	if !ok {
		return Rational{}, parseErr(s, "expected a number")
	}
	return newRational(n, big.NewInt(1)), nil
}

func parseFractionString(s string) (Rational, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return Rational{}, parseErr(s, "expected numerator/denominator")
	}
	num, ok := new(big.Int).SetString(strings.TrimSpace(parts[0]), 10)
	if !ok {
		return Rational{}, parseErr(s, "bad numerator")
	}
	den, ok := new(big.Int).SetString(strings.TrimSpace(parts[1]), 10)
	if !ok {
		return Rational{}, parseErr(s, "bad denominator")
	}
	if den.Sign() == 0 {
		return Rational{}, fmt.Errorf("%s: %w", s, ErrDivisionByZero)
	}
	return newRational(num, den), nil
}

func parseMixed(s string) (Rational, error) {
	parts := strings.SplitN(s, "..", 2)
	if len(parts) != 2 {
		return Rational{}, parseErr(s, "expected whole..num/den")
	}
	wholeStr := strings.TrimSpace(parts[0])
	neg := strings.HasPrefix(wholeStr, "-")
	whole, ok := new(big.Int).SetString(wholeStr, 10)
	if !ok {
		return Rational{}, parseErr(s, "bad whole part")
	}
	frac, err := parseFractionString(strings.TrimSpace(parts[1]))
	if err != nil {
		return Rational{}, err
	}
	if frac.Sign() < 0 {
		return Rational{}, parseErr(s, "fraction part of a mixed number must be positive")
	}
	w := newRational(new(big.Int).Abs(whole), big.NewInt(1))
	v := w.Add(frac)
	if neg || whole.Sign() < 0 {
		v = v.Neg()
	}
	return v, nil
}
