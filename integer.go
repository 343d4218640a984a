package ratmath

import (
	"fmt"
	"math/big"
)

// Integer is an immutable arbitrary-precision signed integer. The wrapped
// big.Int is never mutated after construction and never aliased out, so
// Integer values are safe to copy and share.
type Integer struct {
	v *big.Int
}

func NewInteger(v int64) Integer {
	return Integer{v: big.NewInt(v)}
}

// IntegerFromBig copies v; later mutation of v does not affect the result.
func IntegerFromBig(v *big.Int) Integer {
	return Integer{v: new(big.Int).Set(v)}
}

func ParseInteger(s string) (Integer, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Integer{}, parseErr(s, "expected a decimal integer")
	}
	return Integer{v: v}, nil
}

func (a Integer) big() *big.Int {
	if a.v == nil {
		return big0
	}
	return a.v
}

// Big returns a copy of the underlying big.Int.
func (a Integer) Big() *big.Int { return new(big.Int).Set(a.big()) }

func (a Integer) NumericKind() Kind { return KindInteger }

func (a Integer) String() string { return a.big().String() }

// StringInBase renders the integer using the digit alphabet of sys.
func (a Integer) StringInBase(sys *BaseSystem) string { return sys.FromDecimal(a) }

func (a Integer) Sign() int    { return a.big().Sign() }
func (a Integer) IsZero() bool { return a.big().Sign() == 0 }

func (a Integer) Cmp(b Integer) int    { return a.big().Cmp(b.big()) }
func (a Integer) Equal(b Integer) bool { return a.Cmp(b) == 0 }

func (a Integer) Add(b Integer) Integer {
	return Integer{v: new(big.Int).Add(a.big(), b.big())}
}

func (a Integer) Sub(b Integer) Integer {
	return Integer{v: new(big.Int).Sub(a.big(), b.big())}
}

func (a Integer) Mul(b Integer) Integer {
	return Integer{v: new(big.Int).Mul(a.big(), b.big())}
}

func (a Integer) Neg() Integer {
	return Integer{v: new(big.Int).Neg(a.big())}
}

func (a Integer) Abs() Integer {
	return Integer{v: new(big.Int).Abs(a.big())}
}

// Div divides a by b. When b divides a evenly the result stays an Integer;
// otherwise it widens to the exact Rational a/b rather than truncating.
func (a Integer) Div(b Integer) (Value, error) {
	if b.IsZero() {
		return nil, fmt.Errorf("%s / %s: %w", a, b, ErrDivisionByZero)
	}
	q, r := new(big.Int).QuoRem(a.big(), b.big(), new(big.Int))
	if r.Sign() == 0 {
		return Integer{v: q}, nil
	}
	rat, err := RationalFromBig(a.big(), b.big())
	if err != nil {
		return nil, err
	}
	return rat, nil
}

// DivExact divides a by b and fails unless the division is even.
func (a Integer) DivExact(b Integer) (Integer, error) {
	if b.IsZero() {
		return Integer{}, fmt.Errorf("%s / %s: %w", a, b, ErrDivisionByZero)
	}
	q, r := new(big.Int).QuoRem(a.big(), b.big(), new(big.Int))
	if r.Sign() != 0 {
		return Integer{}, fmt.Errorf("%s does not divide %s evenly: %w", b, a, ErrUndefinedOperation)
	}
	return Integer{v: q}, nil
}

func (a Integer) Mod(b Integer) (Integer, error) {
	if b.IsZero() {
		return Integer{}, fmt.Errorf("%s %% %s: %w", a, b, ErrDivisionByZero)
	}
	_, r := new(big.Int).QuoRem(a.big(), b.big(), new(big.Int))
	return Integer{v: r}, nil
}

// Pow raises a to the power e. A negative exponent widens the result to the
// Rational 1/a^|e|. Zero to the zeroth or a negative power is undefined.
func (a Integer) Pow(e Integer) (Value, error) {
	if a.IsZero() && e.Sign() <= 0 {
		return nil, fmt.Errorf("0^%s: %w", e, ErrUndefinedOperation)
	}
	if e.Sign() >= 0 {
		return Integer{v: new(big.Int).Exp(a.big(), e.big(), nil)}, nil
	}
	p := new(big.Int).Exp(a.big(), new(big.Int).Neg(e.big()), nil)
	rat, err := RationalFromBig(big1, p)
	if err != nil {
		return nil, err
	}
	return rat, nil
}

func (a Integer) GCD(b Integer) Integer {
	return Integer{v: new(big.Int).GCD(nil, nil, new(big.Int).Abs(a.big()), new(big.Int).Abs(b.big()))}
}

func (a Integer) LCM(b Integer) Integer {
	if a.IsZero() || b.IsZero() {
		return NewInteger(0)
	}
	g := a.GCD(b)
	q := new(big.Int).Quo(new(big.Int).Abs(a.big()), g.big())
	return Integer{v: q.Mul(q, new(big.Int).Abs(b.big()))}
}

func (a Integer) Factorial() (Integer, error) {
	if a.Sign() < 0 {
		return Integer{}, fmt.Errorf("%s!: %w", a, ErrUndefinedOperation)
	}
	if !a.big().IsInt64() {
		return Integer{}, fmt.Errorf("%s!: %w", a, ErrConvergenceLimit)
	}
	return Integer{v: new(big.Int).MulRange(1, a.big().Int64())}, nil
}

// DoubleFactorial computes n!! = n(n-2)(n-4)... down to 1 or 2.
func (a Integer) DoubleFactorial() (Integer, error) {
	if a.Sign() < 0 {
		return Integer{}, fmt.Errorf("%s!!: %w", a, ErrUndefinedOperation)
	}
	if !a.big().IsInt64() {
		return Integer{}, fmt.Errorf("%s!!: %w", a, ErrConvergenceLimit)
	}
	acc := big.NewInt(1)
	for n := a.big().Int64(); n > 1; n -= 2 {
		acc.Mul(acc, big.NewInt(n))
	}
	return Integer{v: acc}, nil
}

// Rational widens the integer to the canonical Rational a/1.
func (a Integer) Rational() Rational {
	return newRational(new(big.Int).Set(a.big()), big.NewInt(1))
}
