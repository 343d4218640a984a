package ratmath

import (
	"fmt"
	"math/big"
	"strings"
)

// cfConvergents generates convergents p/q incrementally via the standard
// recurrence p_n = a_n*p_{n-1} + p_{n-2}, q_n = a_n*q_{n-1} + q_{n-2},
// seeded (1,0)/(0,1).
type cfConvergents struct {
	pPrev, pCur *big.Int
	qPrev, qCur *big.Int
}

func newCFConvergents() *cfConvergents {
	return &cfConvergents{
		pPrev: big.NewInt(0), pCur: big.NewInt(1),
		qPrev: big.NewInt(1), qCur: big.NewInt(0),
	}
}

// push consumes the next term and returns the resulting convergent.
func (c *cfConvergents) push(a *big.Int) Rational {
	p := new(big.Int).Mul(a, c.pCur)
	p.Add(p, c.pPrev)
	q := new(big.Int).Mul(a, c.qCur)
	q.Add(q, c.qPrev)
	c.pPrev, c.pCur = c.pCur, p
	c.qPrev, c.qCur = c.qCur, q
	return newRational(new(big.Int).Set(p), new(big.Int).Set(q))
}

// ContinuedFraction expands r by the Euclidean algorithm. Floor-based
// quotients keep every term after the first positive, also for negative
// values, and the result is canonicalized so the final term is never 1.
func (r Rational) ContinuedFraction() ([]Integer, error) {
	num := new(big.Int).Set(r.n())
	den := new(big.Int).Set(r.d())
	var terms []Integer
	for den.Sign() != 0 {
		if len(terms) >= MaxContinuedFractionTerms {
			return nil, fmt.Errorf("continued fraction of %s: %w", r, ErrConvergenceLimit)
		}
		q, m := new(big.Int).DivMod(num, den, new(big.Int))
		terms = append(terms, Integer{v: q})
		num, den = den, m
	}
	if n := len(terms); n > 1 && terms[n-1].big().Cmp(big1) == 0 {
		terms = terms[:n-1]
		terms[n-2] = terms[n-2].Add(NewInteger(1))
	}
	return terms, nil
}

// FromContinuedFraction reconstructs the rational value of a term list.
// Terms after the first must be positive.
func FromContinuedFraction(terms []Integer) (Rational, error) {
	if len(terms) == 0 {
		return Rational{}, parseErr("", "continued fraction needs at least one term")
	}
	conv := newCFConvergents()
	var last Rational
	for i, t := range terms {
		if i > 0 && t.Sign() <= 0 {
			return Rational{}, parseErr(t.String(), "continued fraction terms after the first must be positive")
		}
		last = conv.push(t.big())
	}
	return last, nil
}

// Convergents returns the first n convergents of r (fewer when the
// expansion is shorter).
func (r Rational) Convergents(n int) ([]Rational, error) {
	terms, err := r.ContinuedFraction()
	if err != nil {
		return nil, err
	}
	if n < len(terms) {
		terms = terms[:n]
	}
	conv := newCFConvergents()
	out := make([]Rational, 0, len(terms))
	for _, t := range terms {
		out = append(out, conv.push(t.big()))
	}
	return out, nil
}

// BestApproximation walks the convergents of r and returns the last one
// whose denominator does not exceed maxDen.
func (r Rational) BestApproximation(maxDen Integer) (Rational, error) {
	if maxDen.Sign() <= 0 {
		return Rational{}, fmt.Errorf("max denominator %s: %w", maxDen, ErrOutOfRange)
	}
	convs, err := r.Convergents(MaxContinuedFractionTerms)
	if err != nil {
		return Rational{}, err
	}
	best := convs[0]
	for _, c := range convs[1:] {
		if c.d().Cmp(maxDen.big()) > 0 {
			break
		}
		best = c
	}
	if best.d().Cmp(maxDen.big()) > 0 {
		return Rational{}, fmt.Errorf("no convergent with denominator <= %s: %w", maxDen, ErrNoRepresentableValue)
	}
	return best, nil
}

// ContinuedFractionString encodes r as "a0.~a1~a2~..."; an exact integer is
// written "a0.~0".
func (r Rational) ContinuedFractionString() (string, error) {
	terms, err := r.ContinuedFraction()
	if err != nil {
		return "", err
	}
	if len(terms) == 1 {
		return terms[0].String() + ".~0", nil
	}
	parts := make([]string, 0, len(terms)-1)
	for _, t := range terms[1:] {
		parts = append(parts, t.String())
	}
	return terms[0].String() + ".~" + strings.Join(parts, "~"), nil
}

// ParseContinuedFraction decodes the "a0.~a1~a2~..." form.
func ParseContinuedFraction(s string) (Rational, error) {
	at := strings.Index(s, ".~")
	if at < 0 {
		return Rational{}, parseErr(s, "expected a0.~a1~a2 continued fraction")
	}
	intPart := strings.TrimSpace(s[:at])
	a0, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return Rational{}, parseErr(s, "bad leading integer")
	}
	rest := s[at+2:]
	if rest == "0" {
		return newRational(a0, big.NewInt(1)), nil
	}
	terms := []Integer{{v: a0}}
	for _, part := range strings.Split(rest, "~") {
		t, ok := new(big.Int).SetString(strings.TrimSpace(part), 10)
		if !ok {
			return Rational{}, parseErr(s, fmt.Sprintf("bad term %q", part))
		}
		if t.Sign() <= 0 {
			return Rational{}, parseErr(s, "continued fraction terms must be positive")
		}
		terms = append(terms, Integer{v: t})
	}
	return FromContinuedFraction(terms)
}
