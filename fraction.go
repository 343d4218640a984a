package ratmath

import (
	"fmt"
	"math/big"
	"strings"
)

// Fraction is an unreduced numerator/denominator pair. Unlike Rational it is
// never auto-reduced: in the Stern-Brocot tree the unreduced pair is the
// node's identity. A zero denominator with numerator +-1 represents the
// tree's infinite boundary nodes. The denominator is otherwise kept
// positive, with the sign in the numerator.
type Fraction struct {
	num, den *big.Int
}

func NewFraction(num, den int64) (Fraction, error) {
	return FractionFromBig(big.NewInt(num), big.NewInt(den))
}

func FractionFromBig(num, den *big.Int) (Fraction, error) {
	if den.Sign() == 0 && new(big.Int).Abs(num).Cmp(big1) != 0 {
		return Fraction{}, fmt.Errorf("%s/0: only +-1/0 may have a zero denominator: %w", num, ErrDivisionByZero)
	}
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	return Fraction{num: n, den: d}, nil
}

// FractionFromRational keeps the canonical reduced form as a Fraction.
func FractionFromRational(r Rational) Fraction {
	return Fraction{num: r.Num(), den: r.Den()}
}

// PositiveInfinity and NegativeInfinity are the implicit boundary nodes of
// the Stern-Brocot tree.
func PositiveInfinity() Fraction {
	return Fraction{num: big.NewInt(1), den: big.NewInt(0)}
}

func NegativeInfinity() Fraction {
	return Fraction{num: big.NewInt(-1), den: big.NewInt(0)}
}

func (f Fraction) fn() *big.Int {
	if f.num == nil {
		return big0
	}
	return f.num
}

func (f Fraction) fd() *big.Int {
	if f.den == nil {
		return big1
	}
	return f.den
}

func (f Fraction) Num() *big.Int { return new(big.Int).Set(f.fn()) }
func (f Fraction) Den() *big.Int { return new(big.Int).Set(f.fd()) }

func (f Fraction) IsInfinite() bool { return f.fd().Sign() == 0 }

func (f Fraction) Sign() int { return f.fn().Sign() }

func (f Fraction) String() string {
	return f.fn().String() + "/" + f.fd().String()
}

// Equal is exact pair identity: 1/2 and 2/4 are different tree nodes.
func (f Fraction) Equal(o Fraction) bool {
	return f.fn().Cmp(o.fn()) == 0 && f.fd().Cmp(o.fd()) == 0
}

// ValueEqual compares the represented values by cross-multiplication, so
// 1/2 and 2/4 are value-equal. Infinities compare by sign.
func (f Fraction) ValueEqual(o Fraction) bool { return f.Cmp(o) == 0 }

// Cmp orders fractions by value; -1/0 is below and 1/0 above every finite
// fraction. Cross-multiplication is valid here because denominators are
// never negative.
func (f Fraction) Cmp(o Fraction) int {
	if f.IsInfinite() || o.IsInfinite() {
		fs, os := f.infSign(), o.infSign()
		if fs != os {
			if fs < os {
				return -1
			}
			return 1
		}
		return 0
	}
	l := new(big.Int).Mul(f.fn(), o.fd())
	r := new(big.Int).Mul(o.fn(), f.fd())
	return l.Cmp(r)
}

// infSign places a fraction on the extended number line: -2 for -1/0, 2 for
// 1/0, 0 for anything finite. Only the relative order matters.
func (f Fraction) infSign() int {
	if !f.IsInfinite() {
		return 0
	}
	return 2 * f.fn().Sign()
}

// Reduce yields the canonical Rational value of the fraction.
func (f Fraction) Reduce() (Rational, error) {
	if f.IsInfinite() {
		return Rational{}, fmt.Errorf("reduce %s: %w", f, ErrDivisionByZero)
	}
	return RationalFromBig(f.fn(), f.fd())
}

// Mediant is (a.num+b.num)/(a.den+b.den), defined also when one side is an
// infinite boundary.
func Mediant(a, b Fraction) Fraction {
	return Fraction{
		num: new(big.Int).Add(a.fn(), b.fn()),
		den: new(big.Int).Add(a.fd(), b.fd()),
	}
}

// IsSternBrocotValid reports whether f names a node of the tree: finite and
// in lowest terms (every tree node is produced reduced by the mediant
// recursion).
func (f Fraction) IsSternBrocotValid() bool {
	if f.IsInfinite() {
		return false
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(f.fn()), f.fd())
	return g.Cmp(big1) == 0
}

// sbState is the mediant-walk cursor: current is always the mediant of the
// two bounds.
type sbState struct {
	left, right, cur Fraction
}

func sbRoot() sbState {
	root, _ := NewFraction(0, 1)
	return sbState{left: NegativeInfinity(), right: PositiveInfinity(), cur: root}
}

func (s sbState) stepLeft() sbState {
	return sbState{left: s.left, right: s.cur, cur: Mediant(s.left, s.cur)}
}

func (s sbState) stepRight() sbState {
	return sbState{left: s.cur, right: s.right, cur: Mediant(s.cur, s.right)}
}

// walkTo descends from the root toward target, recording one 'L' or 'R' per
// mediant step, until the cursor equals the target exactly or the depth
// bound trips.
func walkTo(target Fraction) (sbState, string, error) {
	if !target.IsSternBrocotValid() {
		return sbState{}, "", fmt.Errorf("%s is not a stern-brocot node: %w", target, ErrUndefinedOperation)
	}
	s := sbRoot()
	var path strings.Builder
	for depth := 0; depth <= MaxSternBrocotDepth; depth++ {
		if s.cur.Equal(target) {
			return s, path.String(), nil
		}
		if target.Cmp(s.cur) < 0 {
			path.WriteByte('L')
			s = s.stepLeft()
		} else {
			path.WriteByte('R')
			s = s.stepRight()
		}
	}
	return sbState{}, "", &PathTooLongError{Depth: MaxSternBrocotDepth}
}

// SternBrocotPath returns the L/R directions from the tree root 0/1 to f.
func (f Fraction) SternBrocotPath() (string, error) {
	_, path, err := walkTo(f)
	return path, err
}

// FromSternBrocotPath follows a string of 'L'/'R' moves from the root.
func FromSternBrocotPath(path string) (Fraction, error) {
	if len(path) > MaxSternBrocotDepth {
		return Fraction{}, &PathTooLongError{Depth: MaxSternBrocotDepth}
	}
	s := sbRoot()
	for i := 0; i < len(path); i++ {
		switch path[i] {
		case 'L':
			s = s.stepLeft()
		case 'R':
			s = s.stepRight()
		default:
			return Fraction{}, parseErr(path, fmt.Sprintf("path step %q is not L or R", path[i]))
		}
	}
	return s.cur, nil
}

// SternBrocotParent returns the node one step up the tree. The root has no
// parent.
func (f Fraction) SternBrocotParent() (Fraction, error) {
	_, path, err := walkTo(f)
	if err != nil {
		return Fraction{}, err
	}
	if path == "" {
		return Fraction{}, fmt.Errorf("root 0/1 has no parent: %w", ErrUndefinedOperation)
	}
	return FromSternBrocotPath(path[:len(path)-1])
}

// SternBrocotChildren returns the left and right children of f.
func (f Fraction) SternBrocotChildren() (left, right Fraction, err error) {
	s, _, err := walkTo(f)
	if err != nil {
		return Fraction{}, Fraction{}, err
	}
	return Mediant(s.left, s.cur), Mediant(s.cur, s.right), nil
}

// SternBrocotAncestors lists the nodes from the root down to f's immediate
// parent. The root itself has no ancestors.
func (f Fraction) SternBrocotAncestors() ([]Fraction, error) {
	_, path, err := walkTo(f)
	if err != nil {
		return nil, err
	}
	out := make([]Fraction, 0, len(path))
	s := sbRoot()
	for i := 0; i < len(path); i++ {
		out = append(out, s.cur)
		if path[i] == 'L' {
			s = s.stepLeft()
		} else {
			s = s.stepRight()
		}
	}
	return out, nil
}

// FareyParents returns the two fractions of minimal denominator whose
// mediant is f: the walk bounds at the moment the cursor lands on f.
func (f Fraction) FareyParents() (left, right Fraction, err error) {
	s, _, err := walkTo(f)
	if err != nil {
		return Fraction{}, Fraction{}, err
	}
	return s.left, s.right, nil
}

// IsFareyTriple verifies that left and right are Farey neighbors (the
// determinant identity left.num*right.den - left.den*right.num = +-1) and
// that m is their mediant by value.
func IsFareyTriple(left, m, right Fraction) bool {
	det := new(big.Int).Mul(left.fn(), right.fd())
	det.Sub(det, new(big.Int).Mul(left.fd(), right.fn()))
	if new(big.Int).Abs(det).Cmp(big1) != 0 {
		return false
	}
	return Mediant(left, right).ValueEqual(m)
}
