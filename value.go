package ratmath

// Kind identifies where a value sits in the numeric tower. Higher kinds are
// strictly richer: an Integer widens losslessly to a Rational, and a Rational
// to a point RationalInterval.
type Kind int

const (
	KindInteger Kind = iota
	KindRational
	KindInterval
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindRational:
		return "rational"
	case KindInterval:
		return "interval"
	}
	return "unknown"
}

// Value is the closed union of the kernel's numeric kinds. Mixed-kind
// arithmetic resolves the common kind once via commonKind and widens both
// operands before delegating; this is the only place type-widening occurs.
type Value interface {
	NumericKind() Kind
	String() string
}

func commonKind(a, b Kind) Kind {
	if a > b {
		return a
	}
	return b
}

func widenToRational(v Value) Rational {
	switch x := v.(type) {
	case Integer:
		return x.Rational()
	case Rational:
		return x
	}
	panic("ratmath: cannot widen " + v.NumericKind().String() + " to rational")
}

func widenToInterval(v Value) RationalInterval {
	if iv, ok := v.(RationalInterval); ok {
		return iv
	}
	return Point(widenToRational(v))
}

// AddValues adds two values of any kinds at their common kind.
func AddValues(a, b Value) Value {
	switch commonKind(a.NumericKind(), b.NumericKind()) {
	case KindInteger:
		return a.(Integer).Add(b.(Integer))
	case KindRational:
		return widenToRational(a).Add(widenToRational(b))
	default:
		return widenToInterval(a).Add(widenToInterval(b))
	}
}

// SubValues subtracts b from a at their common kind.
func SubValues(a, b Value) Value {
	switch commonKind(a.NumericKind(), b.NumericKind()) {
	case KindInteger:
		return a.(Integer).Sub(b.(Integer))
	case KindRational:
		return widenToRational(a).Sub(widenToRational(b))
	default:
		return widenToInterval(a).Sub(widenToInterval(b))
	}
}

// MulValues multiplies two values at their common kind.
func MulValues(a, b Value) Value {
	switch commonKind(a.NumericKind(), b.NumericKind()) {
	case KindInteger:
		return a.(Integer).Mul(b.(Integer))
	case KindRational:
		return widenToRational(a).Mul(widenToRational(b))
	default:
		return widenToInterval(a).Mul(widenToInterval(b))
	}
}

// DivValues divides a by b at their common kind. Integer division that does
// not divide evenly widens to a Rational rather than truncating.
func DivValues(a, b Value) (Value, error) {
	switch commonKind(a.NumericKind(), b.NumericKind()) {
	case KindInteger:
		return a.(Integer).Div(b.(Integer))
	case KindRational:
		q, err := widenToRational(a).Div(widenToRational(b))
		if err != nil {
			return nil, err
		}
		return q, nil
	default:
		q, err := widenToInterval(a).Div(widenToInterval(b))
		if err != nil {
			return nil, err
		}
		return q, nil
	}
}
