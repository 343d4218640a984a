package ratmath

import (
	"fmt"
	"math/big"
	"strings"
	"sync"
)

// BaseSystem is a positional numeral system defined by an ordered digit
// alphabet. The base is the alphabet's length. Instances are immutable.
type BaseSystem struct {
	name   string
	digits []rune
	index  map[rune]int

	// orderingWarning is set when the alphabet looks like a truncated or
	// non-contiguous slice of the conventional 0-9a-zA-Z ranges. It never
	// blocks construction.
	orderingWarning string
}

// NewBaseSystem builds a base system from a character sequence. Ranges in
// the form "0-9" or "a-f" are expanded, so "0-9a-f" is the usual hexadecimal
// alphabet.
func NewBaseSystem(sequence string, name string) (*BaseSystem, error) {
	digits, err := expandDigitRanges(sequence)
	if err != nil {
		return nil, err
	}
	return NewBaseSystemFromChars(digits, name)
}

// NewBaseSystemFromChars builds a base system from an explicit digit list.
func NewBaseSystemFromChars(digits []rune, name string) (*BaseSystem, error) {
	if len(digits) < 2 {
		return nil, parseErr(string(digits), "a base system needs at least 2 digits")
	}
	index := make(map[rune]int, len(digits))
	for i, r := range digits {
		if strings.ContainsRune(reservedSymbols, r) {
			return nil, &InvalidCharacterError{Char: r, Base: len(digits)}
		}
		if _, dup := index[r]; dup {
			return nil, parseErr(string(digits), fmt.Sprintf("duplicate digit %q", r))
		}
		index[r] = i
	}
	sys := &BaseSystem{
		name:   name,
		digits: append([]rune(nil), digits...),
		index:  index,
	}
	sys.orderingWarning = checkDigitOrdering(sys.digits)
	return sys, nil
}

func expandDigitRanges(sequence string) ([]rune, error) {
	runes := []rune(sequence)
	var out []rune
	for i := 0; i < len(runes); i++ {
		if i+2 < len(runes) && runes[i+1] == '-' {
			lo, hi := runes[i], runes[i+2]
			if hi < lo {
				return nil, parseErr(sequence, fmt.Sprintf("inverted range %c-%c", lo, hi))
			}
			for r := lo; r <= hi; r++ {
				out = append(out, r)
			}
			i += 2
			continue
		}
		out = append(out, runes[i])
	}
	return out, nil
}

// checkDigitOrdering flags alphabets that skip characters inside a
// conventional digit run, which usually means a typo in the sequence string.
func checkDigitOrdering(digits []rune) string {
	conventional := func(r rune) bool {
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}
	for i := 1; i < len(digits); i++ {
		prev, cur := digits[i-1], digits[i]
		if !conventional(prev) || !conventional(cur) {
			continue
		}
		sameRun := (prev >= '0' && prev <= '9' && cur >= '0' && cur <= '9') ||
			(prev >= 'a' && prev <= 'z' && cur >= 'a' && cur <= 'z') ||
			(prev >= 'A' && prev <= 'Z' && cur >= 'A' && cur <= 'Z')
		if sameRun && cur > prev && cur != prev+1 {
			return fmt.Sprintf("digits %q and %q skip over %q", prev, cur, prev+1)
		}
	}
	return ""
}

// Base returns the radix, i.e. the number of digits.
func (s *BaseSystem) Base() int { return len(s.digits) }

func (s *BaseSystem) Name() string { return s.name }

// OrderingWarning reports the non-fatal alphabet-sanity warning, if any.
func (s *BaseSystem) OrderingWarning() string { return s.orderingWarning }

// Digits returns a copy of the digit alphabet.
func (s *BaseSystem) Digits() []rune { return append([]rune(nil), s.digits...) }

func (s *BaseSystem) Char(i int) (rune, error) {
	if i < 0 || i >= len(s.digits) {
		return 0, &OutOfRangeError{Index: i, Base: len(s.digits)}
	}
	return s.digits[i], nil
}

func (s *BaseSystem) MinDigit() rune { return s.digits[0] }
func (s *BaseSystem) MaxDigit() rune { return s.digits[len(s.digits)-1] }

// Equal compares base and digit sequence positionally.
func (s *BaseSystem) Equal(o *BaseSystem) bool {
	if s.Base() != o.Base() {
		return false
	}
	for i, r := range s.digits {
		if o.digits[i] != r {
			return false
		}
	}
	return true
}

func (s *BaseSystem) String() string {
	if s.name != "" {
		return fmt.Sprintf("%s (base %d)", s.name, s.Base())
	}
	return fmt.Sprintf("base %d [%s]", s.Base(), string(s.digits))
}

// ToDecimal parses a digit string in this base into an Integer. A leading
// '-' is allowed.
func (s *BaseSystem) ToDecimal(str string) (Integer, error) {
	runes := []rune(str)
	neg := false
	if len(runes) > 0 && runes[0] == '-' {
		neg = true
		runes = runes[1:]
	}
	if len(runes) == 0 {
		return Integer{}, parseErr(str, "empty digit string")
	}
	base := big.NewInt(int64(s.Base()))
	acc := new(big.Int)
	for _, r := range runes {
		d, ok := s.index[r]
		if !ok {
			return Integer{}, &InvalidCharacterError{Char: r, Base: s.Base()}
		}
		acc.Mul(acc, base)
		acc.Add(acc, big.NewInt(int64(d)))
	}
	if neg {
		acc.Neg(acc)
	}
	return Integer{v: acc}, nil
}

// FromDecimal renders an Integer as a digit string in this base. Zero maps
// to the first digit of the alphabet.
func (s *BaseSystem) FromDecimal(v Integer) string {
	n := new(big.Int).Abs(v.big())
	if n.Sign() == 0 {
		return string(s.digits[0])
	}
	base := big.NewInt(int64(s.Base()))
	rem := new(big.Int)
	var out []rune
	for n.Sign() > 0 {
		n.QuoRem(n, base, rem)
		out = append(out, s.digits[rem.Int64()])
	}
	if v.Sign() < 0 {
		out = append(out, '-')
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// Well-known base systems.
var (
	Binary, _      = NewBaseSystem("01", "binary")
	Octal, _       = NewBaseSystem("0-7", "octal")
	Decimal, _     = NewBaseSystem("0-9", "decimal")
	Hexadecimal, _ = NewBaseSystem("0-9a-f", "hexadecimal")
	Base62, _      = NewBaseSystem("0-9a-zA-Z", "base 62")
)

// PrefixRegistry maps single-letter prefixes to well-known base systems. It
// is the only shared mutable state in the package; all access goes through
// the mutex. Callers that need isolation construct their own registry.
type PrefixRegistry struct {
	mu      sync.Mutex
	systems map[byte]*BaseSystem
}

func NewPrefixRegistry() *PrefixRegistry {
	return &PrefixRegistry{systems: make(map[byte]*BaseSystem)}
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Register binds a prefix letter to a base system. 'D' is reserved: it can
// never resolve because it would collide with decimal exponent notation.
func (r *PrefixRegistry) Register(prefix byte, sys *BaseSystem) error {
	if !isASCIILetter(prefix) {
		return &InvalidCharacterError{Char: rune(prefix), Base: sys.Base()}
	}
	if prefix == 'D' {
		return fmt.Errorf("prefix 'D' is reserved: %w", ErrInvalidCharacter)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.systems[prefix] = sys
	return nil
}

func (r *PrefixRegistry) Unregister(prefix byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.systems, prefix)
}

// SystemFor resolves a prefix letter, case-sensitively first, then falling
// back to the other case. 'D' never resolves.
func (r *PrefixRegistry) SystemFor(prefix byte) (*BaseSystem, bool) {
	if prefix == 'D' {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if sys, ok := r.systems[prefix]; ok {
		return sys, true
	}
	var alt byte
	switch {
	case prefix >= 'a' && prefix <= 'z':
		alt = prefix - 'a' + 'A'
	case prefix >= 'A' && prefix <= 'Z':
		alt = prefix - 'A' + 'a'
	default:
		return nil, false
	}
	if alt == 'D' {
		return nil, false
	}
	sys, ok := r.systems[alt]
	return sys, ok
}

// PrefixFor performs the reverse lookup.
func (r *PrefixRegistry) PrefixFor(sys *BaseSystem) (byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for p, s := range r.systems {
		if s.Equal(sys) {
			return p, true
		}
	}
	return 0, false
}

// DefaultPrefixes is the process-wide registry pre-loaded with the
// conventional x/b/o/d prefixes.
var DefaultPrefixes = func() *PrefixRegistry {
	r := NewPrefixRegistry()
	r.Register('x', Hexadecimal)
	r.Register('b', Binary)
	r.Register('o', Octal)
	r.Register('d', Decimal)
	return r
}()
