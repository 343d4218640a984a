package ratmath

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// decimalExpansion is the cached result of long division: the whole part,
// the non-repeating initial fractional digits, and the repeating cycle.
// truncated is set when the digit cap was reached before the cycle closed.
type decimalExpansion struct {
	negative  bool
	whole     string
	initial   string
	period    string
	truncated bool
}

// expandInBase runs long division of |num|/den in the given base, recording
// the first-seen index of every remainder. A repeated remainder marks the
// start of the repeating period; a zero remainder terminates.
func expandInBase(num, den *big.Int, base int64, maxDigits int) (whole *big.Int, initial, period []int, truncated bool) {
	b := big.NewInt(base)
	absNum := new(big.Int).Abs(num)
	whole, rem := new(big.Int).QuoRem(absNum, den, new(big.Int))

	seen := make(map[string]int)
	var digits []int
	for rem.Sign() != 0 {
		key := rem.String()
		if at, ok := seen[key]; ok {
			return whole, digits[:at], digits[at:], false
		}
		if len(digits) >= maxDigits {
			return whole, digits, nil, true
		}
		seen[key] = len(digits)
		rem.Mul(rem, b)
		d, m := new(big.Int).QuoRem(rem, den, new(big.Int))
		digits = append(digits, int(d.Int64()))
		rem = m
	}
	return whole, digits, nil, false
}

func (r Rational) expansion() decimalExpansion {
	compute := func() decimalExpansion {
		whole, initial, period, truncated := expandInBase(r.n(), r.d(), 10, MaxPeriodDigits)
		return decimalExpansion{
			negative:  r.Sign() < 0,
			whole:     whole.String(),
			initial:   digitsToString(initial, Decimal),
			period:    digitsToString(period, Decimal),
			truncated: truncated,
		}
	}
	if r.memo == nil {
		return compute()
	}
	r.memo.decOnce.Do(func() { r.memo.dec = compute() })
	return r.memo.dec
}

func digitsToString(digits []int, sys *BaseSystem) string {
	var sb strings.Builder
	for _, d := range digits {
		sb.WriteRune(sys.digits[d])
	}
	return sb.String()
}

// PeriodInfo computes the length of the non-repeating prefix and of the
// repeating period of the decimal expansion without materializing digits:
// the prefix comes from the denominator's powers of 2 and 5, the period from
// the multiplicative order of 10 modulo the remaining factor. The order
// search is capped at MaxPeriodCheck; past the cap the period is reported as
// -1 (unknown, greater than the cap).
func (r Rational) PeriodInfo() (prefixLen, periodLen int) {
	compute := func() (int, int) {
		rest := new(big.Int).Set(r.d())
		twos, fives := 0, 0
		m := new(big.Int)
		for {
			q, mm := new(big.Int).QuoRem(rest, big2, m)
			if mm.Sign() != 0 {
				break
			}
			rest = q
			twos++
			m = new(big.Int)
		}
		for {
			q, mm := new(big.Int).QuoRem(rest, big5, m)
			if mm.Sign() != 0 {
				break
			}
			rest = q
			fives++
			m = new(big.Int)
		}
		prefix := twos
		if fives > prefix {
			prefix = fives
		}
		if rest.Cmp(big1) == 0 {
			return prefix, 0
		}
		pow := new(big.Int).Mod(big10, rest)
		order := 1
		for pow.Cmp(big1) != 0 {
			if order > MaxPeriodCheck {
				return prefix, -1
			}
			pow.Mul(pow, big10)
			pow.Mod(pow, rest)
			order++
		}
		return prefix, order
	}
	if r.memo == nil {
		return compute()
	}
	r.memo.periodOnce.Do(func() {
		r.memo.prefixLen, r.memo.periodLen = compute()
	})
	return r.memo.prefixLen, r.memo.periodLen
}

// RepeatingDecimal encodes the exact value as a decimal string. The '#'
// marker separates the non-repeating digits from the repeating period;
// terminating expansions carry an explicit "#0" period. Runs of identical
// digits are compressed to {digit~count} tokens. "..." marks an expansion
// whose cycle did not close within the digit cap.
func (r Rational) RepeatingDecimal() string {
	exp := r.expansion()
	var sb strings.Builder
	if exp.negative {
		sb.WriteByte('-')
	}
	sb.WriteString(exp.whole)
	switch {
	case exp.truncated:
		sb.WriteByte('.')
		sb.WriteString(compressRuns(exp.initial))
		sb.WriteString("...")
	case exp.period != "":
		sb.WriteByte('.')
		sb.WriteString(compressRuns(exp.initial))
		sb.WriteByte('#')
		sb.WriteString(compressRuns(exp.period))
	case exp.initial != "":
		sb.WriteByte('.')
		sb.WriteString(compressRuns(exp.initial))
		sb.WriteString("#0")
	}
	return sb.String()
}

// RepeatingDecimalWithPeriod returns the repeating-decimal encoding together
// with the period length: 0 for terminating expansions, a positive cycle
// length when known, -1 when the period search exceeded its cap.
func (r Rational) RepeatingDecimalWithPeriod() (string, int) {
	_, period := r.PeriodInfo()
	return r.RepeatingDecimal(), period
}

// Decimal renders a plain truncated decimal with at most maxDigits
// fractional digits.
func (r Rational) Decimal(maxDigits int) string {
	whole, initial, period, _ := expandInBase(r.n(), r.d(), 10, maxDigits)
	digits := append([]int(nil), initial...)
	for len(digits) < maxDigits && len(period) > 0 {
		digits = append(digits, period[(len(digits)-len(initial))%len(period)])
	}
	if len(digits) > maxDigits {
		digits = digits[:maxDigits]
	}
	var sb strings.Builder
	if r.Sign() < 0 {
		sb.WriteByte('-')
	}
	sb.WriteString(whole.String())
	if len(digits) > 0 {
		sb.WriteByte('.')
		sb.WriteString(digitsToString(digits, Decimal))
	}
	return sb.String()
}

// StringInBase renders the value with digits drawn from sys, using the same
// '#' period convention as the decimal encoding.
func (r Rational) StringInBase(sys *BaseSystem, maxDigits int) string {
	whole, initial, period, truncated := expandInBase(r.n(), r.d(), int64(sys.Base()), maxDigits)
	var sb strings.Builder
	if r.Sign() < 0 {
		sb.WriteByte('-')
	}
	sb.WriteString(sys.FromDecimal(Integer{v: whole}))
	switch {
	case truncated:
		sb.WriteByte('.')
		sb.WriteString(digitsToString(initial, sys))
		sb.WriteString("...")
	case len(period) > 0:
		sb.WriteByte('.')
		sb.WriteString(digitsToString(initial, sys))
		sb.WriteByte('#')
		sb.WriteString(digitsToString(period, sys))
	case len(initial) > 0:
		sb.WriteByte('.')
		sb.WriteString(digitsToString(initial, sys))
	}
	return sb.String()
}

// compressRuns replaces any run of at least runLengthThreshold identical
// digits with a {digit~count} token.
func compressRuns(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && s[j] == s[i] {
			j++
		}
		if j-i >= runLengthThreshold {
			fmt.Fprintf(&sb, "{%c~%d}", s[i], j-i)
		} else {
			sb.WriteString(s[i:j])
		}
		i = j
	}
	return sb.String()
}

// expandRuns decodes {digit~count} tokens back into literal digit runs.
func expandRuns(s string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '{' {
			sb.WriteByte(s[i])
			continue
		}
		end := strings.IndexByte(s[i:], '}')
		if end < 0 {
			return "", parseErr(s, "unterminated {digit~count} token")
		}
		token := s[i+1 : i+end]
		parts := strings.SplitN(token, "~", 2)
		if len(parts) != 2 || len(parts[0]) != 1 {
			return "", parseErr(s, "malformed {digit~count} token")
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil || count < 1 {
			return "", parseErr(s, "bad count in {digit~count} token")
		}
		if count > MaxPeriodDigits {
			return "", fmt.Errorf("run of %d digits: %w", count, ErrOutOfRange)
		}
		sb.WriteString(strings.Repeat(parts[0], count))
		i += end
	}
	return sb.String(), nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseDecimalString handles decimal, repeating-decimal, and scientific
// forms: "1.5", "-0.#3", "0.12#45", "0.{3~12}#6", "1.25E-3".
func parseDecimalString(s string) (Rational, error) {
	t := s
	neg := false
	if strings.HasPrefix(t, "-") {
		neg = true
		t = t[1:]
	} else if strings.HasPrefix(t, "+") {
		t = t[1:]
	}

	exp := 0
	if at := strings.IndexByte(t, 'E'); at >= 0 {
		e, err := strconv.Atoi(t[at+1:])
		if err != nil {
			return Rational{}, parseErr(s, "bad exponent")
		}
		exp = e
		if abs(exp) > MaxScientificExponent {
			return Rational{}, fmt.Errorf("exponent %d: %w", exp, ErrOutOfRange)
		}
		t = t[:at]
	}

	intPart := t
	fracPart, periodPart := "", ""
	if at := strings.IndexByte(t, '.'); at >= 0 {
		intPart = t[:at]
		fracPart = t[at+1:]
		if h := strings.IndexByte(fracPart, '#'); h >= 0 {
			periodPart = fracPart[h+1:]
			fracPart = fracPart[:h]
		}
	}
	if intPart == "" {
		intPart = "0"
	}

	var err error
	if fracPart, err = expandRuns(fracPart); err != nil {
		return Rational{}, err
	}
	if periodPart, err = expandRuns(periodPart); err != nil {
		return Rational{}, err
	}
	if !allDigits(intPart) || !allDigits(fracPart) || !allDigits(periodPart) {
		return Rational{}, parseErr(s, "expected decimal digits")
	}

	whole, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return Rational{}, parseErr(s, "bad integer part")
	}
	num := new(big.Int).Set(whole)
	den := big.NewInt(1)

	if fracPart != "" {
		fp, _ := new(big.Int).SetString(fracPart, 10)
		scale := new(big.Int).Exp(big10, big.NewInt(int64(len(fracPart))), nil)
		num.Mul(num, scale)
		num.Add(num, fp)
		den = scale
	}
	if periodPart != "" && strings.Trim(periodPart, "0") != "" {
		pp, _ := new(big.Int).SetString(periodPart, 10)
		cycle := new(big.Int).Exp(big10, big.NewInt(int64(len(periodPart))), nil)
		cycle.Sub(cycle, big1)
		// x = num/den + period/(den * (10^p - 1))
		num.Mul(num, cycle)
		num.Add(num, pp)
		den = new(big.Int).Mul(den, cycle)
	}

	r := newRational(num, den)
	if exp != 0 {
		scale := new(big.Int).Exp(big10, big.NewInt(int64(abs(exp))), nil)
		if exp > 0 {
			r = r.Mul(newRational(scale, big.NewInt(1)))
		} else {
			r = r.Mul(newRational(big.NewInt(1), scale))
		}
	}
	if neg {
		r = r.Neg()
	}
	return r, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
