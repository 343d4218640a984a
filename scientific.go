package ratmath

import (
	"fmt"
	"math/big"
)

// mulPow10 returns r * 10^k exactly.
func (r Rational) mulPow10(k int) Rational {
	if k == 0 {
		return r
	}
	scale := new(big.Int).Exp(big10, big.NewInt(int64(abs(k))), nil)
	if k > 0 {
		return r.Mul(newRational(scale, big.NewInt(1)))
	}
	return r.Mul(newRational(big.NewInt(1), scale))
}

// decimalExponent returns floor(log10(|r|)) for nonzero r, computed by digit
// counts and exact comparison, never by floating logarithms.
func (r Rational) decimalExponent() int {
	exp := len(new(big.Int).Abs(r.n()).String()) - len(r.d().String())
	mag := r.Abs()
	one := RationalFromInt(1)
	ten := RationalFromInt(10)
	m := mag.mulPow10(-exp)
	for m.Cmp(ten) >= 0 {
		exp++
		m = mag.mulPow10(-exp)
	}
	for m.Cmp(one) < 0 {
		exp--
		m = mag.mulPow10(-exp)
	}
	return exp
}

// ScientificNotation encodes r as mantissa and power of ten, with the
// mantissa in [1,10). The repeating-period marker applies to the mantissa's
// own expansion, so "1/3" becomes "3.#3E-1".
func (r Rational) ScientificNotation() string {
	if r.IsZero() {
		return "0E0"
	}
	exp := r.decimalExponent()
	mantissa := r.mulPow10(-exp)
	return fmt.Sprintf("%sE%d", mantissa.RepeatingDecimal(), exp)
}
