package ratmath

import "testing"

func BenchmarkRationalMul(b *testing.B) {
	x, _ := ParseRational("355/113")
	y, _ := ParseRational("-22/7")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Mul(y)
	}
}

func BenchmarkParseRational(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseRational("3.#142857")
	}
}

func BenchmarkRepeatingDecimal(b *testing.B) {
	r, _ := ParseRational("1/97")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Bypass the memo so each iteration does the long division.
		_ = Rational{num: r.num, den: r.den}.RepeatingDecimal()
	}
}

func BenchmarkPi(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Pi(-12)
	}
}

func BenchmarkExp(b *testing.B) {
	x, _ := ParseRational("3/2")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Exp(x, -9)
	}
}

func BenchmarkSternBrocotPath(b *testing.B) {
	f, _ := NewFraction(355, 113)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.SternBrocotPath()
	}
}
