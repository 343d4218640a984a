package ratmath

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegerArithmetic(t *testing.T) {
	for idx, tc := range []struct {
		a, b int64
		op   string
		want string
	}{
		{3, 4, "add", "7"},
		{-3, 4, "add", "1"},
		{3, 4, "sub", "-1"},
		{-3, -4, "mul", "12"},
		{7, 0, "mul", "0"},
	} {
		t.Run(fmt.Sprintf("%d/%d %s %d", idx, tc.a, tc.op, tc.b), func(t *testing.T) {
			a, b := NewInteger(tc.a), NewInteger(tc.b)
			var got Integer
			switch tc.op {
			case "add":
				got = a.Add(b)
			case "sub":
				got = a.Sub(b)
			case "mul":
				got = a.Mul(b)
			}
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestIntegerDivWidens(t *testing.T) {
	// Even division stays an Integer.
	v, err := NewInteger(6).Div(NewInteger(2))
	require.NoError(t, err)
	require.Equal(t, KindInteger, v.NumericKind())
	require.Equal(t, "3", v.String())

	// Uneven division widens to the exact Rational.
	v, err = NewInteger(7).Div(NewInteger(2))
	require.NoError(t, err)
	require.Equal(t, KindRational, v.NumericKind())
	require.Equal(t, "7/2", v.String())

	_, err = NewInteger(1).Div(NewInteger(0))
	require.ErrorIs(t, err, ErrDivisionByZero)

	_, err = NewInteger(7).DivExact(NewInteger(2))
	require.ErrorIs(t, err, ErrUndefinedOperation)
}

func TestIntegerPow(t *testing.T) {
	v, err := NewInteger(2).Pow(NewInteger(10))
	require.NoError(t, err)
	require.Equal(t, "1024", v.String())

	v, err = NewInteger(2).Pow(NewInteger(-2))
	require.NoError(t, err)
	require.Equal(t, KindRational, v.NumericKind())
	require.Equal(t, "1/4", v.String())

	_, err = NewInteger(0).Pow(NewInteger(0))
	require.ErrorIs(t, err, ErrUndefinedOperation)

	_, err = NewInteger(0).Pow(NewInteger(-1))
	require.ErrorIs(t, err, ErrUndefinedOperation)

	v, err = NewInteger(0).Pow(NewInteger(5))
	require.NoError(t, err)
	require.Equal(t, "0", v.String())
}

func TestIntegerModGCDLCM(t *testing.T) {
	m, err := NewInteger(17).Mod(NewInteger(5))
	require.NoError(t, err)
	require.Equal(t, "2", m.String())

	_, err = NewInteger(17).Mod(NewInteger(0))
	require.ErrorIs(t, err, ErrDivisionByZero)

	require.Equal(t, "6", NewInteger(12).GCD(NewInteger(-18)).String())
	require.Equal(t, "36", NewInteger(12).LCM(NewInteger(18)).String())
	require.Equal(t, "0", NewInteger(12).LCM(NewInteger(0)).String())
}

func TestIntegerFactorials(t *testing.T) {
	f, err := NewInteger(5).Factorial()
	require.NoError(t, err)
	require.Equal(t, "120", f.String())

	f, err = NewInteger(0).Factorial()
	require.NoError(t, err)
	require.Equal(t, "1", f.String())

	_, err = NewInteger(-1).Factorial()
	require.ErrorIs(t, err, ErrUndefinedOperation)

	d, err := NewInteger(7).DoubleFactorial()
	require.NoError(t, err)
	require.Equal(t, "105", d.String())

	d, err = NewInteger(8).DoubleFactorial()
	require.NoError(t, err)
	require.Equal(t, "384", d.String())
}

func TestIntegerBigValues(t *testing.T) {
	huge, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)
	a := IntegerFromBig(huge)
	require.Equal(t, huge.String(), a.String())

	// IntegerFromBig copies: mutating the source must not leak in.
	huge.SetInt64(0)
	require.Equal(t, "123456789012345678901234567890", a.String())
}

func TestValueWidening(t *testing.T) {
	half, err := NewRational(1, 2)
	require.NoError(t, err)

	v := AddValues(NewInteger(1), half)
	require.Equal(t, KindRational, v.NumericKind())
	require.Equal(t, "3/2", v.String())

	iv := NewRationalInterval(RationalFromInt(1), RationalFromInt(2))
	v = MulValues(NewInteger(3), iv)
	require.Equal(t, KindInterval, v.NumericKind())
	require.Equal(t, "3:6", v.String())

	v = SubValues(half, NewInteger(1))
	require.Equal(t, "-1/2", v.String())

	v, err = DivValues(NewInteger(7), NewInteger(2))
	require.NoError(t, err)
	require.Equal(t, "7/2", v.String())

	_, err = DivValues(iv, Point(RationalFromInt(0)))
	require.ErrorIs(t, err, ErrDivisionByZero)
}
