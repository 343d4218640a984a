package ratmath

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepeatingDecimal(t *testing.T) {
	for idx, tc := range []struct {
		in, want string
	}{
		{"1/3", "0.#3"},
		{"1/7", "0.#142857"},
		{"1/4", "0.25#0"},
		{"1/6", "0.1#6"},
		{"22/7", "3.#142857"},
		{"-1/3", "-0.#3"},
		{"5", "5"},
		{"1/12", "0.08#3"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			r := mustRat(t, tc.in)
			require.Equal(t, tc.want, r.RepeatingDecimal())

			back, err := ParseRational(tc.want)
			require.NoError(t, err)
			require.True(t, back.Equal(r))
		})
	}
}

func TestPeriodLengths(t *testing.T) {
	for idx, tc := range []struct {
		in             string
		prefix, period int
	}{
		{"1/3", 0, 1},
		{"1/7", 0, 6},
		{"1/4", 2, 0},
		{"1/6", 1, 1},
		{"1/12", 2, 1},
		{"1/17", 0, 16},
		{"5", 0, 0},
		{"1/500", 3, 0},
		{"1/14", 1, 6},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			prefix, period := mustRat(t, tc.in).PeriodInfo()
			require.Equal(t, tc.prefix, prefix)
			require.Equal(t, tc.period, period)
		})
	}
}

func TestRepeatingDecimalWithPeriod(t *testing.T) {
	dec, period := mustRat(t, "1/3").RepeatingDecimalWithPeriod()
	require.Equal(t, "0.#3", dec)
	require.Equal(t, 1, period)

	dec, period = mustRat(t, "1/7").RepeatingDecimalWithPeriod()
	require.Equal(t, "0.#142857", dec)
	require.Equal(t, 6, period)

	_, period = mustRat(t, "1/4").RepeatingDecimalWithPeriod()
	require.Equal(t, 0, period)
}

func TestPeriodPastCap(t *testing.T) {
	// 70880089 = 7*17*19*23*29*47. Each factor is a full-reptend prime, so
	// the period is lcm(6,16,18,22,28,46) = 255024, which exceeds
	// MaxPeriodCheck and must be reported as unknown.
	r := mustRat(t, "1/70880089")
	prefix, period := r.PeriodInfo()
	require.Equal(t, 0, prefix)
	require.Equal(t, -1, period)

	dec, period := r.RepeatingDecimalWithPeriod()
	require.Equal(t, -1, period)
	require.Contains(t, dec, "...")
}

func TestRunLengthTokens(t *testing.T) {
	// 1/999999999 repeats as eight zeros then a one; the zero run is
	// compressed on output and expanded again on parse.
	r := mustRat(t, "1/999999999")
	enc := r.RepeatingDecimal()
	require.Equal(t, "0.#{0~8}1", enc)

	back, err := ParseRational(enc)
	require.NoError(t, err)
	require.True(t, back.Equal(r))

	// Runs shorter than the threshold stay literal.
	require.Equal(t, "0.#142857", mustRat(t, "1/7").RepeatingDecimal())
}

func TestExpandRunsErrors(t *testing.T) {
	for idx, in := range []string{"{3~", "{~4}", "{33~4}", "{3~0}", "{3~x}", "{3~4x}"} {
		t.Run(fmt.Sprintf("%d/%s", idx, in), func(t *testing.T) {
			_, err := expandRuns(in)
			require.ErrorIs(t, err, ErrInvalidFormat)
		})
	}

	_, err := expandRuns("{1~99999999}")
	require.ErrorIs(t, err, ErrOutOfRange)

	out, err := expandRuns("{3~9}21")
	require.NoError(t, err)
	require.Equal(t, "33333333321", out)
}

func TestPlainDecimal(t *testing.T) {
	require.Equal(t, "0.33333", mustRat(t, "1/3").Decimal(5))
	require.Equal(t, "0.25", mustRat(t, "1/4").Decimal(5))
	require.Equal(t, "-3.14285", mustRat(t, "-22/7").Decimal(5))
	require.Equal(t, "7", mustRat(t, "7").Decimal(5))
}

func TestStringInBase(t *testing.T) {
	// 1/2 in binary terminates; 1/3 in binary repeats as 01.
	require.Equal(t, "0.1", mustRat(t, "1/2").StringInBase(Binary, 32))
	require.Equal(t, "0.#01", mustRat(t, "1/3").StringInBase(Binary, 32))
	require.Equal(t, "0.8", mustRat(t, "1/2").StringInBase(Hexadecimal, 32))
	require.Equal(t, "ff", mustRat(t, "255").StringInBase(Hexadecimal, 32))
	require.Equal(t, "-2.8", mustRat(t, "-5/2").StringInBase(Hexadecimal, 32))
}

func TestScientificNotation(t *testing.T) {
	for idx, tc := range []struct {
		in, want string
	}{
		{"0", "0E0"},
		{"1/3", "3.#3E-1"},
		{"1234", "1.234#0E3"},
		{"250", "2.5#0E2"},
		{"-1/300", "-3.#3E-3"},
		{"22/7", "3.#142857E0"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			require.Equal(t, tc.want, mustRat(t, tc.in).ScientificNotation())
		})
	}
}
