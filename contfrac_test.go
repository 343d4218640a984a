package ratmath

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func cfInts(terms []Integer) []int64 {
	out := make([]int64, len(terms))
	for i, t := range terms {
		out[i] = t.big().Int64()
	}
	return out
}

func TestContinuedFraction(t *testing.T) {
	for idx, tc := range []struct {
		in   string
		want []int64
	}{
		{"355/113", []int64{3, 7, 16}},
		{"22/7", []int64{3, 7}},
		{"1/3", []int64{0, 3}},
		{"7", []int64{7}},
		{"0", []int64{0}},
		{"-7/2", []int64{-4, 2}},
		{"649/200", []int64{3, 4, 12, 4}},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			terms, err := mustRat(t, tc.in).ContinuedFraction()
			require.NoError(t, err)
			require.Equal(t, tc.want, cfInts(terms))

			back, err := FromContinuedFraction(terms)
			require.NoError(t, err)
			require.True(t, back.Equal(mustRat(t, tc.in)))
		})
	}
}

func TestContinuedFractionCanonical(t *testing.T) {
	// The raw Euclidean expansion of 7/5 is [1,2,2]; [1,2,1,1] denotes the
	// same value but is rejected as canonical output.
	terms, err := mustRat(t, "7/5").ContinuedFraction()
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 2}, cfInts(terms))

	v, err := FromContinuedFraction([]Integer{NewInteger(1), NewInteger(2), NewInteger(1), NewInteger(1)})
	require.NoError(t, err)
	require.True(t, v.Equal(mustRat(t, "7/5")))
}

func TestFromContinuedFractionErrors(t *testing.T) {
	_, err := FromContinuedFraction(nil)
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = FromContinuedFraction([]Integer{NewInteger(3), NewInteger(-2)})
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = FromContinuedFraction([]Integer{NewInteger(3), NewInteger(0)})
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestConvergents(t *testing.T) {
	convs, err := mustRat(t, "355/113").Convergents(10)
	require.NoError(t, err)
	require.Len(t, convs, 3)
	require.Equal(t, "3", convs[0].String())
	require.Equal(t, "22/7", convs[1].String())
	require.Equal(t, "355/113", convs[2].String())

	convs, err = mustRat(t, "649/200").Convergents(2)
	require.NoError(t, err)
	require.Len(t, convs, 2)
	require.Equal(t, "3", convs[0].String())
	require.Equal(t, "13/4", convs[1].String())
}

func TestBestApproximation(t *testing.T) {
	for idx, tc := range []struct {
		in     string
		maxDen int64
		want   string
	}{
		{"355/113", 113, "355/113"},
		{"355/113", 112, "22/7"},
		{"355/113", 6, "3"},
		{"649/200", 50, "159/49"},
		{"1/3", 3, "1/3"},
	} {
		t.Run(fmt.Sprintf("%d/%s@%d", idx, tc.in, tc.maxDen), func(t *testing.T) {
			best, err := mustRat(t, tc.in).BestApproximation(NewInteger(tc.maxDen))
			require.NoError(t, err)
			require.Equal(t, tc.want, best.String())
		})
	}

	_, err := mustRat(t, "22/7").BestApproximation(NewInteger(0))
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestContinuedFractionString(t *testing.T) {
	for idx, tc := range []struct {
		in, want string
	}{
		{"355/113", "3.~7~16"},
		{"22/7", "3.~7"},
		{"5", "5.~0"},
		{"-7/2", "-4.~2"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			s, err := mustRat(t, tc.in).ContinuedFractionString()
			require.NoError(t, err)
			require.Equal(t, tc.want, s)

			back, err := ParseContinuedFraction(s)
			require.NoError(t, err)
			require.True(t, back.Equal(mustRat(t, tc.in)))
		})
	}
}

func TestParseContinuedFractionErrors(t *testing.T) {
	for idx, in := range []string{"3.~", "3.~x", "3.~-2", ".~7", "3.~7~~16"} {
		t.Run(fmt.Sprintf("%d/%s", idx, in), func(t *testing.T) {
			_, err := ParseContinuedFraction(in)
			require.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}
