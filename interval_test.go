package ratmath

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustIv(t *testing.T, s string) RationalInterval {
	t.Helper()
	iv, err := ParseInterval(s)
	require.NoError(t, err)
	return iv
}

func TestIntervalConstruction(t *testing.T) {
	iv := NewRationalInterval(mustRat(t, "3"), mustRat(t, "1/2"))
	require.Equal(t, "1/2:3", iv.String())
	require.False(t, iv.IsPoint())
	require.Equal(t, "5/2", iv.Width().String())

	p := Point(mustRat(t, "2/3"))
	require.True(t, p.IsPoint())
	require.True(t, p.Width().IsZero())

	parsed := mustIv(t, "1/3:0.5")
	require.Equal(t, "1/3:1/2", parsed.String())

	_, err := ParseInterval("1/2")
	require.ErrorIs(t, err, ErrInvalidFormat)
	_, err = ParseInterval("1/2:x")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestIntervalArithmetic(t *testing.T) {
	for idx, tc := range []struct {
		a, op, b, want string
	}{
		{"1:2", "+", "3:4", "4:6"},
		{"1:2", "-", "3:4", "-3:-1"},
		{"1:2", "*", "3:4", "3:8"},
		{"1:3", "*", "2:4", "2:12"},
		{"-1:2", "*", "3:4", "-4:8"},
		{"-2:-1", "*", "-3:4", "-8:6"},
		{"1:2", "/", "4:8", "1/8:1/2"},
		{"-4:8", "/", "-2:-1", "-8:4"},
	} {
		t.Run(fmt.Sprintf("%d/%s%s%s", idx, tc.a, tc.op, tc.b), func(t *testing.T) {
			a, b := mustIv(t, tc.a), mustIv(t, tc.b)
			var got RationalInterval
			var err error
			switch tc.op {
			case "+":
				got = a.Add(b)
			case "-":
				got = a.Sub(b)
			case "*":
				got = a.Mul(b)
			case "/":
				got, err = a.Div(b)
				require.NoError(t, err)
			}
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestIntervalDivErrors(t *testing.T) {
	_, err := mustIv(t, "1:2").Div(Point(mustRat(t, "0")))
	require.ErrorIs(t, err, ErrDivisionByZero)

	_, err = mustIv(t, "1:2").Div(mustIv(t, "-1:1"))
	require.ErrorIs(t, err, ErrIndeterminateDivision)

	_, err = mustIv(t, "1:2").Div(mustIv(t, "0:3"))
	require.ErrorIs(t, err, ErrIndeterminateDivision)
}

func TestIntervalPow(t *testing.T) {
	got, err := mustIv(t, "-2:3").Pow(2)
	require.NoError(t, err)
	require.Equal(t, "0:9", got.String())

	got, err = mustIv(t, "-2:3").Pow(3)
	require.NoError(t, err)
	require.Equal(t, "-8:27", got.String())

	got, err = mustIv(t, "1/2:2").Pow(-1)
	require.NoError(t, err)
	require.Equal(t, "1/2:2", got.String())

	got, err = mustIv(t, "2:3").Pow(-2)
	require.NoError(t, err)
	require.Equal(t, "1/9:1/4", got.String())

	got, err = mustIv(t, "2:3").Pow(0)
	require.NoError(t, err)
	require.Equal(t, "1:1", got.String())

	_, err = mustIv(t, "-1:1").Pow(0)
	require.ErrorIs(t, err, ErrUndefinedOperation)

	_, err = mustIv(t, "-1:1").Pow(-2)
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestIntervalRelations(t *testing.T) {
	a := mustIv(t, "1:3")
	b := mustIv(t, "2:5")
	c := mustIv(t, "4:6")

	require.True(t, a.Overlaps(b))
	require.False(t, a.Overlaps(c))
	require.True(t, b.Overlaps(c))
	require.True(t, a.Contains(mustIv(t, "3/2:2")))
	require.False(t, a.Contains(b))
	require.True(t, a.ContainsValue(mustRat(t, "3")))
	require.False(t, a.ContainsValue(mustRat(t, "7/2")))
	require.True(t, mustIv(t, "-1:1").ContainsZero())

	iv, ok := a.Intersection(b)
	require.True(t, ok)
	require.Equal(t, "2:3", iv.String())

	_, ok = a.Intersection(c)
	require.False(t, ok)

	iv, ok = a.Union(b)
	require.True(t, ok)
	require.Equal(t, "1:5", iv.String())

	// Touching endpoints still merge.
	iv, ok = mustIv(t, "1:2").Union(mustIv(t, "2:3"))
	require.True(t, ok)
	require.Equal(t, "1:3", iv.String())
}

func TestIntervalMidpointMediant(t *testing.T) {
	iv := mustIv(t, "1/3:1/2")
	require.Equal(t, "5/12", iv.Midpoint().String())
	require.Equal(t, "2/5", iv.Mediant().String())
}

func TestShortestDecimal(t *testing.T) {
	for idx, tc := range []struct {
		in   string
		base int
		want string
	}{
		{"0.31:0.33", 10, "31/100"},
		{"1/3:2/3", 10, "2/5"},
		{"3:4", 10, "3"},
		{"1/4:1/4", 10, "1/4"},
		{"22/7:23/7", 10, "16/5"},
		{"1/3:2/3", 2, "1/2"},
	} {
		t.Run(fmt.Sprintf("%d/%s@%d", idx, tc.in, tc.base), func(t *testing.T) {
			got, err := mustIv(t, tc.in).ShortestDecimal(tc.base)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}

	// A point at 1/3 has no finite base-10 expansion.
	_, err := Point(mustRat(t, "1/3")).ShortestDecimal(10)
	require.ErrorIs(t, err, ErrNoRepresentableValue)

	_, err = mustIv(t, "1:2").ShortestDecimal(1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestCompactedDecimalInterval(t *testing.T) {
	iv := NewRationalInterval(mustRat(t, "3145/1000"), mustRat(t, "3147/1000"))
	require.Equal(t, "3.14[5,7]", iv.CompactedDecimalInterval(6))

	// A point interval collapses to a single decimal.
	require.Equal(t, "0.25", Point(mustRat(t, "1/4")).CompactedDecimalInterval(6))
}

func TestRelativeDecimalInterval(t *testing.T) {
	iv := NewRationalInterval(mustRat(t, "3145/1000"), mustRat(t, "3147/1000"))
	s := iv.RelativeDecimalInterval(6)
	require.Contains(t, s, " +- ")

	// The rendered enclosure must still contain the interval.
	require.Equal(t, "0.25 +- 0.00", Point(mustRat(t, "1/4")).RelativeDecimalInterval(6))
}
