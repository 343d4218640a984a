package ratmath

import "math/big"

const (
	// DefaultPrecision is the precision used by the transcendental functions
	// when the caller passes 0: negative n means "within 10^-n".
	DefaultPrecision = -6

	// MaxPeriodCheck bounds the multiplicative-order search when computing
	// the period of a decimal expansion. Past this many modular
	// multiplications the period is reported as unknown rather than hanging.
	MaxPeriodCheck = 100000

	// MaxPeriodDigits bounds how many fractional digits the long-division
	// expansion will materialize before giving up on finding the cycle.
	MaxPeriodDigits = 20000

	// MaxScientificExponent bounds the E exponent accepted by the parser, so
	// a hostile input cannot demand a power of ten with millions of digits.
	MaxScientificExponent = 100000

	// MaxSternBrocotDepth bounds mediant walks through the tree.
	MaxSternBrocotDepth = 500

	// MaxSeriesTerms bounds every Taylor/binomial series loop.
	MaxSeriesTerms = 1000

	// MaxNewtonIterations bounds root finding.
	MaxNewtonIterations = 200

	// MaxContinuedFractionTerms bounds Euclidean expansion and convergent
	// generation.
	MaxContinuedFractionTerms = 10000

	// maxSeriesDenomBits is the denominator size past which exact series
	// evaluation abandons the rational accumulation and falls back to a
	// padded float estimate.
	maxSeriesDenomBits = 8192

	// maxExpArgument bounds |x| in Exp's range reduction: past it the 2^k
	// rescale demands ln2 and series tails tighter than the series caps can
	// deliver.
	maxExpArgument = 512

	// maxTrigArgument bounds trig arguments: the quadrant count must stay an
	// exact machine integer and the pi enclosure tighter than eps divided by
	// that count.
	maxTrigArgument = 1 << 30

	// runLengthThreshold is the shortest digit run that gets compressed to a
	// {digit~count} token in repeating-decimal output.
	runLengthThreshold = 7
)

// reservedSymbols are the expression-syntax characters that may never appear
// in a base system's digit alphabet.
const reservedSymbols = "+-*/^!()[]{}:#~. "

var (
	big0  = big.NewInt(0)
	big1  = big.NewInt(1)
	big2  = big.NewInt(2)
	big5  = big.NewInt(5)
	big10 = big.NewInt(10)
)

// piCFTerms is the continued-fraction expansion of pi (OEIS A001203). The
// convergents of this list bracket pi by construction; the list is long
// enough for enclosures far below 10^-30.
var piCFTerms = []int64{
	3, 7, 15, 1, 292, 1, 1, 1, 2, 1, 3, 1, 14, 2, 1, 1, 2, 2, 2, 2,
	1, 84, 2, 1, 1, 15, 3, 13, 1, 4, 2, 6, 6, 99, 1, 2, 2, 6, 3, 5,
	1, 1, 6, 8, 1, 7, 1, 2, 3, 7, 1, 2, 1, 1, 12, 1, 1, 1, 3, 1,
	1, 8, 1, 1, 2, 1, 6, 1, 1, 5, 2, 2, 3, 1, 2,
}

// eCFTerm returns the i-th term of the continued fraction of e, which
// follows the pattern [2; 1, 2, 1, 1, 4, 1, 1, 6, 1, ...] forever.
func eCFTerm(i int) int64 {
	if i == 0 {
		return 2
	}
	if i%3 == 2 {
		return int64(2 * (i + 1) / 3)
	}
	return 1
}
