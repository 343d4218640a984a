package cmd

import (
	"fmt"

	"github.com/jostylr/ratmath"
	"github.com/spf13/cobra"
)

var precision int

var rootCmd = &cobra.Command{
	Use:   "ratmath",
	Short: "Exact rational arithmetic with verified enclosures",
	Long: `ratmath evaluates exact-arithmetic operations on the command line.
Transcendental results are printed as rational intervals that provably
contain the true value.

Value syntax: integers, a/b fractions, w..n/d mixed numbers, decimals,
repeating decimals with a '#' period marker, and a0.~a1~a2 continued
fractions.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&precision, "precision", "p", 0,
		"target precision: n means within 1/n, -n means within 10^-n (default 10^-6)")
}

func printEnclosure(iv ratmath.RationalInterval) {
	fmt.Printf("%s\n", iv)
	fmt.Printf("≈ %s\n", iv.RelativeDecimalInterval(15))
}
