package cmd

import (
	"strconv"

	"github.com/jostylr/ratmath"
	"github.com/spf13/cobra"
)

// unaryCmd builds a command that parses one rational argument and prints
// the enclosure fn returns for it.
func unaryCmd(use, short string, fn func(ratmath.Rational, int) (ratmath.RationalInterval, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <value>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := ratmath.ParseRational(args[0])
			if err != nil {
				return err
			}
			iv, err := fn(x, precision)
			if err != nil {
				return err
			}
			printEnclosure(iv)
			return nil
		},
	}
}

var rootNCmd = &cobra.Command{
	Use:   "root <value> <n>",
	Short: "Enclose the n-th root of a rational",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := ratmath.ParseRational(args[0])
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		iv, err := ratmath.NewtonRoot(q, n, precision)
		if err != nil {
			return err
		}
		printEnclosure(iv)
		return nil
	},
}

var powCmd = &cobra.Command{
	Use:   "pow <base> <exponent>",
	Short: "Enclose base raised to a rational exponent",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := ratmath.ParseRational(args[0])
		if err != nil {
			return err
		}
		exp, err := ratmath.ParseRational(args[1])
		if err != nil {
			return err
		}
		iv, err := ratmath.RationalPower(base, exp, precision)
		if err != nil {
			return err
		}
		printEnclosure(iv)
		return nil
	},
}

var logCmd = &cobra.Command{
	Use:   "log <value> <base>",
	Short: "Enclose the logarithm of a rational in a rational base",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := ratmath.ParseRational(args[0])
		if err != nil {
			return err
		}
		base, err := ratmath.ParseRational(args[1])
		if err != nil {
			return err
		}
		iv, err := ratmath.Log(x, base, precision)
		if err != nil {
			return err
		}
		printEnclosure(iv)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(
		unaryCmd("exp", "Enclose e^x", ratmath.Exp),
		unaryCmd("ln", "Enclose the natural logarithm", ratmath.Ln),
		unaryCmd("sin", "Enclose sin x", ratmath.Sin),
		unaryCmd("cos", "Enclose cos x", ratmath.Cos),
		unaryCmd("tan", "Enclose tan x", ratmath.Tan),
		unaryCmd("asin", "Enclose arcsin x", ratmath.Arcsin),
		unaryCmd("acos", "Enclose arccos x", ratmath.Arccos),
		unaryCmd("atan", "Enclose arctan x", ratmath.Arctan),
		rootNCmd,
		powCmd,
		logCmd,
	)
}
