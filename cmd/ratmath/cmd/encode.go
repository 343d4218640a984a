package cmd

import (
	"fmt"
	"strconv"

	"github.com/jostylr/ratmath"
	"github.com/spf13/cobra"
)

var cfCmd = &cobra.Command{
	Use:   "cf <value>",
	Short: "Show the continued fraction and convergents of a rational",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := ratmath.ParseRational(args[0])
		if err != nil {
			return err
		}
		s, err := r.ContinuedFractionString()
		if err != nil {
			return err
		}
		fmt.Println(s)
		convs, err := r.Convergents(12)
		if err != nil {
			return err
		}
		for _, c := range convs {
			fmt.Printf("  %s\n", c)
		}
		return nil
	},
}

var decCmd = &cobra.Command{
	Use:   "dec <value>",
	Short: "Show the repeating decimal and period of a rational",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := ratmath.ParseRational(args[0])
		if err != nil {
			return err
		}
		dec, period := r.RepeatingDecimalWithPeriod()
		fmt.Println(dec)
		switch {
		case period == 0:
			fmt.Println("terminating")
		case period < 0:
			fmt.Printf("period unknown, > %d\n", ratmath.MaxPeriodCheck)
		default:
			fmt.Printf("period %d\n", period)
		}
		fmt.Println(r.ScientificNotation())
		return nil
	},
}

var baseFrom, baseTo int

var baseCmd = &cobra.Command{
	Use:   "base <digits>",
	Short: "Convert an integer between digit bases",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := baseSystem(baseFrom)
		if err != nil {
			return err
		}
		to, err := baseSystem(baseTo)
		if err != nil {
			return err
		}
		v, err := from.ToDecimal(args[0])
		if err != nil {
			return err
		}
		fmt.Println(to.FromDecimal(v))
		return nil
	},
}

func baseSystem(base int) (*ratmath.BaseSystem, error) {
	switch base {
	case 2:
		return ratmath.Binary, nil
	case 8:
		return ratmath.Octal, nil
	case 10:
		return ratmath.Decimal, nil
	case 16:
		return ratmath.Hexadecimal, nil
	case 62:
		return ratmath.Base62, nil
	}
	digits := ratmath.Base62.Digits()
	if base < 2 || base > len(digits) {
		return nil, fmt.Errorf("base %d not supported", base)
	}
	return ratmath.NewBaseSystemFromChars(digits[:base], "base "+strconv.Itoa(base))
}

var sbCmd = &cobra.Command{
	Use:   "sb <num/den>",
	Short: "Show the Stern-Brocot path, parents, and children of a fraction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := ratmath.ParseRational(args[0])
		if err != nil {
			return err
		}
		f := ratmath.FractionFromRational(r)
		path, err := f.SternBrocotPath()
		if err != nil {
			return err
		}
		if path == "" {
			path = "(root)"
		}
		fmt.Printf("path: %s\n", path)
		left, right, err := f.FareyParents()
		if err != nil {
			return err
		}
		fmt.Printf("farey parents: %s %s\n", left, right)
		cl, cr, err := f.SternBrocotChildren()
		if err != nil {
			return err
		}
		fmt.Printf("children: %s %s\n", cl, cr)
		return nil
	},
}

func init() {
	baseCmd.Flags().IntVarP(&baseFrom, "from", "f", 10, "base of the input digits")
	baseCmd.Flags().IntVarP(&baseTo, "to", "t", 10, "base of the output digits")
	rootCmd.AddCommand(cfCmd, decCmd, baseCmd, sbCmd)
}
