package cmd

import (
	"github.com/jostylr/ratmath"
	"github.com/spf13/cobra"
)

var piCmd = &cobra.Command{
	Use:   "pi",
	Short: "Enclose pi",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		iv, err := ratmath.Pi(precision)
		if err != nil {
			return err
		}
		printEnclosure(iv)
		return nil
	},
}

var eCmd = &cobra.Command{
	Use:   "e",
	Short: "Enclose Euler's number",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		iv, err := ratmath.E(precision)
		if err != nil {
			return err
		}
		printEnclosure(iv)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(piCmd, eCmd)
}
