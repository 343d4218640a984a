package main

import (
	"os"

	"github.com/jostylr/ratmath/cmd/ratmath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
