// apcalc is a command line calculator for arbitrary precision binary
// floating-point numbers.
package main

import (
	"os"

	"github.com/ignisf/bigdecimal/cmd/apcalc/command"
)

func main() {
	if err := command.New().Execute(); err != nil {
		os.Exit(1)
	}
}
