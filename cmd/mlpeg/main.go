//mlpeg is the command driving the MLIP pressure benchmark: the calculation
//stage, the analysis stage, and the dashboard, as separate subcommands.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
