// Command bandinfo synthesizes a continuum-removed absorption band and
// prints its shape features, noise estimate and denoising report.
//
// Usage:
//
//	bandinfo [flags] <command>
//
// Examples:
//
//	bandinfo features --center 1900 --width 60 --depth 0.4
//	bandinfo features --low 1700 --high 2100 --degree 2
//	bandinfo noise --sigma 0.02 --clip 2.5
//	BANDINFO_SIGMA=0.05 bandinfo denoise --threshold 4
//
// Every flag can also be set from the environment (BANDINFO_<FLAG>, dashes
// replaced by underscores) or from a YAML file given with --config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
