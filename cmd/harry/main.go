// Command harry computes a pairwise string-similarity/distance matrix over
// a batch of input strings, per SPEC_FULL.md's CLI surface.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
