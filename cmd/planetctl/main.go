// Command planetctl runs the planet physics and archive lookups from a shell.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "planetctl:", err)
		os.Exit(1)
	}
}
