// Command rootscript is the CLI entry point for the Root-Language core
// toolchain.
package main

import (
	"fmt"
	"os"

	"github.com/rootscript/core/cmd/rootscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
