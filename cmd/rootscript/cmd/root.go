// Package cmd implements the rootscript CLI wrapper: two mutually
// exclusive modes (--interpret, --dashboard) plus the interpreter's
// tuning flags (spec §6), grounded on the teacher's cobra-based
// cmd/dwscript/cmd package.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	flagInterpret            string
	flagDashboard            bool
	flagCallStackSize        int
	flagReportsLevel         int
	flagMetaprogrammingLevel int
	flagPreciseArithmetics   bool
	flagArguments            []string
)

var rootCmd = &cobra.Command{
	Use:   "rootscript",
	Short: "Root-Language core toolchain",
	Long: `rootscript lexes, parses, and interprets Root-Language scripts.

Exactly one of --interpret PATH or --dashboard selects the run mode; the
remaining flags tune the interpreter (call stack size, report verbosity,
metaprogramming level, and arithmetic precision).`,
	Version:      Version,
	SilenceUsage: true,
	RunE:         runRoot,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	flags := rootCmd.Flags()
	flags.StringVar(&flagInterpret, "interpret", "", "interpret the script at PATH")
	flags.BoolVar(&flagDashboard, "dashboard", false, "run the interactive dashboard")
	flags.IntVar(&flagCallStackSize, "callStackSize", 128, "maximum call stack depth")
	flags.IntVar(&flagReportsLevel, "reportsLevel", 2, "minimum diagnostic level to show (0-2)")
	flags.IntVar(&flagMetaprogrammingLevel, "metaprogrammingLevel", 3, "metaprogramming capability level (0-3)")
	flags.BoolVar(&flagPreciseArithmetics, "preciseArithmetics", false, "use precise (non-float) arithmetic where applicable")
	flags.StringSliceVar(&flagArguments, "arguments", nil, "arguments forwarded to the interpreted script")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
