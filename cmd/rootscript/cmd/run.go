package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rootscript/core/internal/interp"
	"github.com/rootscript/core/internal/lexer"
	"github.com/rootscript/core/internal/parser"
	"github.com/rootscript/core/internal/reportkit"
)

func runRoot(cmd *cobra.Command, args []string) error {
	if flagInterpret == "" && !flagDashboard {
		exitWithError("exactly one of --interpret PATH or --dashboard is required")
		return nil
	}
	if flagInterpret != "" && flagDashboard {
		exitWithError("--interpret and --dashboard are mutually exclusive")
		return nil
	}
	if flagReportsLevel < 0 || flagReportsLevel > 2 {
		exitWithError("--reportsLevel must be between 0 and 2")
		return nil
	}
	if flagMetaprogrammingLevel < 0 || flagMetaprogrammingLevel > 3 {
		exitWithError("--metaprogrammingLevel must be between 0 and 3")
		return nil
	}
	if flagCallStackSize <= 0 {
		exitWithError("--callStackSize must be positive")
		return nil
	}

	if flagDashboard {
		return runDashboard()
	}
	return runInterpret(flagInterpret)
}

func runInterpret(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		exitWithError("cannot read %s: %v", path, err)
		return nil
	}

	lx := lexer.New(string(source))
	tokens := lx.Lex()
	filtered := lexer.Filtered(tokens)

	p := parser.New(filtered, string(source))
	module := p.Parse()

	in := interp.New(nil, string(source), path)
	in.Run(module)

	diags := append(p.Diagnostics(), in.Reports.Items()...)
	shown := reportkit.FilterMinLevel(diags, reportkit.Level(flagReportsLevel))
	for _, d := range shown {
		fmt.Fprintln(os.Stderr, d.Format())
	}

	for _, d := range diags {
		if d.Level == reportkit.LevelFatal {
			os.Exit(1)
		}
	}
	return nil
}

func runDashboard() error {
	fmt.Println("rootscript dashboard: no interactive terminal available in this build")
	return nil
}
