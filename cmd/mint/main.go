// Command mint is the interpreter's entry point: no positional argument
// starts the REPL, one positional argument executes that file, and more
// than one is a usage error, built on a Cobra command tree.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mint-lang/mint/analyzer"
	"github.com/mint-lang/mint/diag"
	"github.com/mint-lang/mint/eval"
	"github.com/mint-lang/mint/lexer"
	"github.com/mint-lang/mint/parser"
	"github.com/mint-lang/mint/repl"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var banner = color.New(color.FgGreen).Sprint(`
  _ _
 (_) |
  _| |
 | | |
 |_|_|
`)

var rootCmd = &cobra.Command{
	Use:     "mint [path]",
	Short:   "mint is a tree-walking interpreter for the il language",
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			repl.New(banner).Start(os.Stdout)
			return nil
		}
		os.Exit(runFile(args[0]))
		return nil
	},
}

func main() {
	rootCmd.SetVersionTemplate("mint version {{.Version}}\n")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runFile executes one file's contents as a single program, returning the
// process exit code: 0 on success, 1 if the file is unreadable or a
// compile/runtime error occurred.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read file %q: %v\n", path, err)
		return 1
	}

	ctx := diag.New()

	tokens := lexer.New(string(source), ctx).Scan()
	if ctx.HadCompileError {
		return ctx.ExitCode()
	}

	statements := parser.New(tokens, ctx).Parse()
	if ctx.HadCompileError {
		return ctx.ExitCode()
	}

	analyzer.New(ctx).Analyze(statements)
	if ctx.HadCompileError {
		return ctx.ExitCode()
	}

	eval.New(ctx).Interpret(statements)
	return ctx.ExitCode()
}
