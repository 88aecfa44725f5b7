// Package repl implements the interactive Read-Eval-Print Loop: one line of
// source lexed, parsed, analyzed, and evaluated at a time against a single
// persistent Evaluator, using readline for line editing/history and
// fatih/color for diagnostics chrome.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mint-lang/mint/analyzer"
	"github.com/mint-lang/mint/diag"
	"github.com/mint-lang/mint/eval"
	"github.com/mint-lang/mint/lexer"
	"github.com/mint-lang/mint/parser"
	"github.com/mint-lang/mint/value"
)

var (
	redColor    = color.New(color.FgRed)
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
)

// Prompt is the REPL's command prompt, exactly `il> ` per spec.
const Prompt = "il> "

// Repl runs an interactive session against one persistent Evaluator, so
// top-level declarations in one line remain visible to the next.
type Repl struct {
	Banner string
}

// New returns a Repl with the given startup banner (empty for none).
func New(banner string) *Repl {
	return &Repl{Banner: banner}
}

// Start runs the REPL until EOF (Ctrl+D) or a readline error. Each line
// runs through the full pipeline against a shared Evaluator and scope; the
// diagnostics context's compile-error flag is cleared between lines so a
// mistyped line doesn't poison the rest of the session.
func (r *Repl) Start(writer io.Writer) {
	if r.Banner != "" {
		blueColor.Fprintln(writer, r.Banner)
	}

	rl, err := readline.New(Prompt)
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	ctx := diag.New()
	ctx.SetWriter(writer)
	evaluator := eval.New(ctx)
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		r.runLine(writer, ctx, evaluator, line)
		ctx.ResetCompileError()
	}
}

// runLine runs one line through the full pipeline. If the line's final
// statement is a bare expression, its result is echoed back in yellow, the
// way an interactive session confirms what it just evaluated.
func (r *Repl) runLine(writer io.Writer, ctx *diag.Context, evaluator *eval.Evaluator, line string) {
	tokens := lexer.New(line, ctx).Scan()
	if ctx.HadCompileError {
		return
	}

	statements := parser.New(tokens, ctx).Parse()
	if ctx.HadCompileError {
		return
	}

	analyzer.New(ctx).Analyze(statements)
	if ctx.HadCompileError {
		return
	}

	if result, ok := evaluator.InterpretLine(statements); ok {
		yellowColor.Fprintln(writer, value.ToString(result))
	}
}
