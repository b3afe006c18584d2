package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/glinford/excel-formula-parser/format"
)

const usageText = `formula - spreadsheet formula tokenizer

Usage:
  formula tokens [-O <format>] [--keep-ws] [<formula>]   Tokenize and dump the stream
  formula render [<formula>]                             Normalized reconstruction
  formula diff [<formula>]                               Show what normalization rewrites

The formula is taken from the arguments, or from stdin when absent. A
leading '=' is accepted and stripped. Formulas are never evaluated.

Examples:
  formula tokens 'SUM(A1:B2, "x")'
  formula tokens -O json '{1,2;3,4}'
  echo '=1 +  2' | formula render
  formula diff 'IF( A1 >= 2 , "y" , "n" )'`

// MainCommand returns the root command for formula.
func MainCommand() *cli.Command {
	return cli.NewCommand("formula").
		WithSynopsis("formula - spreadsheet formula tokenizer").
		WithDescription(usageText).
		WithSubs(
			TokensCommand(),
			RenderCommand(),
			DiffCommand(),
		)
}

func fmtFunc(fp *format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = f
		return f, nil
	})
}

// readFormula returns the formula text: the joined arguments if any are
// given, the full standard input otherwise.
func readFormula(cc *cli.Context, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	d, err := io.ReadAll(cc.In)
	if err != nil {
		return "", fmt.Errorf("failed to read formula: %w", err)
	}
	return strings.TrimRight(string(d), "\r\n"), nil
}

// terminal reports whether w writes to a terminal.
func terminal(w io.Writer) *os.File {
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	return f
}
