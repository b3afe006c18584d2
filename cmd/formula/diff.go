package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/glinford/excel-formula-parser/encode"
	"github.com/glinford/excel-formula-parser/token"
)

type diffConfig struct {
	*cli.Command
	Color bool `cli:"name=color desc='colorize the diff'"`
}

// DiffCommand returns the diff subcommand: it shows how normalization
// rewrites the input formula.
func DiffCommand() *cli.Command {
	cfg := &diffConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "diff").
		WithSynopsis("diff [<formula>] - diff a formula against its normalization").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *diffConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	text, err := readFormula(cc, args)
	if err != nil {
		return err
	}
	in := strings.TrimPrefix(text, "=")
	out := encode.Render(token.Tokenize(text))

	if f := terminal(cc.Out); cfg.Color || (f != nil && isatty.IsTerminal(f.Fd())) {
		dmp := diffpatch.New()
		diffs := dmp.DiffMain(in, out, false)
		fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
		return nil
	}
	fmt.Fprintf(cc.Out, "in:  %s\n", in)
	fmt.Fprintf(cc.Out, "out: %s\n", out)
	return nil
}
