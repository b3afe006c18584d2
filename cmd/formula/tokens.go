package main

import (
	"encoding/json"
	"fmt"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/glinford/excel-formula-parser/encode"
	"github.com/glinford/excel-formula-parser/format"
	"github.com/glinford/excel-formula-parser/token"
)

type tokensConfig struct {
	*cli.Command
	Color  bool `cli:"name=color desc='colorize the pretty listing'"`
	KeepWS bool `cli:"name=keep-ws desc='retain whitespace tokens'"`

	OutFormat format.Format
}

// TokensCommand returns the tokens subcommand.
func TokensCommand() *cli.Command {
	cfg := &tokensConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "O",
		Aliases:     []string{"ofmt"},
		Description: "output format: pretty/p, json/j, formula/f",
		Type:        cli.NamedFuncOpt(fmtFunc(&cfg.OutFormat), "(format)"),
	})
	return cli.NewCommandAt(&cfg.Command, "tokens").
		WithSynopsis("tokens [-O <format>] [--keep-ws] [<formula>] - tokenize a formula").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *tokensConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	text, err := readFormula(cc, args)
	if err != nil {
		return err
	}
	var tokOpts []token.TokenOpt
	if cfg.KeepWS {
		tokOpts = append(tokOpts, token.KeepWhitespace())
	}
	toks := token.Tokenize(text, tokOpts...)

	switch cfg.OutFormat {
	case format.JSONFormat:
		d, err := json.MarshalIndent(toks, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", d)
	case format.FormulaFormat:
		fmt.Fprintln(cc.Out, encode.Render(toks))
	default:
		if f := terminal(cc.Out); cfg.Color || (f != nil && isatty.IsTerminal(f.Fd())) {
			fmt.Fprint(cc.Out, encode.PrettyPrintColors(toks, encode.NewColors()))
			return nil
		}
		fmt.Fprint(cc.Out, encode.PrettyPrint(toks))
	}
	return nil
}
