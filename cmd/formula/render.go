package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/glinford/excel-formula-parser/encode"
	"github.com/glinford/excel-formula-parser/token"
)

type renderConfig struct {
	*cli.Command
}

// RenderCommand returns the render subcommand.
func RenderCommand() *cli.Command {
	cfg := &renderConfig{}
	return cli.NewCommandAt(&cfg.Command, "render").
		WithSynopsis("render [<formula>] - print the normalized formula").
		WithRun(cfg.run)
}

func (cfg *renderConfig) run(cc *cli.Context, args []string) error {
	text, err := readFormula(cc, args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, encode.Render(token.Tokenize(text)))
	return nil
}
