package cli

import (
	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/orderx-go/orderx/loader"
)

type PreviewCmd struct {
	File string `help:"YAML order description filename." arg:"" type:"existingfile"`
}

func (cmd *PreviewCmd) Run(ctx *kong.Context, globals *Globals) error {
	b, err := loader.Load(cmd.File)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	repr.Println(b.Document())

	return nil
}
