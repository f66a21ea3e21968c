package main

import (
	"os"

	"github.com/averycrespi/calculator-mcp/internal/tape"
	"github.com/spf13/afero"
)

// RunCmd implements the 'run' command
type RunCmd struct {
	Tape string `arg:"" type:"existingfile" help:"Key tape to replay"`
}

func (r *RunCmd) Run(root *CLI) error {
	_, err := tape.Run(afero.NewOsFs(), r.Tape, os.Stdout)
	return err
}
