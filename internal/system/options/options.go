// Released under an MIT license. See LICENSE.

// Package options parses the tl command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"

	"github.com/michaelmacinnis/tl/internal/system/history"
)

// Version is printed by tl --version.
const Version = "tl 0.1.0"

const usage = `tl

Usage:
  tl [--history=PATH] [--no-callback] [FILE]
  tl -h | --help
  tl -v | --version

Arguments:
  FILE  Program to load before prompting. Without one, no definitions
        are loaded.

Options:
  --history=PATH  History file [default: ` + history.DefaultPath + `].
  --no-callback   Do not register the host callback.
  -h, --help      Display this help.
  -v, --version   Print tl version.
`

// T (options) holds the parsed command line.
type T struct {
	Callback bool   // Register the host callback.
	Color    bool   // Stdout is a terminal.
	File     string // Program to load. Empty means no program.
	History  string // History file path.
}

type options = T

// Parse parses os.Args. It exits after printing help or the version.
func Parse() *options {
	o, err := parse(&docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}, os.Args[1:])
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	o.Color = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	return o
}

func parse(p *docopt.Parser, argv []string) (*options, error) {
	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, err
	}

	o := &options{}

	o.File, _ = opts.String("FILE")
	o.History, _ = opts.String("--history")

	disabled, _ := opts.Bool("--no-callback")
	o.Callback = !disabled

	return o, nil
}
