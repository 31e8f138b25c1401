// Released under an MIT license. See LICENSE.

/*
Tl is an interactive driver for a small typed Lisp.

Tl loads a program, type checks it, shows it and then prompts for lines.
Each line is type checked against the program's exported definitions and
each expression on the line is evaluated and printed:

	$ tl examples/demo.tl
	...
	CTRL-D to exit
	>> (square 12)
	144
	>> (car '()) (+ 1 2)
	error: car: empty list
	3

Press Ctrl-C to show the loaded program again. Press Ctrl-D to save the
history and exit.
*/
package main

import (
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/fatih/color"

	"github.com/michaelmacinnis/tl/internal/engine"
	"github.com/michaelmacinnis/tl/internal/session"
	"github.com/michaelmacinnis/tl/internal/system/options"
	"github.com/michaelmacinnis/tl/internal/ui"
)

func main() {
	os.Exit(run(options.Parse(), os.Stderr))
}

// run loads the program named by o and runs a session. Failures to start
// are written to stderr.
func run(o *options.T, stderr io.Writer) int {
	color.NoColor = !o.Color

	source := ""

	if o.File != "" {
		b, err := os.ReadFile(o.File)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)

			return 1
		}

		source = string(b)
	}

	var opts []engine.Option
	if o.Callback {
		opts = append(opts, engine.WithCallback(product))
	}

	ctx, err := engine.Load(source, opts...)
	if err != nil {
		fmt.Fprintln(stderr, color.RedString(err.Error()))

		return 1
	}

	cli := ui.New(ctx.Names())
	defer cli.Close()

	s := session.New(
		ctx, cli,
		session.WithErrors(stderr),
		session.WithHistory(o.History),
		session.WithSource(source),
	)

	// The status is 0 once the loop has run, even if reading failed.
	_ = s.Run()

	return 0
}

// product is the host callback. It prints and returns x*y*z.
func product(x, y, z *big.Int) (*big.Int, bool) {
	n := new(big.Int).Mul(x, y)
	n.Mul(n, z)

	fmt.Printf("host function is called: n = %s\n", n)

	return n, true
}
