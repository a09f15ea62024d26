// Package main implements binderctl, a command-line runner for binder op
// scripts. It exists to exercise the binder container end to end from the
// shell: building containers, copying them, and observing copy-on-write
// isolation between the copies.
//
// Usage:
//
//	# run a script file
//	binderctl run testdata/example.txt
//
//	# or feed statements on stdin
//	echo "new a
//	insert-front a x 1
//	get a x" | binderctl run
//
// The script grammar is documented in internal/script. Output lines (one per
// get/len/list observation) go to stdout; failures carry the offending
// script line number and exit non-zero.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dreamware/binder/internal/script"
)

func main() {
	app := &cli.App{
		Name:  "binderctl",
		Usage: "run binder op scripts",
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "execute a script from a file, or stdin when no file is given",
				ArgsUsage: "[FILE]",
				Action:    runScript,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runScript(cctx *cli.Context) error {
	var src io.Reader = os.Stdin
	if cctx.Args().Len() > 0 {
		f, err := os.Open(cctx.Args().First())
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	ops, err := script.Parse(src)
	if err != nil {
		return err
	}

	out, runErr := script.NewInterp().Run(ops)
	for _, line := range out {
		fmt.Println(line)
	}
	return runErr
}
