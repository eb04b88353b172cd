// Command ippparse checks IPPcode24 source on standard input and writes its
// XML representation to standard output.
package main

import (
	"fmt"
	"os"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/ippcode/config"
	"github.com/sarchlab/ippcode/core"
)

func main() {
	s := streams{in: os.Stdin, out: os.Stdout, err: os.Stderr}

	err := execute(os.Getenv, os.Args[1:], s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	atexit.Exit(core.ExitCode(err))
}

func execute(getenv func(string) string, args []string, s streams) error {
	cfg, err := config.Load(getenv)
	if err != nil {
		return err
	}

	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}

	cmd := newRootCommand(cfg, s)
	cmd.SetArgs(args)

	return cmd.Execute()
}
