package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/sarchlab/ippcode/api"
	"github.com/sarchlab/ippcode/config"
	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/emit"
)

const helpFlag = "--help"

type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// newRootCommand builds the command. Flag parsing is left to RunE because
// the only accepted invocations are no arguments at all or a lone --help.
func newRootCommand(cfg config.Config, s streams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ippparse <input >output",
		Short: "Check IPPcode24 source and translate it to XML",
		Long: `ippparse checks the lexical and syntactic correctness of IPPcode24
source read from standard input. If the source has no errors, it is written
to standard output as an XML program tree.

Exit codes:
  0   success
  10  invalid arguments
  11  no input data
  12  output failure
  21  missing or malformed header
  22  unknown opcode or repeated header
  23  other lexical or syntax error

Environment:
  IPPCODE_LOG_LEVEL  trace, debug, info, warn or error (default warn)
  IPPCODE_FORMAT     xml or yaml (default xml)`,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 1 && args[0] == helpFlag:
				return cmd.Help()
			case len(args) > 0:
				return core.NewError(core.ErrInvocation,
					"unexpected arguments %q, only %s is accepted", args, helpFlag)
			}

			return run(cfg, s)
		},
	}

	cmd.SetIn(s.in)
	cmd.SetOut(s.out)
	cmd.SetErr(s.err)

	return cmd
}

func run(cfg config.Config, s streams) error {
	logger := cfg.Logger(s.err)

	emitter, err := emit.ForFormat(cfg.Format)
	if err != nil {
		return err
	}

	parser := core.NewParserBuilder().
		WithLogger(logger).
		Build()

	driver := api.DriverBuilder{}.
		WithInput(s.in).
		WithOutput(s.out).
		WithDiagnostics(s.err).
		WithParser(parser).
		WithEmitter(emitter).
		WithLogger(logger).
		Build()

	return driver.Run()
}
