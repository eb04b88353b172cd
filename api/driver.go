// Package api defines the driver that turns source text into an emitted
// program tree.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/emit"
)

// Driver runs one translation.
type Driver interface {
	// Run reads all input, validates it and writes the program tree. On
	// failure it returns a classified error and writes nothing.
	Run() error
}

type driverImpl struct {
	in          io.Reader
	out         io.Writer
	diagnostics io.Writer
	parser      *core.Parser
	emitter     emit.Emitter
	logger      *slog.Logger
}

func (d *driverImpl) Run() error {
	src, err := d.read()
	if err != nil {
		return err
	}
	core.Trace(d.logger, "input read", "bytes", len(src))

	prog, err := d.parser.Parse(src)
	if err != nil {
		return err
	}

	if d.logger.Enabled(context.Background(), core.LevelTrace) {
		core.WriteListing(d.diagnostics, prog)
	}

	return d.write(prog)
}

func (d *driverImpl) read() (string, error) {
	data, err := io.ReadAll(d.in)
	if err != nil {
		return "", core.NewError(core.ErrInput, "failed to read input: %v", err)
	}

	if len(data) == 0 {
		return "", core.NewError(core.ErrInput, "no input data")
	}

	return string(data), nil
}

func (d *driverImpl) write(prog *core.Program) error {
	var buf bytes.Buffer
	if err := d.emitter.Emit(&buf, prog); err != nil {
		return fmt.Errorf("emit program: %w",
			core.NewError(core.ErrOutput, "%v", err))
	}

	if _, err := buf.WriteTo(d.out); err != nil {
		return core.NewError(core.ErrOutput, "failed to write output: %v", err)
	}

	core.Trace(d.logger, "program written", "instructions", prog.Len())

	return nil
}
