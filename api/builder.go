package api

import (
	"io"
	"log/slog"
	"os"

	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/emit"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	in          io.Reader
	out         io.Writer
	diagnostics io.Writer
	parser      *core.Parser
	emitter     emit.Emitter
	logger      *slog.Logger
}

// WithInput sets where the source is read from.
func (b DriverBuilder) WithInput(in io.Reader) DriverBuilder {
	b.in = in
	return b
}

// WithOutput sets where the program tree is written.
func (b DriverBuilder) WithOutput(out io.Writer) DriverBuilder {
	b.out = out
	return b
}

// WithDiagnostics sets where the trace listing goes.
func (b DriverBuilder) WithDiagnostics(w io.Writer) DriverBuilder {
	b.diagnostics = w
	return b
}

// WithParser sets the parser.
func (b DriverBuilder) WithParser(parser *core.Parser) DriverBuilder {
	b.parser = parser
	return b
}

// WithEmitter sets the output format.
func (b DriverBuilder) WithEmitter(emitter emit.Emitter) DriverBuilder {
	b.emitter = emitter
	return b
}

// WithLogger sets the logger.
func (b DriverBuilder) WithLogger(logger *slog.Logger) DriverBuilder {
	b.logger = logger
	return b
}

// Build creates a driver. Unset streams default to the standard ones, and
// the output format to XML.
func (b DriverBuilder) Build() Driver {
	d := &driverImpl{
		in:          b.in,
		out:         b.out,
		diagnostics: b.diagnostics,
		parser:      b.parser,
		emitter:     b.emitter,
		logger:      b.logger,
	}

	if d.in == nil {
		d.in = os.Stdin
	}
	if d.out == nil {
		d.out = os.Stdout
	}
	if d.diagnostics == nil {
		d.diagnostics = os.Stderr
	}
	if d.logger == nil {
		d.logger = slog.New(slog.DiscardHandler)
	}
	if d.parser == nil {
		d.parser = core.NewParserBuilder().WithLogger(d.logger).Build()
	}
	if d.emitter == nil {
		d.emitter = emit.NewXML()
	}

	return d
}
