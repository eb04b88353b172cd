package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

// LevelTrace is more verbose than debug. Parsers log every line at this level.
const LevelTrace slog.Level = slog.LevelDebug - 4

func Trace(logger *slog.Logger, msg string, args ...any) {
	logger.Log(context.Background(), LevelTrace, msg, args...)
}

// WriteListing renders the program as a table, one row per instruction.
func WriteListing(w io.Writer, prog *Program) {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("%s (%d instructions)", prog.Language, prog.Len()))
	t.AppendHeader(table.Row{"Order", "Opcode", "Arg1", "Arg2", "Arg3"})

	for _, inst := range prog.Instructions {
		row := table.Row{inst.Order, inst.Opcode}
		for i := 0; i < 3; i++ {
			if i < len(inst.Args) {
				row = append(row, inst.Args[i].String())
			} else {
				row = append(row, "")
			}
		}
		t.AppendRow(row)
	}

	fmt.Fprintln(w, t.Render())
}
