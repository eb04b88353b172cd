// Package emit serializes validated programs.
package emit

import (
	"io"
	"strings"

	"github.com/sarchlab/ippcode/core"
)

// Emitter writes a program in one output format.
type Emitter interface {
	Emit(w io.Writer, prog *core.Program) error
}

// ForFormat returns the emitter registered under name, xml or yaml.
func ForFormat(name string) (Emitter, error) {
	switch strings.ToLower(name) {
	case "", "xml":
		return NewXML(), nil
	case "yaml", "yml":
		return YAML{}, nil
	}

	return nil, core.NewError(core.ErrInvocation,
		"unknown output format %q, expected xml or yaml", name)
}
