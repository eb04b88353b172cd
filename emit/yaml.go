package emit

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/ippcode/core"
)

type yamlProgram struct {
	Language     string            `yaml:"language"`
	Instructions []yamlInstruction `yaml:"instructions"`
}

type yamlInstruction struct {
	Order  int       `yaml:"order"`
	Opcode string    `yaml:"opcode"`
	Args   []yamlArg `yaml:"args,omitempty"`
}

type yamlArg struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

// YAML writes the program as a YAML document with the same structure as the
// XML tree.
type YAML struct{}

func (YAML) Emit(w io.Writer, prog *core.Program) error {
	doc := yamlProgram{
		Language:     prog.Language,
		Instructions: make([]yamlInstruction, 0, prog.Len()),
	}

	for _, inst := range prog.Instructions {
		yi := yamlInstruction{Order: inst.Order, Opcode: inst.Opcode}
		for _, arg := range inst.Args {
			yi.Args = append(yi.Args, yamlArg{Type: arg.Attr(), Value: arg.Text()})
		}
		doc.Instructions = append(doc.Instructions, yi)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}
