package core

import "github.com/sarchlab/ippcode/instr"

// Program is a validated source file: its instructions in source order.
type Program struct {
	Language     string
	Instructions []*Instruction
}

// Instruction is one validated source line.
type Instruction struct {
	// Order is the 1-based position among the instructions of the program.
	Order  int
	Opcode string
	Args   []instr.Operand
}

// NewProgram creates an empty program for the given language.
func NewProgram(language string) *Program {
	return &Program{Language: language}
}

// Append adds an instruction after the last one and numbers it.
func (p *Program) Append(opcode string, args []instr.Operand) *Instruction {
	inst := &Instruction{
		Order:  len(p.Instructions) + 1,
		Opcode: opcode,
		Args:   args,
	}
	p.Instructions = append(p.Instructions, inst)

	return inst
}

// Len returns the number of instructions.
func (p *Program) Len() int {
	return len(p.Instructions)
}
