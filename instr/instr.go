// Package instr defines the IPPcode24 instruction set: which mnemonics exist
// and what kind of operand each of their positions accepts.
package instr

import (
	"sort"
	"strings"
)

// Role is the kind of operand an instruction expects at a position.
type Role int

const (
	RoleNone Role = iota
	RoleVar
	RoleSymb
	RoleLabel
	RoleType
)

func (r Role) String() string {
	switch r {
	case RoleVar:
		return "var"
	case RoleSymb:
		return "symb"
	case RoleLabel:
		return "label"
	case RoleType:
		return "type"
	default:
		return "none"
	}
}

// Signature is the ordered operand roles of one mnemonic.
type Signature struct {
	Roles []Role
}

// Arity returns the number of operands.
func (s Signature) Arity() int {
	return len(s.Roles)
}

// Tokens returns the number of whitespace separated tokens a line carrying
// this instruction must have, the opcode included.
func (s Signature) Tokens() int {
	return len(s.Roles) + 1
}

var (
	noOperands   = Signature{}
	symbOnly     = Signature{Roles: []Role{RoleSymb}}
	labelOnly    = Signature{Roles: []Role{RoleLabel}}
	varOnly      = Signature{Roles: []Role{RoleVar}}
	varSymb      = Signature{Roles: []Role{RoleVar, RoleSymb}}
	varType      = Signature{Roles: []Role{RoleVar, RoleType}}
	varSymbSymb  = Signature{Roles: []Role{RoleVar, RoleSymb, RoleSymb}}
	labelSymbSym = Signature{Roles: []Role{RoleLabel, RoleSymb, RoleSymb}}
)

var table = map[string]Signature{
	"CREATEFRAME": noOperands,
	"PUSHFRAME":   noOperands,
	"POPFRAME":    noOperands,
	"RETURN":      noOperands,
	"BREAK":       noOperands,

	"PUSHS":  symbOnly,
	"WRITE":  symbOnly,
	"EXIT":   symbOnly,
	"DPRINT": symbOnly,

	"CALL":  labelOnly,
	"LABEL": labelOnly,
	"JUMP":  labelOnly,

	"DEFVAR": varOnly,
	"POPS":   varOnly,

	"NOT":      varSymb,
	"MOVE":     varSymb,
	"INT2CHAR": varSymb,
	"STRLEN":   varSymb,
	"TYPE":     varSymb,

	"READ": varType,

	"ADD":      varSymbSymb,
	"SUB":      varSymbSymb,
	"MUL":      varSymbSymb,
	"IDIV":     varSymbSymb,
	"LT":       varSymbSymb,
	"GT":       varSymbSymb,
	"EQ":       varSymbSymb,
	"AND":      varSymbSymb,
	"OR":       varSymbSymb,
	"STRI2INT": varSymbSymb,
	"CONCAT":   varSymbSymb,
	"GETCHAR":  varSymbSymb,
	"SETCHAR":  varSymbSymb,

	"JUMPIFEQ":  labelSymbSym,
	"JUMPIFNEQ": labelSymbSym,
}

// Lookup finds the signature of a mnemonic. The match ignores case.
func Lookup(mnemonic string) (Signature, bool) {
	sig, ok := table[strings.ToUpper(mnemonic)]
	return sig, ok
}

// Mnemonics returns every known mnemonic in upper case, sorted.
func Mnemonics() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
