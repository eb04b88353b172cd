package core

import (
	"strings"

	"github.com/sarchlab/ippcode/instr"
)

// ClassifyVariable turns a GF@name style token into a variable operand.
func ClassifyVariable(token string) (instr.Operand, error) {
	if !IsVariable(token) {
		return instr.Operand{}, lexicalError(token, "invalid variable %q", token)
	}

	frame, name, _ := splitFrame(token)

	return instr.Var(instr.Frame(frame), name), nil
}

// ClassifyLabel turns a token into a label operand.
func ClassifyLabel(token string) (instr.Operand, error) {
	if !IsLabel(token) {
		return instr.Operand{}, lexicalError(token, "invalid label %q", token)
	}

	return instr.Label(token), nil
}

// ClassifyType turns a token into a type keyword operand.
func ClassifyType(token string) (instr.Operand, error) {
	if !IsTypeKeyword(token) {
		return instr.Operand{}, lexicalError(token,
			"invalid type %q, expected int, bool or string", token)
	}

	return instr.TypeKeyword(token), nil
}

// ClassifySymbol turns a token that is either a variable or a typed constant
// into an operand. The part before the first @ decides which.
func ClassifySymbol(token string) (instr.Operand, error) {
	prefix, literal, found := strings.Cut(token, "@")
	if !found {
		return instr.Operand{}, lexicalError(token,
			"%q is neither a constant nor a variable", token)
	}

	switch prefix {
	case "GF", "LF", "TF":
		return ClassifyVariable(token)
	case "nil":
		if !IsNilLiteral(literal) {
			return instr.Operand{}, lexicalError(token, "invalid nil constant %q", token)
		}
		return instr.Constant(instr.KindNil, literal), nil
	case "int":
		if !IsIntLiteral(literal) {
			return instr.Operand{}, lexicalError(token, "invalid int constant %q", token)
		}
		return instr.Constant(instr.KindInt, literal), nil
	case "bool":
		if !IsBoolLiteral(literal) {
			return instr.Operand{}, lexicalError(token, "invalid bool constant %q", token)
		}
		return instr.Constant(instr.KindBool, literal), nil
	case "string":
		if !IsStringLiteral(literal) {
			return instr.Operand{}, lexicalError(token,
				"invalid string constant %q, a backslash must start a three digit escape", token)
		}
		return instr.Constant(instr.KindString, literal), nil
	}

	return instr.Operand{}, &Error{
		Kind:  ErrUnknownConstantType,
		Token: token,
		Msg:   "unknown constant type " + prefix + ", expected nil, int, bool or string",
	}
}

// Classify validates token against the operand role and returns the operand.
func Classify(role instr.Role, token string) (instr.Operand, error) {
	switch role {
	case instr.RoleVar:
		return ClassifyVariable(token)
	case instr.RoleLabel:
		return ClassifyLabel(token)
	case instr.RoleType:
		return ClassifyType(token)
	case instr.RoleSymb:
		return ClassifySymbol(token)
	}

	return instr.Operand{}, NewError(ErrInternal, "no operand expected for role %s", role)
}
