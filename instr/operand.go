package instr

import "fmt"

// Kind tells which variant of the operand union is populated.
type Kind int

const (
	KindVar Kind = iota
	KindLabel
	KindType
	KindNil
	KindInt
	KindBool
	KindString
)

// Frame is the storage scope of a variable.
type Frame string

const (
	FrameGF Frame = "GF"
	FrameLF Frame = "LF"
	FrameTF Frame = "TF"
)

// Operand is one classified instruction argument.
//
// Frame and Name are set for variables, Name alone for labels, and Literal
// for type keywords and constants. For a constant, Literal is the text after
// the type tag, escapes left as written.
type Operand struct {
	Kind    Kind
	Frame   Frame
	Name    string
	Literal string
}

// Var returns a variable operand.
func Var(frame Frame, name string) Operand {
	return Operand{Kind: KindVar, Frame: frame, Name: name}
}

// Label returns a label operand.
func Label(name string) Operand {
	return Operand{Kind: KindLabel, Name: name}
}

// TypeKeyword returns a type operand such as the one READ takes.
func TypeKeyword(keyword string) Operand {
	return Operand{Kind: KindType, Literal: keyword}
}

// Constant returns a typed constant operand.
func Constant(kind Kind, literal string) Operand {
	return Operand{Kind: kind, Literal: literal}
}

// IsConstant reports whether the operand is a typed constant.
func (o Operand) IsConstant() bool {
	switch o.Kind {
	case KindNil, KindInt, KindBool, KindString:
		return true
	}
	return false
}

// Attr returns the type attribute the operand carries in the output tree.
func (o Operand) Attr() string {
	switch o.Kind {
	case KindVar:
		return "var"
	case KindLabel:
		return "label"
	case KindType:
		return "type"
	case KindNil:
		return "nil"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	}
	return ""
}

// Text returns the node content of the operand in the output tree.
func (o Operand) Text() string {
	switch o.Kind {
	case KindVar:
		return string(o.Frame) + "@" + o.Name
	case KindLabel:
		return o.Name
	default:
		return o.Literal
	}
}

func (o Operand) String() string {
	return fmt.Sprintf("%s:%s", o.Attr(), o.Text())
}
