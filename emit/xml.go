package emit

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/sarchlab/ippcode/core"
)

// XML writes the program as the XML tree the interpreter reads:
//
//	<program language="IPPcode24">
//	    <instruction order="1" opcode="MOVE">
//	        <arg1 type="var">GF@x</arg1>
//	        <arg2 type="int">5</arg2>
//	    </instruction>
//	</program>
type XML struct {
	Indent string
}

// NewXML returns an XML emitter indenting by four spaces.
func NewXML() XML {
	return XML{Indent: "    "}
}

func (x XML) Emit(w io.Writer, prog *core.Program) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", x.Indent)

	root := xml.StartElement{
		Name: xml.Name{Local: "program"},
		Attr: []xml.Attr{attr("language", prog.Language)},
	}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}

	for _, inst := range prog.Instructions {
		if err := encodeInstruction(enc, inst); err != nil {
			return fmt.Errorf("instruction %d: %w", inst.Order, err)
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")

	return err
}

func encodeInstruction(enc *xml.Encoder, inst *core.Instruction) error {
	start := xml.StartElement{
		Name: xml.Name{Local: "instruction"},
		Attr: []xml.Attr{
			attr("order", strconv.Itoa(inst.Order)),
			attr("opcode", inst.Opcode),
		},
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	for i, arg := range inst.Args {
		el := xml.StartElement{
			Name: xml.Name{Local: "arg" + strconv.Itoa(i+1)},
			Attr: []xml.Attr{attr("type", arg.Attr())},
		}
		if err := enc.EncodeElement(arg.Text(), el); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}
