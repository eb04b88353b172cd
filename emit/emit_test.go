package emit_test

import (
	"bytes"
	"encoding/xml"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/emit"
	"github.com/sarchlab/ippcode/instr"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

var _ = Describe("Emitters", func() {
	var prog *core.Program

	BeforeEach(func() {
		prog = core.NewProgram(core.DefaultLanguage)
		prog.Append("MOVE", []instr.Operand{
			instr.Var(instr.FrameGF, "x"),
			instr.Constant(instr.KindInt, "5"),
		})
		prog.Append("WRITE", []instr.Operand{
			instr.Constant(instr.KindString, `a<b&c\010`),
		})
		prog.Append("BREAK", nil)
	})

	Context("XML", func() {
		It("should write the program tree", func() {
			var buf bytes.Buffer
			Expect(emit.NewXML().Emit(&buf, prog)).To(Succeed())

			Expect(buf.String()).To(Equal(
				`<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
					`<program language="IPPcode24">` + "\n" +
					`    <instruction order="1" opcode="MOVE">` + "\n" +
					`        <arg1 type="var">GF@x</arg1>` + "\n" +
					`        <arg2 type="int">5</arg2>` + "\n" +
					`    </instruction>` + "\n" +
					`    <instruction order="2" opcode="WRITE">` + "\n" +
					`        <arg1 type="string">a&lt;b&amp;c\010</arg1>` + "\n" +
					`    </instruction>` + "\n" +
					`    <instruction order="3" opcode="BREAK"></instruction>` + "\n" +
					`</program>` + "\n"))
		})

		It("should write well-formed XML that reads back", func() {
			var buf bytes.Buffer
			Expect(emit.NewXML().Emit(&buf, prog)).To(Succeed())

			var doc struct {
				Language     string `xml:"language,attr"`
				Instructions []struct {
					Order  int    `xml:"order,attr"`
					Opcode string `xml:"opcode,attr"`
					Arg1   struct {
						Type string `xml:"type,attr"`
						Text string `xml:",chardata"`
					} `xml:"arg1"`
				} `xml:"instruction"`
			}
			Expect(xml.Unmarshal(buf.Bytes(), &doc)).To(Succeed())
			Expect(doc.Language).To(Equal("IPPcode24"))
			Expect(doc.Instructions).To(HaveLen(3))
			Expect(doc.Instructions[1].Arg1.Type).To(Equal("string"))
			Expect(doc.Instructions[1].Arg1.Text).To(Equal(`a<b&c\010`))
		})

		It("should write an empty program", func() {
			var buf bytes.Buffer
			Expect(emit.NewXML().Emit(&buf, core.NewProgram("IPPcode24"))).To(Succeed())
			Expect(buf.String()).To(ContainSubstring(`<program language="IPPcode24"></program>`))
		})

		It("should report write failures", func() {
			Expect(emit.NewXML().Emit(failingWriter{}, prog)).NotTo(Succeed())
		})
	})

	Context("YAML", func() {
		It("should write the same tree", func() {
			var buf bytes.Buffer
			Expect(emit.YAML{}.Emit(&buf, prog)).To(Succeed())

			var doc struct {
				Language     string `yaml:"language"`
				Instructions []struct {
					Order  int    `yaml:"order"`
					Opcode string `yaml:"opcode"`
					Args   []struct {
						Type  string `yaml:"type"`
						Value string `yaml:"value"`
					} `yaml:"args"`
				} `yaml:"instructions"`
			}
			Expect(yaml.Unmarshal(buf.Bytes(), &doc)).To(Succeed())
			Expect(doc.Language).To(Equal("IPPcode24"))
			Expect(doc.Instructions).To(HaveLen(3))
			Expect(doc.Instructions[0].Opcode).To(Equal("MOVE"))
			Expect(doc.Instructions[0].Args[0].Type).To(Equal("var"))
			Expect(doc.Instructions[0].Args[0].Value).To(Equal("GF@x"))
			Expect(doc.Instructions[0].Args[1].Value).To(Equal("5"))
			Expect(doc.Instructions[1].Args[0].Value).To(Equal(`a<b&c\010`))
			Expect(doc.Instructions[2].Order).To(Equal(3))
			Expect(doc.Instructions[2].Args).To(BeEmpty())
		})
	})

	DescribeTable("emitting twice gives identical bytes",
		func(e emit.Emitter) {
			var first, second bytes.Buffer
			Expect(e.Emit(&first, prog)).To(Succeed())
			Expect(e.Emit(&second, prog)).To(Succeed())
			Expect(second.Bytes()).To(Equal(first.Bytes()))
		},
		Entry("xml", emit.NewXML()),
		Entry("yaml", emit.YAML{}),
	)

	Describe("ForFormat", func() {
		It("should default to XML", func() {
			e, err := emit.ForFormat("")
			Expect(err).NotTo(HaveOccurred())
			Expect(e).To(BeAssignableToTypeOf(emit.XML{}))
		})

		It("should select YAML", func() {
			e, err := emit.ForFormat("YAML")
			Expect(err).NotTo(HaveOccurred())
			Expect(e).To(BeAssignableToTypeOf(emit.YAML{}))
		})

		It("should reject unknown formats as an invocation error", func() {
			_, err := emit.ForFormat("json")
			Expect(core.ExitCode(err)).To(Equal(core.ExitInvocation))
		})
	})
})
