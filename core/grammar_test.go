package core_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ippcode/core"
)

var _ = Describe("Grammar", func() {
	DescribeTable("IsIdentifier",
		func(s string, valid bool) {
			Expect(core.IsIdentifier(s)).To(Equal(valid))
		},
		Entry("plain name", "counter", true),
		Entry("leading underscore", "_tmp", true),
		Entry("all specials", "_-$&%*!?", true),
		Entry("digits after the first character", "x123", true),
		Entry("non-ASCII letter after the first character", "xčř", true),
		Entry("superscript digit after the first character", "x²", true),
		Entry("roman numeral after the first character", "xⅣ", true),
		Entry("combining mark after the first character", "x\u0301", false),
		Entry("empty", "", false),
		Entry("leading digit", "1x", false),
		Entry("non-ASCII first letter", "čx", false),
		Entry("embedded @", "a@b", false),
		Entry("embedded dot", "a.b", false),
		Entry("embedded backslash", `a\b`, false),
	)

	DescribeTable("IsVariable",
		func(s string, valid bool) {
			Expect(core.IsVariable(s)).To(Equal(valid))
		},
		Entry("global", "GF@x", true),
		Entry("local", "LF@_counter", true),
		Entry("temporary", "TF@a1", true),
		Entry("numeric suffix outside decimal digits", "GF@x²", true),
		Entry("lower case frame", "gf@x", false),
		Entry("unknown frame", "XF@x", false),
		Entry("missing name", "GF@", false),
		Entry("missing separator", "GFx", false),
		Entry("second @", "GF@x@y", false),
		Entry("name starting with a digit", "GF@9x", false),
	)

	DescribeTable("IsTypeKeyword",
		func(s string, valid bool) {
			Expect(core.IsTypeKeyword(s)).To(Equal(valid))
		},
		Entry("int", "int", true),
		Entry("bool", "bool", true),
		Entry("string", "string", true),
		Entry("upper case", "INT", false),
		Entry("nil", "nil", false),
		Entry("tagged", "int@1", false),
	)

	DescribeTable("IsIntLiteral",
		func(s string, valid bool) {
			Expect(core.IsIntLiteral(s)).To(Equal(valid))
		},
		Entry("zero", "0", true),
		Entry("signed zero", "-0", true),
		Entry("decimal", "42", true),
		Entry("positive", "+42", true),
		Entry("negative", "-42", true),
		Entry("grouped decimal", "1_000_000", true),
		Entry("hexadecimal", "0x1F", true),
		Entry("upper hex prefix", "0XdeadBEEF", true),
		Entry("grouped hex", "0xff_ff", true),
		Entry("octal with prefix", "0o17", true),
		Entry("upper octal prefix", "0O17", true),
		Entry("octal with bare zero", "017", true),
		Entry("grouped octal", "0o7_7", true),
		Entry("double zero", "00", true),
		Entry("empty", "", false),
		Entry("sign only", "-", false),
		Entry("double sign", "+-1", false),
		Entry("leading underscore", "_1", false),
		Entry("trailing underscore", "1_", false),
		Entry("double underscore", "1__0", false),
		Entry("underscore after zero", "0_7", false),
		Entry("hex prefix only", "0x", false),
		Entry("hex underscore first", "0x_f", false),
		Entry("bad hex digit", "0xfg", false),
		Entry("octal prefix only", "0o", false),
		Entry("bad octal digit", "0o8", false),
		Entry("bare zero octal with 9", "09", false),
		Entry("letters", "abc", false),
		Entry("float", "1.5", false),
	)

	DescribeTable("IsBoolLiteral",
		func(s string, valid bool) {
			Expect(core.IsBoolLiteral(s)).To(Equal(valid))
		},
		Entry("true", "true", true),
		Entry("false", "false", true),
		Entry("capitalised", "True", false),
		Entry("number", "1", false),
		Entry("empty", "", false),
	)

	DescribeTable("IsStringLiteral",
		func(s string, valid bool) {
			Expect(core.IsStringLiteral(s)).To(Equal(valid))
		},
		Entry("empty", "", true),
		Entry("plain", "hello", true),
		Entry("escape in the middle", `ab\097c`, true),
		Entry("escape at the end", `ab\035`, true),
		Entry("consecutive escapes", `\010\032`, true),
		Entry("escape followed by digits", `\0971`, true),
		Entry("unicode", "žluťoučký", true),
		Entry("at sign", "a@b", true),
		Entry("lone backslash", `\`, false),
		Entry("short escape", `a\12`, false),
		Entry("letter escape", `a\n`, false),
		Entry("escape with a letter", `\09a`, false),
		Entry("double backslash", `\\`, false),
	)

	It("should accept only nil as a nil literal", func() {
		Expect(core.IsNilLiteral("nil")).To(BeTrue())
		Expect(core.IsNilLiteral("NIL")).To(BeFalse())
		Expect(core.IsNilLiteral("")).To(BeFalse())
	})
})
