package expression_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/mandelsoft/smt/pkg/testutils"

	me "github.com/mandelsoft/smt/pkg/expression"
	"github.com/mandelsoft/smt/pkg/smt"
	"github.com/mandelsoft/smt/pkg/smtlib2"
	"github.com/mandelsoft/smt/pkg/theories/ints"
)

var _ = Describe("builder", func() {
	var s *me.Session

	BeforeEach(func() {
		s = smtlib2.New[ints.Node, ints.Sort](ints.QF_LIA)
		s.NewVar("x", ints.Int)
		s.NewVar("y", ints.Int)
		s.NewVar("b", ints.Bool)
	})

	assert := func(in string) {
		_, err := me.BuildAssertion(s, Must(me.Parse(in)))
		ExpectWithOffset(1, err).To(Succeed())
	}

	DescribeTable("renders",
		func(in, out string) {
			assert(in)
			Expect(s.GenerateAsserts()).To(HaveSuffix("(assert " + out + ")\n"))
		},
		Entry("comparison", "x < y", "(< x y)"),
		Entry("arithmetic", "x + 2 * y >= -3", "(>= (+ x (* 2 y)) (- 3))"),
		Entry("division", "x / 2 == x % 3", "(= (div x 2) (mod x 3))"),
		Entry("negation", "-x > 0", "(> (- x) 0)"),
		Entry("boolean equality", "b == (x != y)", "(= b (distinct x y))"),
		Entry("logic", "!b || x < y && y < 10", "(or (not b) (and (< x y) (< y 10)))"),
		Entry("plain variable", "b", "(= b true)"),
		Entry("plain constant", "false", "(= false true)"),
	)

	It("declares variables once", func() {
		assert("x < y")
		assert("y < 10")
		Expect(s.GenerateAsserts()).To(Equal(
			"(declare-fun b () Bool)\n" +
				"(declare-fun x () Int)\n" +
				"(declare-fun y () Int)\n" +
				"(assert (< x y))\n" +
				"(assert (< y 10))\n"))
	})

	It("determines sorts", func() {
		Expect(me.Check(s, Must(me.Parse("x + y")))).To(Equal(ints.Int))
		Expect(me.Check(s, Must(me.Parse("x == y")))).To(Equal(ints.Bool))
	})

	DescribeTable("rejects",
		func(in, msg string) {
			n := Must(me.Parse(in))
			size := s.Len()
			_, err := me.BuildAssertion(s, n)
			Expect(smt.IsAssertionError(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(msg))
			Expect(s.Len()).To(Equal(size))
		},
		Entry("undeclared variable", "x < z", `undeclared variable "z"`),
		Entry("boolean arithmetic", "x < y + b", `operand "b" of "+" must be Int, but is Bool`),
		Entry("integer logic", "(x < y) && x", `operand "x" of "&&" must be Bool, but is Int`),
		Entry("mixed equality", "x == b", "must have the same sort"),
		Entry("integer assertion", "x + y", "must be Bool, but is Int"),
	)
})
