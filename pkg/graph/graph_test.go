package graph_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/smt/pkg/graph"
)

var _ = Describe("graph", func() {
	var g *me.Graph[string]

	BeforeEach(func() {
		g = me.New[string]()
	})

	It("issues consecutive handles", func() {
		a := g.AddNode("a")
		b := g.AddNode("b")
		Expect(a).To(Equal(me.Handle(0)))
		Expect(b).To(Equal(me.Handle(1)))
		Expect(g.Node(b)).To(Equal("b"))
		Expect(g.Len()).To(Equal(2))
		Expect(g.Handles()).To(Equal([]me.Handle{a, b}))
		Expect(b.String()).To(Equal("n1"))
	})

	It("tracks roots", func() {
		a := g.AddNode("a")
		b := g.AddNode("b")
		f := g.AddNode("f")
		g.AddEdge(f, a, 0)
		g.AddEdge(f, b, 1)

		Expect(g.Roots()).To(Equal([]me.Handle{f}))
		Expect(g.IsRoot(a)).To(BeFalse())
		Expect(g.Incoming(b)).To(Equal(1))
		Expect(g.Incoming(f)).To(Equal(0))
	})

	It("orders successors by ordinal", func() {
		a := g.AddNode("a")
		b := g.AddNode("b")
		c := g.AddNode("c")
		f := g.AddNode("f")
		g.AddEdge(f, c, 2)
		g.AddEdge(f, a, 0)
		g.AddEdge(f, b, 1)

		Expect(g.Outgoing(f)).To(ConsistOf(
			me.Edge{Source: f, Target: a, Ordinal: 0},
			me.Edge{Source: f, Target: b, Ordinal: 1},
			me.Edge{Source: f, Target: c, Ordinal: 2},
		))
		Expect(g.Successors(f)).To(Equal([]me.Handle{a, b, c}))
	})

	It("keeps repeated operands", func() {
		a := g.AddNode("a")
		f := g.AddNode("f")
		g.AddEdge(f, a, 0)
		g.AddEdge(f, a, 1)
		Expect(g.Successors(f)).To(Equal([]me.Handle{a, a}))
		Expect(g.Incoming(a)).To(Equal(2))
	})

	It("rejects foreign handles", func() {
		g.AddNode("a")
		Expect(g.Valid(me.Handle(1))).To(BeFalse())
		Expect(func() { g.Node(me.Handle(5)) }).To(Panic())
		Expect(func() { g.AddEdge(0, 7, 0) }).To(Panic())
	})
})
