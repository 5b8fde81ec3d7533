package graph

import (
	"fmt"
	"slices"
)

// Handle addresses a node in a Graph.
type Handle int

func (h Handle) String() string {
	return fmt.Sprintf("n%d", int(h))
}

// Edge is a directed edge with its ordinal tag.
type Edge struct {
	Source  Handle
	Target  Handle
	Ordinal int
}

type Graph[N any] struct {
	nodes    []N
	edges    []Edge
	outgoing [][]int
	incoming []int
}

func New[N any]() *Graph[N] {
	return &Graph[N]{}
}

// AddNode adds a node and returns its handle.
func (g *Graph[N]) AddNode(n N) Handle {
	h := Handle(len(g.nodes))
	g.nodes = append(g.nodes, n)
	g.outgoing = append(g.outgoing, nil)
	g.incoming = append(g.incoming, 0)
	return h
}

// AddEdge adds an edge from source to target tagged with the given ordinal.
func (g *Graph[N]) AddEdge(source, target Handle, ordinal int) {
	g.check(source)
	g.check(target)
	g.outgoing[source] = append(g.outgoing[source], len(g.edges))
	g.incoming[target]++
	g.edges = append(g.edges, Edge{Source: source, Target: target, Ordinal: ordinal})
}

func (g *Graph[N]) check(h Handle) {
	if !g.Valid(h) {
		panic(fmt.Sprintf("invalid graph handle %s", h))
	}
}

// Valid checks whether the handle has been issued by the graph.
func (g *Graph[N]) Valid(h Handle) bool {
	return h >= 0 && int(h) < len(g.nodes)
}

func (g *Graph[N]) Node(h Handle) N {
	g.check(h)
	return g.nodes[h]
}

// Len returns the number of nodes.
func (g *Graph[N]) Len() int {
	return len(g.nodes)
}

// Handles returns the handles of all nodes in creation order.
func (g *Graph[N]) Handles() []Handle {
	r := make([]Handle, len(g.nodes))
	for i := range g.nodes {
		r[i] = Handle(i)
	}
	return r
}

// Outgoing returns the edges starting at the given node.
// The order of the result is unspecified.
func (g *Graph[N]) Outgoing(h Handle) []Edge {
	g.check(h)
	r := make([]Edge, 0, len(g.outgoing[h]))
	for _, i := range g.outgoing[h] {
		r = append(r, g.edges[i])
	}
	return r
}

// Successors returns the targets of the outgoing edges of a node
// sorted by ascending ordinal.
func (g *Graph[N]) Successors(h Handle) []Handle {
	edges := g.Outgoing(h)
	slices.SortStableFunc(edges, func(a, b Edge) int { return a.Ordinal - b.Ordinal })
	r := make([]Handle, len(edges))
	for i, e := range edges {
		r[i] = e.Target
	}
	return r
}

// Incoming returns the number of edges ending at the given node.
func (g *Graph[N]) Incoming(h Handle) int {
	g.check(h)
	return g.incoming[h]
}

// IsRoot checks whether no edge ends at the given node.
func (g *Graph[N]) IsRoot(h Handle) bool {
	return g.Incoming(h) == 0
}

// Roots returns all nodes without incoming edges in creation order.
func (g *Graph[N]) Roots() []Handle {
	var r []Handle
	for i, n := range g.incoming {
		if n == 0 {
			r = append(r, Handle(i))
		}
	}
	return r
}
