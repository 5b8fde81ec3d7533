// Package graph provides an append-only directed graph stored in an arena.
//
// Nodes are addressed by integer handles which stay valid for the lifetime
// of the graph. Edges carry an ordinal tag describing the position of the
// target among the operands of the source node. The adjacency of a node is
// not ordered: users interested in operand order must sort the edges by
// their ordinal.
package graph
