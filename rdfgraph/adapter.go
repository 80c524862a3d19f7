package rdfgraph

import "context"

// Adapter is the minimal graph-access capability explorer consumes. A
// missing node must yield an empty neighbor slice, never an error -- the
// engine treats "no such node" and "node with no matching edges"
// identically.
//
// context.Context is threaded through the two neighbor queries because
// this is the one seam where a real backing store (a SPARQL endpoint, a
// remote triple store) performs I/O and can block; TripleStore's
// in-memory implementation never blocks on it but still honors
// cancellation before doing any work, the same contract
// algorithms.BFSOptions.Ctx and dijkstra's options give their callers.
type Adapter interface {
	// ForwardNeighbors returns every object o such that the triple
	// (n, predicate, o) exists.
	ForwardNeighbors(ctx context.Context, n Node, predicate string) ([]Node, error)

	// ReverseNeighbors returns every subject s such that the triple
	// (s, predicate, n) exists. n itself need not be an IRI; reverse
	// traversal from a literal object is a legal, if unusual, query.
	ReverseNeighbors(ctx context.Context, n Node, predicate string) ([]Node, error)

	// NodeForIRI returns the resource handle for the given absolute IRI.
	// It always succeeds, even for an IRI that never appears in the
	// store -- such a node simply has no neighbors.
	NodeForIRI(iri string) Node
}
