// Package rdfgraph defines the graph-access contract explorer consumes
// (Adapter) and a thread-safe in-memory reference implementation
// (TripleStore), grounded on the same adjacency-index philosophy as
// core.Graph: build the indices once on insertion, so every traversal
// query is an O(1)-amortized map lookup.
//
// A Node is an opaque handle over either an IRI resource (walkable) or a
// literal (terminal). Resource handles come from NewIRI or
// Adapter.NodeForIRI, literal handles from NewLiteral; a literal only
// ever appears as the object of a Triple.
package rdfgraph
