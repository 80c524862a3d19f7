// Package explorer implements the product-graph breadth-first search that
// walks an rdfgraph.Adapter and an nfa.NFA in lockstep, and the
// dedup-and-shorten filter applied to its accepted paths.
//
// Explore is the heart of the engine: epsilon transitions advance NFA
// state without consuming a graph edge or extending the path; labeled
// transitions advance both state and graph node together. The visited
// map prunes longer re-entries into an already-seen (node, state) pair
// while preserving every witness tied for the shortest length into it,
// via a <= (not <) comparison -- see Explore's inline documentation.
package explorer
