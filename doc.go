// Package sparqlpaths is a SPARQL property-path evaluation engine: it
// parses a property path expression, compiles it to a nondeterministic
// finite automaton via Thompson construction, and walks that automaton
// against an RDF graph to produce concrete path witnesses -- not merely
// reachable endpoints.
//
// Everything is organized under flat top-level packages, one per
// concern:
//
//	ast/         — property path expression tree
//	pathparser/  — expression text -> ast.Node
//	nfa/         — automaton model: states, transitions, inversion
//	compiler/    — Thompson construction: ast.Node -> nfa.NFA
//	rdfgraph/    — graph access contract + in-memory reference store
//	explorer/    — product-graph breadth-first search + result filter
//	pathfinder/  — FindPaths facade, row projection, error wiring
//
// Quick usage:
//
//	store := rdfgraph.NewTripleStore()
//	store.AddTriple("http://ex.org/alice", "http://ex.org/knows", rdfgraph.NewIRI("http://ex.org/bob"))
//	witnesses, err := pathfinder.FindPaths(ctx, "http://ex.org/alice", "ex:knows+",
//		map[string]string{"ex": "http://ex.org/"}, store, pathfinder.Config{})
package sparqlpaths
