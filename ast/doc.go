// Package ast defines the in-memory tree of a SPARQL-style property path
// expression.
//
// A path expression such as foaf:knows+/ex:worksAt? parses into a tree of
// the eight node kinds below. The tree is built once by pathparser and
// consumed once by compiler; no node exposes a mutating method, so a Node
// is safe to share and re-walk.
//
//	Predicate(iri)       match a single outgoing edge labeled iri
//	Inverse(child)       traverse child against edge direction
//	Sequence(l, r)       match l then r
//	Alternative(l, r)    match l or r
//	ZeroOrMore(child)    child* (Kleene star, includes empty)
//	OneOrMore(child)     child+ (at least one iteration)
//	ZeroOrOne(child)     child? (optional)
//	Group(child)         parenthetical; semantically identity
package ast
