// Package pathparser parses a property path expression string into an
// ast.Node tree, following the grammar (lowest to highest precedence):
//
//	path       := sequence ('|' sequence)*
//	sequence   := inverse   ('/' inverse)*
//	inverse    := '^' inverse | element
//	element    := primary ('*' | '+' | '?')?
//	primary    := iri | '(' path ')'
//	iri        := '<' ABSOLUTE_URI '>' | prefix ':' localName
//
// Whitespace outside angle-bracketed IRIs is ignored. Prefixed names are
// resolved against a caller-supplied prefix map; an absent prefix or a
// malformed IRI shape is reported as a distinct sentinel error, while any
// other grammar violation is reported as a *SyntaxError carrying the
// offending rune position.
package pathparser
