// Package nfa implements the automaton model that compiler builds and
// explorer walks: integer states, an append-ordered transition list per
// state, epsilon transitions, and an Invert operation for the property
// path "^" (inverse) operator.
//
// Labels are a structured (predicate, reverse) pair rather than a string
// with a "^" prefix. This is a deliberate departure from the original
// Java source's string-concatenation approach to inversion
// ("^" + predicate), which double-prefixes under nested inversion unless
// canonicalized by hand. A structured Label makes Invert its own inverse
// by construction: Invert(Invert(l)) == l, always, with no string
// bookkeeping — see Label.Invert.
//
// There is no single top-level "build" step: compiler.Compile allocates
// one Builder per call, constructs one NFA fragment per AST node via
// New/AddTransition, and merges sibling fragments with AbsorbTransitions,
// so state ids stay unique across the whole compilation. Treat an NFA as
// read-only once compiler.Compile returns it.
package nfa
