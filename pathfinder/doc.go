// Package pathfinder is the engine's facade: FindPaths parses an
// expression, compiles it to an automaton, and runs explorer.Explore over
// a graph, returning the filtered, row-projectable result.
//
// Parser and compiler errors are raised before any graph access, per the
// error taxonomy's propagation policy: a malformed expression never
// touches the adapter. Graph-access errors abort the search and discard
// any partial results rather than returning them.
package pathfinder
