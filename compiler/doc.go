// Package compiler implements Thompson construction: translating a
// property path ast.Node tree into an nfa.NFA that explorer can walk.
//
// Each construction rule below mirrors the reference algorithm exactly;
// see the individual compileXxx methods for the per-kind fragment shape.
// A Compiler value owns the single nfa.Builder for one Compile call, so
// state ids are never reused across fragments and AbsorbTransitions never
// collides keys.
package compiler
