package compiler

import (
	"fmt"

	"github.com/carolinnerebelo/SPARQL-Paths/ast"
	"github.com/carolinnerebelo/SPARQL-Paths/nfa"
)

// Compiler translates a path expression AST into an NFA fragment by
// fragment, via Thompson construction. A Compiler is single-use: build a
// fresh one per Compile call so nfa.Builder's state-id counter starts at
// zero for each compilation.
type Compiler struct {
	builder *nfa.Builder
}

// New returns a Compiler ready to compile one AST into one NFA.
func New() *Compiler {
	return &Compiler{builder: nfa.NewBuilder()}
}

// Compile builds the NFA denoted by root. It never returns an error for a
// well-formed AST (every ast.Node kind has a construction rule below); the
// error return exists for the final internal Validate check, which can
// only fail on a compiler bug.
func (c *Compiler) Compile(root ast.Node) (*nfa.NFA, error) {
	frag := c.compileNode(root)
	if err := frag.Validate(c.builder); err != nil {
		return nil, fmt.Errorf("compiler: internal error compiling automaton: %w", err)
	}
	return frag, nil
}

func (c *Compiler) compileNode(n ast.Node) *nfa.NFA {
	switch v := n.(type) {
	case *ast.Predicate:
		return c.compilePredicate(v)
	case *ast.Inverse:
		return c.compileInverse(v)
	case *ast.Sequence:
		return c.compileSequence(v)
	case *ast.Alternative:
		return c.compileAlternative(v)
	case *ast.ZeroOrMore:
		return c.compileZeroOrMore(v)
	case *ast.OneOrMore:
		return c.compileOneOrMore(v)
	case *ast.ZeroOrOne:
		return c.compileZeroOrOne(v)
	case *ast.Group:
		return c.compileGroup(v)
	default:
		panic(fmt.Sprintf("compiler: unhandled ast node kind %T", n))
	}
}

// compilePredicate builds the base fragment: two fresh states joined by a
// single transition labeled with the predicate IRI.
func (c *Compiler) compilePredicate(p *ast.Predicate) *nfa.NFA {
	s := c.builder.NewState()
	f := c.builder.NewState()
	frag := nfa.New(s, f)
	frag.AddTransition(s, nfa.NewLabel(p.IRI()), f)
	return frag
}

// compileInverse compiles the child and flips every non-epsilon
// transition's direction. Label.Invert is its own inverse, so nested
// Inverse nodes cancel out exactly, without a canonicalization pass.
func (c *Compiler) compileInverse(inv *ast.Inverse) *nfa.NFA {
	child := c.compileNode(inv.Child())
	return child.Invert()
}

// compileSequence concatenates A then B: an epsilon transition bridges
// each final state of A to the initial state of B. The result's initial
// state is A's; its final states are B's.
func (c *Compiler) compileSequence(seq *ast.Sequence) *nfa.NFA {
	a := c.compileNode(seq.Left())
	b := c.compileNode(seq.Right())

	frag := nfa.New(a.Initial(), b.Finals()...)
	frag.AbsorbTransitions(a)
	frag.AbsorbTransitions(b)
	for _, fa := range a.Finals() {
		frag.AddTransition(fa, nfa.Epsilon, b.Initial())
	}
	return frag
}

// compileAlternative branches to A or B via a fresh initial state; the
// result accepts in either A's or B's final states.
func (c *Compiler) compileAlternative(alt *ast.Alternative) *nfa.NFA {
	a := c.compileNode(alt.Left())
	b := c.compileNode(alt.Right())

	s := c.builder.NewState()
	finals := append(append([]int{}, a.Finals()...), b.Finals()...)
	frag := nfa.New(s, finals...)
	frag.AbsorbTransitions(a)
	frag.AbsorbTransitions(b)
	frag.AddTransition(s, nfa.Epsilon, a.Initial())
	frag.AddTransition(s, nfa.Epsilon, b.Initial())
	return frag
}

// compileZeroOrMore builds the Kleene-star fragment: a fresh initial state
// s can skip straight to a fresh final state f (the empty match), or enter
// A; every final of A loops back to A's initial and also reaches f.
func (c *Compiler) compileZeroOrMore(zom *ast.ZeroOrMore) *nfa.NFA {
	a := c.compileNode(zom.Child())

	s := c.builder.NewState()
	f := c.builder.NewState()
	frag := nfa.New(s, f)
	frag.AbsorbTransitions(a)
	frag.AddTransition(s, nfa.Epsilon, a.Initial())
	frag.AddTransition(s, nfa.Epsilon, f)
	for _, fa := range a.Finals() {
		frag.AddTransition(fa, nfa.Epsilon, a.Initial())
		frag.AddTransition(fa, nfa.Epsilon, f)
	}
	return frag
}

// compileOneOrMore builds the at-least-once fragment: A must be entered,
// and every final of A can either loop back into A or reach a fresh final
// state f.
func (c *Compiler) compileOneOrMore(oom *ast.OneOrMore) *nfa.NFA {
	a := c.compileNode(oom.Child())

	f := c.builder.NewState()
	frag := nfa.New(a.Initial(), f)
	frag.AbsorbTransitions(a)
	for _, fa := range a.Finals() {
		frag.AddTransition(fa, nfa.Epsilon, a.Initial())
		frag.AddTransition(fa, nfa.Epsilon, f)
	}
	return frag
}

// compileZeroOrOne builds the optional fragment: a fresh initial state can
// skip straight to any final of A (the empty match) or enter A normally.
func (c *Compiler) compileZeroOrOne(zoo *ast.ZeroOrOne) *nfa.NFA {
	a := c.compileNode(zoo.Child())

	s := c.builder.NewState()
	frag := nfa.New(s, a.Finals()...)
	frag.AbsorbTransitions(a)
	frag.AddTransition(s, nfa.Epsilon, a.Initial())
	for _, fa := range a.Finals() {
		frag.AddTransition(s, nfa.Epsilon, fa)
	}
	return frag
}

// compileGroup is semantically transparent: parentheses affect parsing
// precedence only, not the compiled automaton.
func (c *Compiler) compileGroup(g *ast.Group) *nfa.NFA {
	return c.compileNode(g.Child())
}
