package ast

// Node is a path-expression tree node. Every implementation is an
// exported struct with unexported fields, built through the package-level
// constructor functions below and read only through accessors, which
// keeps the tree immutable once built.
type Node interface {
	// isNode is unexported so Node can only be implemented within this
	// package; callers type-switch on the concrete kinds instead.
	isNode()
}

// Predicate matches a single outgoing edge labeled IRI.
type Predicate struct {
	iri string
}

// NewPredicate returns a Predicate node matching the given predicate IRI.
func NewPredicate(iri string) *Predicate { return &Predicate{iri: iri} }

// IRI returns the predicate IRI this node matches.
func (p *Predicate) IRI() string { return p.iri }

func (*Predicate) isNode() {}

// Inverse traverses Child against edge direction, flipping subject/object
// roles on every non-epsilon transition inside Child.
type Inverse struct {
	child Node
}

// NewInverse wraps child in an Inverse node.
func NewInverse(child Node) *Inverse { return &Inverse{child: child} }

// Child returns the wrapped node.
func (i *Inverse) Child() Node { return i.child }

func (*Inverse) isNode() {}

// Sequence matches Left then Right.
type Sequence struct {
	left, right Node
}

// NewSequence returns a Sequence node matching left then right.
func NewSequence(left, right Node) *Sequence { return &Sequence{left: left, right: right} }

// Left returns the first operand.
func (s *Sequence) Left() Node { return s.left }

// Right returns the second operand.
func (s *Sequence) Right() Node { return s.right }

func (*Sequence) isNode() {}

// Alternative matches Left or Right.
type Alternative struct {
	left, right Node
}

// NewAlternative returns an Alternative node matching left or right.
func NewAlternative(left, right Node) *Alternative { return &Alternative{left: left, right: right} }

// Left returns the first alternative.
func (a *Alternative) Left() Node { return a.left }

// Right returns the second alternative.
func (a *Alternative) Right() Node { return a.right }

func (*Alternative) isNode() {}

// ZeroOrMore matches Child zero or more times (Kleene star).
type ZeroOrMore struct {
	child Node
}

// NewZeroOrMore wraps child in a ZeroOrMore node.
func NewZeroOrMore(child Node) *ZeroOrMore { return &ZeroOrMore{child: child} }

// Child returns the wrapped node.
func (z *ZeroOrMore) Child() Node { return z.child }

func (*ZeroOrMore) isNode() {}

// OneOrMore matches Child at least once.
type OneOrMore struct {
	child Node
}

// NewOneOrMore wraps child in a OneOrMore node.
func NewOneOrMore(child Node) *OneOrMore { return &OneOrMore{child: child} }

// Child returns the wrapped node.
func (o *OneOrMore) Child() Node { return o.child }

func (*OneOrMore) isNode() {}

// ZeroOrOne matches Child zero or one times.
type ZeroOrOne struct {
	child Node
}

// NewZeroOrOne wraps child in a ZeroOrOne node.
func NewZeroOrOne(child Node) *ZeroOrOne { return &ZeroOrOne{child: child} }

// Child returns the wrapped node.
func (z *ZeroOrOne) Child() Node { return z.child }

func (*ZeroOrOne) isNode() {}

// Group is a purely parenthetical wrapper; semantically identity.
type Group struct {
	child Node
}

// NewGroup wraps child in a Group node.
func NewGroup(child Node) *Group { return &Group{child: child} }

// Child returns the wrapped node.
func (g *Group) Child() Node { return g.child }

func (*Group) isNode() {}
