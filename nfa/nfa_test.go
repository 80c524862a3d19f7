package nfa_test

import (
	"errors"
	"testing"

	"github.com/carolinnerebelo/SPARQL-Paths/nfa"
)

func TestLabelInvertIsSelfInverse(t *testing.T) {
	p := nfa.NewLabel("http://ex.org/knows")
	inv := p.Invert()
	if !inv.Reverse() {
		t.Fatalf("Invert(p).Reverse() = false; want true")
	}
	if inv.Predicate() != p.Predicate() {
		t.Fatalf("Invert(p).Predicate() = %q; want %q", inv.Predicate(), p.Predicate())
	}
	back := inv.Invert()
	if back != p {
		t.Fatalf("Invert(Invert(p)) = %+v; want %+v", back, p)
	}
}

func TestEpsilonNeverInverts(t *testing.T) {
	if got := nfa.Epsilon.Invert(); got != nfa.Epsilon {
		t.Fatalf("Invert(Epsilon) = %+v; want Epsilon", got)
	}
	if !nfa.Epsilon.IsEpsilon() {
		t.Fatalf("Epsilon.IsEpsilon() = false; want true")
	}
}

func TestBuilderNewStateIsMonotonicAndUnique(t *testing.T) {
	b := nfa.NewBuilder()
	seen := make(map[int]bool)
	for i := 0; i < 10; i++ {
		s := b.NewState()
		if seen[s] {
			t.Fatalf("state id %d reused", s)
		}
		seen[s] = true
	}
	if b.StateCount() != 10 {
		t.Fatalf("StateCount() = %d; want 10", b.StateCount())
	}
}

func TestAddTransitionPreservesInsertionOrder(t *testing.T) {
	b := nfa.NewBuilder()
	s0, s1, s2 := b.NewState(), b.NewState(), b.NewState()
	n := nfa.New(s0, s2)
	n.AddTransition(s0, nfa.NewLabel("a"), s1)
	n.AddTransition(s0, nfa.NewLabel("b"), s2)

	ts := n.Transitions(s0)
	if len(ts) != 2 {
		t.Fatalf("Transitions(s0) len = %d; want 2", len(ts))
	}
	if ts[0].Label.Predicate() != "a" || ts[1].Label.Predicate() != "b" {
		t.Fatalf("Transitions(s0) out of insertion order: %+v", ts)
	}
}

func TestTransitionsOfUntouchedStateIsEmpty(t *testing.T) {
	b := nfa.NewBuilder()
	s0 := b.NewState()
	n := nfa.New(s0, s0)
	if got := n.Transitions(999); len(got) != 0 {
		t.Fatalf("Transitions(999) = %v; want empty", got)
	}
}

func TestInvertFlipsOnlyNonEpsilonLabels(t *testing.T) {
	b := nfa.NewBuilder()
	s0, s1, s2 := b.NewState(), b.NewState(), b.NewState()
	n := nfa.New(s0, s2)
	n.AddTransition(s0, nfa.NewLabel("knows"), s1)
	n.AddTransition(s1, nfa.Epsilon, s2)

	inv := n.Invert()
	if inv.Initial() != n.Initial() {
		t.Fatalf("Invert changed initial state: got %d want %d", inv.Initial(), n.Initial())
	}
	if !inv.IsFinal(s2) {
		t.Fatalf("Invert lost final state %d", s2)
	}

	got := inv.Transitions(s0)
	if len(got) != 1 || !got[0].Label.Reverse() || got[0].Label.Predicate() != "knows" {
		t.Fatalf("Transitions(s0) after invert = %+v; want single reverse-marked 'knows' transition", got)
	}

	epsAfter := inv.Transitions(s1)
	if len(epsAfter) != 1 || !epsAfter[0].Label.IsEpsilon() {
		t.Fatalf("epsilon transition was altered by Invert: %+v", epsAfter)
	}
}

func TestDoubleInvertRestoresOriginalLabels(t *testing.T) {
	b := nfa.NewBuilder()
	s0, s1 := b.NewState(), b.NewState()
	n := nfa.New(s0, s1)
	n.AddTransition(s0, nfa.NewLabel("knows"), s1)

	twice := n.Invert().Invert()
	got := twice.Transitions(s0)
	if len(got) != 1 || got[0].Label != nfa.NewLabel("knows") {
		t.Fatalf("double invert = %+v; want original forward label", got)
	}
}

func TestAbsorbTransitionsMergesDisjointFragments(t *testing.T) {
	b := nfa.NewBuilder()
	a0, a1 := b.NewState(), b.NewState()
	c0, c1 := b.NewState(), b.NewState()

	left := nfa.New(a0, a1)
	left.AddTransition(a0, nfa.NewLabel("a"), a1)

	right := nfa.New(c0, c1)
	right.AddTransition(c0, nfa.NewLabel("c"), c1)

	merged := nfa.New(a0, c1)
	merged.AbsorbTransitions(left)
	merged.AbsorbTransitions(right)
	merged.AddTransition(a1, nfa.Epsilon, c0)

	if len(merged.Transitions(a0)) != 1 || len(merged.Transitions(c0)) != 1 {
		t.Fatalf("merge lost transitions: a0=%v c0=%v", merged.Transitions(a0), merged.Transitions(c0))
	}
	if len(merged.Transitions(a1)) != 1 || !merged.Transitions(a1)[0].Label.IsEpsilon() {
		t.Fatalf("bridging epsilon missing: %v", merged.Transitions(a1))
	}
}

func TestValidateRejectsOutOfRangeState(t *testing.T) {
	b := nfa.NewBuilder()
	s0 := b.NewState()
	n := nfa.New(s0, s0)
	n.AddTransition(s0, nfa.NewLabel("a"), 999)

	if err := n.Validate(b); !errors.Is(err, nfa.ErrUnknownState) {
		t.Fatalf("Validate() = %v; want ErrUnknownState", err)
	}
}

func TestValidateRejectsEmptyFinalSet(t *testing.T) {
	b := nfa.NewBuilder()
	s0 := b.NewState()
	n := nfa.New(s0)

	if err := n.Validate(b); !errors.Is(err, nfa.ErrNoFinalStates) {
		t.Fatalf("Validate() = %v; want ErrNoFinalStates", err)
	}
}

func TestValidateAcceptsWellFormedNFA(t *testing.T) {
	b := nfa.NewBuilder()
	s0, s1 := b.NewState(), b.NewState()
	n := nfa.New(s0, s1)
	n.AddTransition(s0, nfa.NewLabel("a"), s1)

	if err := n.Validate(b); err != nil {
		t.Fatalf("Validate() = %v; want nil", err)
	}
}
