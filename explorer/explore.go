package explorer

import (
	"context"
	"fmt"

	"github.com/carolinnerebelo/SPARQL-Paths/nfa"
	"github.com/carolinnerebelo/SPARQL-Paths/rdfgraph"
)

// Explore runs a breadth-first search over the product of graph and
// automaton, starting at start, and returns every accepted path witness
// -- one per distinct walk that ends in an automaton final state, subject
// to the visited-map pruning rule below. The returned slice is
// unfiltered: callers wanting the dedup-and-shorten policy should pass
// the result through FilterShortest.
//
// Steps:
//  1. Build the initial search state (start, automaton.Initial(), [start])
//     and take its epsilon-closure into the frontier, recording each
//     resulting (node, state) pair in the visited map at depth 0.
//  2. While the frontier is non-empty:
//     2.1 Check ctx for cancellation before dequeuing.
//     2.2 Dequeue a search state. If its automaton state is final,
//     append its path to the accepted set (a path ending at a literal
//     only when cfg.IncludeLiteralEndpoints is set).
//     2.3 For each outgoing transition of the automaton state:
//     - epsilon: skipped; its target was already enqueued by the
//     epsilon-closure taken when this search state was enqueued.
//     - labeled, node is a literal: drop the branch.
//     - labeled, node is an IRI: query forward or reverse neighbors
//     per the label's direction, extend the path for each
//     neighbor, and epsilon-close (neighbor, target) into the
//     frontier.
//
// Visited-map rule: a (node, state) pair is enqueued only if absent from
// the visited map, or if the new depth is <= the stored depth. The <= (not
// <) is deliberate: it admits ties, so two distinct walks of equal
// minimum length into the same (node, state) both survive to become
// separate witnesses, while a strictly longer re-entry is pruned.
//
// Time complexity: O(|graph nodes| x |automaton states|) product states,
// each expanded once per incoming tie.
func Explore(ctx context.Context, start rdfgraph.Node, automaton *nfa.NFA, graph rdfgraph.Adapter, cfg Config) ([]PathWitness, error) {
	maxLen := cfg.resolvedMaxPathLength()
	visited := make(map[visitKey]int)
	var queue []searchState
	var accepted []PathWitness

	enqueue := func(s searchState) {
		key := visitKey{nodeKey: s.node.Key(), state: s.state}
		depth := s.path.Len()
		if prior, ok := visited[key]; ok && depth > prior {
			return
		}
		visited[key] = depth
		queue = append(queue, s)
	}

	closeEpsilon := func(seed searchState) []searchState {
		var out []searchState
		inner := []searchState{seed}
		seen := map[int]bool{seed.state: true}
		for len(inner) > 0 {
			cur := inner[0]
			inner = inner[1:]
			out = append(out, cur)
			for _, t := range automaton.Transitions(cur.state) {
				if !t.Label.IsEpsilon() {
					continue
				}
				if seen[t.To] {
					continue
				}
				seen[t.To] = true
				inner = append(inner, searchState{node: cur.node, state: t.To, path: cur.path})
			}
		}
		return out
	}

	initial := searchState{node: start, state: automaton.Initial(), path: PathWitness{Nodes: []rdfgraph.Node{start}}}
	for _, s := range closeEpsilon(initial) {
		enqueue(s)
	}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("explorer: context canceled during traversal: %w", err)
		}

		cur := queue[0]
		queue = queue[1:]

		if automaton.IsFinal(cur.state) {
			if cur.node.IsIRI() || cfg.IncludeLiteralEndpoints {
				accepted = append(accepted, cur.path)
			}
		}

		if cur.path.Len() >= maxLen {
			continue
		}

		for _, t := range automaton.Transitions(cur.state) {
			if t.Label.IsEpsilon() {
				continue
			}
			if !cur.node.IsIRI() {
				continue
			}

			var neighbors []rdfgraph.Node
			var err error
			if t.Label.Reverse() {
				neighbors, err = graph.ReverseNeighbors(ctx, cur.node, t.Label.Predicate())
			} else {
				neighbors, err = graph.ForwardNeighbors(ctx, cur.node, t.Label.Predicate())
			}
			if err != nil {
				return nil, fmt.Errorf("explorer: graph access failed for predicate %q at %q: %w", t.Label.Predicate(), cur.node, err)
			}

			for _, next := range neighbors {
				extended := cur.path.extend(t.Label.Predicate(), next)
				seed := searchState{node: next, state: t.To, path: extended}
				for _, s := range closeEpsilon(seed) {
					enqueue(s)
				}
			}
		}
	}

	return accepted, nil
}
