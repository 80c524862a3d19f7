package rdfgraph

import (
	"context"
	"sync"
)

// TripleStore is a thread-safe in-memory Adapter over an explicit triple
// set. Forward and reverse indices are maintained eagerly on AddTriple,
// so ForwardNeighbors and ReverseNeighbors are O(1)-amortized lookups
// rather than linear scans -- the same eager-index philosophy core.Graph
// applies to its adjacency lists. Unlike core.Graph's split
// muVert/muEdgeAdj locking, TripleStore has only one mutable catalog (its
// triples), so a single sync.RWMutex covers both indices.
type TripleStore struct {
	mu      sync.RWMutex
	forward map[string]map[string][]Node
	reverse map[string]map[string][]Node
}

// NewTripleStore returns an empty store.
func NewTripleStore() *TripleStore {
	return &TripleStore{
		forward: make(map[string]map[string][]Node),
		reverse: make(map[string]map[string][]Node),
	}
}

// AddTriple inserts (subject, predicate, object) into the store, updating
// both indices. Duplicate triples are stored once.
func (s *TripleStore) AddTriple(subject, predicate string, object Node) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byPred, ok := s.forward[subject]
	if !ok {
		byPred = make(map[string][]Node)
		s.forward[subject] = byPred
	}
	if !containsNode(byPred[predicate], object) {
		byPred[predicate] = append(byPred[predicate], object)
	}

	objKey := object.Key()
	byPredRev, ok := s.reverse[objKey]
	if !ok {
		byPredRev = make(map[string][]Node)
		s.reverse[objKey] = byPredRev
	}
	subjNode := NewIRI(subject)
	if !containsNode(byPredRev[predicate], subjNode) {
		byPredRev[predicate] = append(byPredRev[predicate], subjNode)
	}
}

func containsNode(nodes []Node, n Node) bool {
	for _, existing := range nodes {
		if existing.Key() == n.Key() {
			return true
		}
	}
	return false
}

// ForwardNeighbors implements Adapter.
func (s *TripleStore) ForwardNeighbors(ctx context.Context, n Node, predicate string) ([]Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n.IsLiteral() {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	byPred, ok := s.forward[n.String()]
	if !ok {
		return nil, nil
	}
	return append([]Node(nil), byPred[predicate]...), nil
}

// ReverseNeighbors implements Adapter.
func (s *TripleStore) ReverseNeighbors(ctx context.Context, n Node, predicate string) ([]Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	byPred, ok := s.reverse[n.Key()]
	if !ok {
		return nil, nil
	}
	return append([]Node(nil), byPred[predicate]...), nil
}

// NodeForIRI implements Adapter.
func (s *TripleStore) NodeForIRI(iri string) Node {
	return NewIRI(iri)
}
