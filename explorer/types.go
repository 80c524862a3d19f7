package explorer

import "github.com/carolinnerebelo/SPARQL-Paths/rdfgraph"

// DefaultMaxPathLength is the safety ceiling applied when Config.MaxPathLength
// is zero. The data model leaves "no cap" as a documented implementation
// choice rather than true unboundedness (an NFA with ε-cycles could
// otherwise keep tying the visited-map's <= rule forever on pathological
// graphs); 64 hops comfortably exceeds any realistic property path while
// still bounding worst-case memory.
const DefaultMaxPathLength = 64

// Config governs one Explore call.
type Config struct {
	// MaxPathLength caps the predicate count of any returned witness. Zero
	// means DefaultMaxPathLength, not literal absence of a cap.
	MaxPathLength int

	// IncludeLiteralEndpoints controls whether a witness ending at a
	// literal node is retained. Defaults to false: literals close a path
	// branch but are not surfaced as a result by default.
	IncludeLiteralEndpoints bool
}

// resolvedMaxPathLength returns the effective cap, substituting
// DefaultMaxPathLength for the zero value.
func (c Config) resolvedMaxPathLength() int {
	if c.MaxPathLength <= 0 {
		return DefaultMaxPathLength
	}
	return c.MaxPathLength
}

// PathWitness is a concrete walk accepted by the automaton: a sequence of
// nodes joined by the predicates traversed between them. The invariant
// len(Nodes) == len(Predicates)+1 always holds; an empty Predicates slice
// denotes a single-node path accepted via a pure epsilon walk from the
// start state.
type PathWitness struct {
	Nodes      []rdfgraph.Node
	Predicates []string
}

// Destination returns the witness's final node.
func (w PathWitness) Destination() rdfgraph.Node {
	return w.Nodes[len(w.Nodes)-1]
}

// Len returns the witness's predicate count.
func (w PathWitness) Len() int {
	return len(w.Predicates)
}

// extend returns a new witness with (predicate, next) appended. The
// receiver's slices are never mutated in place -- each extension
// allocates a fresh backing array, per the value-copy-on-extension
// contract for path prefixes.
func (w PathWitness) extend(predicate string, next rdfgraph.Node) PathWitness {
	nodes := make([]rdfgraph.Node, len(w.Nodes)+1)
	copy(nodes, w.Nodes)
	nodes[len(w.Nodes)] = next

	preds := make([]string, len(w.Predicates)+1)
	copy(preds, w.Predicates)
	preds[len(w.Predicates)] = predicate

	return PathWitness{Nodes: nodes, Predicates: preds}
}

// searchState is one BFS unit: a graph node paired with an NFA state and
// the path prefix that reached it.
type searchState struct {
	node  rdfgraph.Node
	state int
	path  PathWitness
}

// visitKey identifies a (graph node, NFA state) pair for the visited map.
// Two search states with the same visitKey are the same frontier entry
// per the data model, even though their path prefixes may differ.
type visitKey struct {
	nodeKey string
	state   int
}
