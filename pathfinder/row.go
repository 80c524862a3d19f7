package pathfinder

import "github.com/carolinnerebelo/SPARQL-Paths/rdfgraph"

// Row is one step of one path witness, in the shape a row-oriented query
// engine consumes: one row per (pathId, stepIndex) pair. Predicate is the
// empty string for stepIndex 0 -- the origin has no incoming edge. Node
// is the full rdfgraph.Node, not its lexical text alone, so a consumer
// can tell an IRI term from a literal term via Node.IsIRI()/IsLiteral()
// -- the two can share identical lexical text (see rdfgraph.Node.Key()),
// and only the tagged Node carries that distinction.
type Row struct {
	PathID    int
	StepIndex int
	Predicate string
	Node      rdfgraph.Node
}

// Rows projects witnesses into row form. PathID is assigned in emission
// order starting at 0; within a witness, StepIndex runs from 0 to
// len(Nodes)-1.
func Rows(witnesses []PathWitness) []Row {
	var rows []Row
	for pathID, w := range witnesses {
		for i, n := range w.Nodes {
			predicate := ""
			if i > 0 {
				predicate = w.Predicates[i-1]
			}
			rows = append(rows, Row{
				PathID:    pathID,
				StepIndex: i,
				Predicate: predicate,
				Node:      n,
			})
		}
	}
	return rows
}
