package pathfinder

import (
	"context"
	"fmt"

	"github.com/carolinnerebelo/SPARQL-Paths/compiler"
	"github.com/carolinnerebelo/SPARQL-Paths/explorer"
	"github.com/carolinnerebelo/SPARQL-Paths/pathparser"
	"github.com/carolinnerebelo/SPARQL-Paths/rdfgraph"
)

// PathWitness is explorer's accepted-walk type, re-exported here so
// callers of FindPaths never need to import explorer directly.
type PathWitness = explorer.PathWitness

// Config governs one FindPaths call. It is an alias for explorer.Config;
// the facade adds no options of its own.
type Config = explorer.Config

// FindPaths parses expression against prefixes, compiles it to an
// automaton, and explores graph starting at startIRI, returning every
// witness that survives the dedup-and-shorten filter.
//
// A malformed expression, an unknown prefix, or a malformed IRI is
// reported before graph is ever consulted. An unknown start IRI is not an
// error: it simply has no neighbors, and the call returns an empty
// result.
func FindPaths(ctx context.Context, startIRI, expression string, prefixes map[string]string, graph rdfgraph.Adapter, cfg Config) ([]PathWitness, error) {
	node, err := pathparser.Parse(expression, prefixes)
	if err != nil {
		return nil, fmt.Errorf("pathfinder: %w", err)
	}

	automaton, err := compiler.New().Compile(node)
	if err != nil {
		return nil, fmt.Errorf("pathfinder: %w", err)
	}

	start := graph.NodeForIRI(startIRI)
	witnesses, err := explorer.Explore(ctx, start, automaton, graph, cfg)
	if err != nil {
		return nil, fmt.Errorf("pathfinder: %w", err)
	}

	return explorer.FilterShortest(witnesses), nil
}
