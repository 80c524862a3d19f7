package explorer

import "github.com/carolinnerebelo/SPARQL-Paths/rdfgraph"

// FilterShortest applies the dedup-and-shorten policy to a raw accepted
// set: group by destination node, keep only the minimum predicate-count
// witnesses within each group, then drop exact duplicates (same node and
// predicate sequence) from what remains. The returned order is
// unspecified; callers needing a stable order must sort.
func FilterShortest(witnesses []PathWitness) []PathWitness {
	groups := make(map[string][]PathWitness)
	var order []string
	for _, w := range witnesses {
		key := w.Destination().Key()
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], w)
	}

	var result []PathWitness
	for _, key := range order {
		result = append(result, shortestUnique(groups[key])...)
	}
	return result
}

func shortestUnique(group []PathWitness) []PathWitness {
	minLen := group[0].Len()
	for _, w := range group[1:] {
		if w.Len() < minLen {
			minLen = w.Len()
		}
	}

	seen := make(map[string]bool)
	var out []PathWitness
	for _, w := range group {
		if w.Len() != minLen {
			continue
		}
		sig := witnessSignature(w)
		if seen[sig] {
			continue
		}
		seen[sig] = true
		out = append(out, w)
	}
	return out
}

func witnessSignature(w PathWitness) string {
	sig := ""
	for i, n := range w.Nodes {
		if i > 0 {
			sig += "|" + w.Predicates[i-1] + "|"
		}
		sig += nodeSignature(n)
	}
	return sig
}

func nodeSignature(n rdfgraph.Node) string {
	return n.Key()
}
