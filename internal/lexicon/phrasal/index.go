// Package phrasal indexes separable phrasal verbs by their verb head,
// e.g. "bieden" → "aanbieden" → {r_v-1001}.
package phrasal

import (
	"slices"

	"github.com/samber/lo"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
)

// Index maps verb head → phrasal lemma → set of sense ids.
type Index map[string]map[string]map[string]struct{}

// Stats are reporting-only counts.
type Stats struct {
	PhrasalEntries int
	VerbHeads      int
}

// BuildIndex indexes every phrasal entry whose morphological parts are
// exactly (particle, verb).
func BuildIndex(entries map[string]*domain.LexicalEntry) Index {
	idx := make(Index)
	for id, e := range entries {
		if e.LUType != domain.LUTypePhrasal || len(e.MorphologicalParts) != 2 {
			continue
		}
		verb := e.MorphologicalParts[1]
		lemmas, ok := idx[verb]
		if !ok {
			lemmas = make(map[string]map[string]struct{})
			idx[verb] = lemmas
		}
		if lemmas[e.Lemma] == nil {
			lemmas[e.Lemma] = make(map[string]struct{})
		}
		lemmas[e.Lemma][id] = struct{}{}
	}
	return idx
}

func (idx Index) Stats() Stats {
	s := Stats{VerbHeads: len(idx)}
	for _, lemmas := range idx {
		for _, ids := range lemmas {
			s.PhrasalEntries += len(ids)
		}
	}
	return s
}

// Verbs returns the verb heads in sorted order.
func (idx Index) Verbs() []string {
	verbs := lo.Keys(idx)
	slices.Sort(verbs)
	return verbs
}

// Lookup returns the phrasal lemmas headed by verb, each with its sorted
// sense ids. The result is nil for an unknown verb.
func (idx Index) Lookup(verb string) map[string][]string {
	lemmas, ok := idx[verb]
	if !ok {
		return nil
	}
	out := make(map[string][]string, len(lemmas))
	for lemma, ids := range lemmas {
		sorted := lo.Keys(ids)
		slices.Sort(sorted)
		out[lemma] = sorted
	}
	return out
}
