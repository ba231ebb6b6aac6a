// Package consistency detects lemma/POS groups whose sense ranks collide.
package consistency

import (
	"github.com/samber/lo"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
)

type groupKey struct {
	lemma string
	pos   domain.PartOfSpeech
}

// InconsistentSenseRanks returns the sense ids of every entry whose
// (lemma, pos) group contains a repeated rank. A flagged group is flagged
// as a whole.
func InconsistentSenseRanks(entries map[string]*domain.LexicalEntry) map[string]struct{} {
	groups := lo.GroupBy(lo.Values(entries), func(e *domain.LexicalEntry) groupKey {
		return groupKey{lemma: e.Lemma, pos: e.PartOfSpeech}
	})

	flagged := make(map[string]struct{})
	for _, group := range groups {
		ranks := lo.Map(group, func(e *domain.LexicalEntry, _ int) int { return e.SenseRank })
		if len(lo.Uniq(ranks)) == len(ranks) {
			continue
		}
		for _, e := range group {
			flagged[e.SenseID] = struct{}{}
		}
	}
	return flagged
}

// Filter removes every flagged entry from lex and returns the removed ids.
func Filter(lex *domain.Lexicon) map[string]struct{} {
	flagged := InconsistentSenseRanks(lex.Entries)
	lex.RemoveEntries(flagged)
	return flagged
}
