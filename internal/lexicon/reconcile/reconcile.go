// Package reconcile links ORBN senses to ODWN synsets using the sense →
// synset references of a third, otherwise unconverted, LMF resource.
package reconcile

import (
	"log/slog"
	"strings"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
	"github.com/heartmarshall/rbn-lexicon/internal/lexicon/xmlnode"
)

// ReferencePath selects the sense elements of the linking source.
const ReferencePath = "//Lexicon/LexicalEntry/Sense"

// Reference is one sense → synset link read from the linking source.
type Reference struct {
	SenseID         string
	SynsetID        string
	ProvenanceLabel string
}

// Stats holds reconciliation counters for logging.
type Stats struct {
	References    int
	Linked        int
	Sentinel      int
	MissingSynset int
	UnknownSense  int
}

// References reads every sense that names a synset, in document order.
// Senses without a synset attribute carry no reference and are skipped.
func References(doc *xmlnode.Document) ([]Reference, error) {
	nodes, err := doc.Select(ReferencePath)
	if err != nil {
		return nil, err
	}

	refs := make([]Reference, 0, len(nodes))
	for _, n := range nodes {
		synsetID, _ := n.Attr("synset")
		if synsetID == "" {
			continue
		}
		senseID, _ := n.Attr("senseId")
		if senseID == "" {
			senseID, _ = n.Attr("id")
		}
		if senseID == "" {
			return nil, domain.NewSchemaError("", "Sense/@senseId", "", "synset reference without a sense id")
		}
		provenance, _ := n.Attr("provenance")
		refs = append(refs, Reference{
			SenseID:         senseID,
			SynsetID:        synsetID,
			ProvenanceLabel: provenance,
		})
	}
	return refs, nil
}

// ParseProvenance splits a label such as "manual+auto" or "auto:pwn" into
// its tags. Empty fragments are dropped.
func ParseProvenance(label string) []string {
	fields := strings.FieldsFunc(label, func(r rune) bool { return r == ':' || r == '+' })
	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Reconcile applies refs to lex in order. It must run after rank filtering.
// A missing provenance aborts the run; every other mismatch is counted.
// Running it again with the same refs leaves lex unchanged.
func Reconcile(lex *domain.Lexicon, refs []Reference, logger *slog.Logger) (Stats, error) {
	var stats Stats

	for _, ref := range refs {
		stats.References++

		if ref.SynsetID == domain.UnassignedSynsetID {
			stats.Sentinel++
			continue
		}

		synset, ok := lex.Synsets[ref.SynsetID]
		if !ok {
			logger.Warn("synset reference to missing synset",
				slog.String("sense_id", ref.SenseID),
				slog.String("synset_id", ref.SynsetID),
			)
			stats.MissingSynset++
			continue
		}

		if ref.ProvenanceLabel == "" {
			return stats, domain.NewSchemaError(ref.SenseID, "provenance", "", "synset reference without provenance")
		}
		provenance := ParseProvenance(ref.ProvenanceLabel)
		if len(provenance) == 0 {
			return stats, domain.NewSchemaError(ref.SenseID, "provenance", ref.ProvenanceLabel, "provenance label has no tags")
		}

		entry, ok := lex.Entries[ref.SenseID]
		if !ok {
			stats.UnknownSense++
			continue
		}

		entry.SynsetID = synset.SynsetID
		entry.ProvenanceLabel = ref.ProvenanceLabel
		entry.ProvenanceSet = provenance
		synset.AddSynonym(entry)
		stats.Linked++
	}

	return stats, nil
}
