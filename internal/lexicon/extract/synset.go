package extract

import (
	"github.com/heartmarshall/rbn-lexicon/internal/domain"
	"github.com/heartmarshall/rbn-lexicon/internal/lexicon/xmlnode"
)

// SynsetPath selects the synset elements of an ODWN document.
const SynsetPath = "//Synset"

// ExtractSynset converts one ODWN Synset element. Synonyms stay empty until
// reconciliation.
func ExtractSynset(n xmlnode.Node) (*domain.Synset, error) {
	id, _ := n.Attr("id")
	if id == "" {
		return nil, domain.NewSchemaError("", "Synset/@id", "", "attribute is required")
	}
	s := &domain.Synset{SynsetID: id}
	s.InterlingualIndex, _ = n.Attr("ili")
	s.Definition, _ = childAttr(n, "Definitions/Definition", "gloss")
	return s, nil
}

// Synsets extracts every synset of doc into a new map keyed by synset id.
func Synsets(doc *xmlnode.Document) (map[string]*domain.Synset, error) {
	nodes, err := doc.Select(SynsetPath)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*domain.Synset, len(nodes))
	for _, n := range nodes {
		s, err := ExtractSynset(n)
		if err != nil {
			return nil, err
		}
		if _, dup := out[s.SynsetID]; dup {
			return nil, domain.NewSchemaError("", "Synset/@id", s.SynsetID, "duplicate synset id")
		}
		out[s.SynsetID] = s
	}
	return out, nil
}
