package publisher

import (
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
)

// rowNamespace seeds the name-based row ids, so republishing a lexicon
// produces the same primary keys.
var rowNamespace = uuid.MustParse("5b0c6f2e-4f0e-4d38-9a57-8f1b8f0d2c31")

func rowID(kind, key string) uuid.UUID {
	return uuid.NewSHA1(rowNamespace, []byte(kind+":"+key))
}

// Rows is the catalog form of a Lexicon.
type Rows struct {
	Synsets  []domain.CatalogSynset
	Senses   []domain.CatalogSense
	Examples []domain.CatalogExample
}

// BuildRows flattens lex into catalog rows, each slice ordered by its key.
func BuildRows(lex *domain.Lexicon) Rows {
	var rows Rows

	for _, id := range lex.SynsetIDs() {
		s := lex.Synsets[id]
		rows.Synsets = append(rows.Synsets, domain.CatalogSynset{
			ID:                rowID("synset", s.SynsetID),
			SynsetID:          s.SynsetID,
			InterlingualIndex: s.InterlingualIndex,
			Definition:        s.Definition,
		})
	}

	for _, id := range lex.SenseIDs() {
		e := lex.Entries[id]
		rows.Senses = append(rows.Senses, senseRow(e))

		exampleIDs := make([]string, 0, len(e.CanonicalForms))
		for exID := range e.CanonicalForms {
			exampleIDs = append(exampleIDs, exID)
		}
		slices.Sort(exampleIDs)
		for _, exID := range exampleIDs {
			rows.Examples = append(rows.Examples, domain.CatalogExample{
				ID:        rowID("example", e.SenseID+"/"+exID),
				SenseID:   e.SenseID,
				ExampleID: exID,
				Text:      e.CanonicalForms[exID],
			})
		}
	}

	return rows
}

func senseRow(e *domain.LexicalEntry) domain.CatalogSense {
	row := domain.CatalogSense{
		ID:              rowID("sense", e.SenseID),
		SenseID:         e.SenseID,
		Lemma:           e.Lemma,
		LemmaNormalized: domain.NormalizeText(e.Lemma),
		PartOfSpeech:    e.PartOfSpeech,
		IsMultiword:     e.IsMultiword,
		Definition:      e.Definition,
		SenseRank:       e.SenseRank,
		LUType:          e.LUType,
		MorphoType:      e.MorphoType,
		Article:         e.Article,
		Provenance:      e.ProvenanceSet,
	}
	if e.Verb != nil {
		semType := string(e.Verb.SemanticType)
		featureSet := e.Verb.FeatureSet
		separable := e.Verb.Separable
		row.SemanticType = &semType
		row.FeatureSet = &featureSet
		row.Separable = &separable
	}
	if e.IsLinked() {
		synsetID := e.SynsetID
		row.SynsetID = &synsetID
	}
	return row
}
