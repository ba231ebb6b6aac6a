package domain

import "github.com/google/uuid"

// CatalogSynset is a synset row of the published catalog.
type CatalogSynset struct {
	ID                uuid.UUID
	SynsetID          string
	InterlingualIndex string
	Definition        string
}

// CatalogSense is a sense row of the published catalog.
type CatalogSense struct {
	ID           uuid.UUID
	SenseID      string
	Lemma        string
	PartOfSpeech PartOfSpeech
	IsMultiword  bool
	Definition   string
	SenseRank    int

	// LemmaNormalized is NormalizeText(Lemma), the lookup key.
	LemmaNormalized string

	// Verb-only columns; nil for other parts of speech.
	SemanticType *string
	FeatureSet   *string
	Separable    *bool

	LUType     LUType
	MorphoType string
	Article    string
	SynsetID   *string
	Provenance []string
}

// CatalogExample is a canonical-form example of a published sense.
type CatalogExample struct {
	ID        uuid.UUID
	SenseID   string
	ExampleID string
	Text      string
}
