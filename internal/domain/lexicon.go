package domain

import (
	"fmt"
	"slices"
	"strings"
)

// UnassignedSynsetID marks a sense that was deliberately left without a synset.
const UnassignedSynsetID = "unknown_000"

// VerbFeatures holds the fields that only exist for verb senses.
type VerbFeatures struct {
	SemanticType SemanticType // may be empty
	FeatureSet   string       // caseframe label, may be empty
	Separable    bool
}

// LexicalEntry is one sense of one lemma.
type LexicalEntry struct {
	SenseID        string
	Lemma          string
	PartOfSpeech   PartOfSpeech
	IsMultiword    bool
	Definition     string
	CanonicalForms map[string]string // example id → example text

	// Verb is non-nil iff PartOfSpeech is PartOfSpeechVerb.
	Verb *VerbFeatures

	// SenseRank is only used to check ranking consistency.
	SenseRank int

	MorphoType         string
	MorphoStructure    string
	MorphologicalParts []string
	LUType             LUType
	Article            string

	// DeclaredSynsetID is the synset named by the source record itself (LMF only).
	DeclaredSynsetID string

	// Set by reconciliation.
	SynsetID        string
	ProvenanceLabel string
	ProvenanceSet   []string
}

// Prefix returns the resource prefix encoded in the first character of the
// sense id (r, c, o or t).
func (e *LexicalEntry) Prefix() string {
	if e.SenseID == "" {
		return ""
	}
	return e.SenseID[:1]
}

// SenseLabel returns "lemma-pos-rank", e.g. "bank-n-1".
func (e *LexicalEntry) SenseLabel() string {
	return fmt.Sprintf("%s-%s-%d", e.Lemma, e.PartOfSpeech.Simple(), e.SenseRank)
}

// SemanticType returns the verb semantic type, or "" for non-verbs.
func (e *LexicalEntry) SemanticType() SemanticType {
	if e.Verb == nil {
		return ""
	}
	return e.Verb.SemanticType
}

// FeatureSet returns the verb caseframe label, or "" for non-verbs.
func (e *LexicalEntry) FeatureSet() string {
	if e.Verb == nil {
		return ""
	}
	return e.Verb.FeatureSet
}

// IsLinked reports whether reconciliation assigned a synset.
func (e *LexicalEntry) IsLinked() bool { return e.SynsetID != "" }

// Validate checks the invariants every retained entry must satisfy.
func (e *LexicalEntry) Validate() error {
	var errs []FieldError

	if e.SenseID == "" {
		errs = append(errs, FieldError{Field: "sense_id", Message: "required"})
	}
	if e.Lemma == "" {
		errs = append(errs, FieldError{Field: "lemma", Message: "required"})
	}
	if !e.PartOfSpeech.IsValid() {
		errs = append(errs, FieldError{Field: "part_of_speech", Message: fmt.Sprintf("invalid value %q", e.PartOfSpeech)})
	}
	if (e.PartOfSpeech == PartOfSpeechVerb) != (e.Verb != nil) {
		errs = append(errs, FieldError{Field: "verb", Message: "verb features must be set exactly for verbs"})
	}
	if e.LUType != "" && !e.LUType.IsValid() {
		errs = append(errs, FieldError{Field: "lu_type", Message: fmt.Sprintf("invalid value %q", e.LUType)})
	}
	if len(e.MorphologicalParts) > 0 && strings.Join(e.MorphologicalParts, "") != e.Lemma {
		errs = append(errs, FieldError{Field: "morphological_parts", Message: "parts do not join into the lemma"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Synset groups the senses that share a meaning.
type Synset struct {
	SynsetID          string
	InterlingualIndex string
	Definition        string

	// Synonyms are back-references into the owning Lexicon's entries,
	// in the order they were linked.
	Synonyms []*LexicalEntry
}

// AddSynonym appends e unless an entry with the same sense id is already
// linked. It reports whether e was appended.
func (s *Synset) AddSynonym(e *LexicalEntry) bool {
	for _, existing := range s.Synonyms {
		if existing.SenseID == e.SenseID {
			return false
		}
	}
	s.Synonyms = append(s.Synonyms, e)
	return true
}

// SynonymIDs returns the sense ids of the linked synonyms in link order.
func (s *Synset) SynonymIDs() []string {
	ids := make([]string, len(s.Synonyms))
	for i, e := range s.Synonyms {
		ids[i] = e.SenseID
	}
	return ids
}

// Lexicon is the working collection handed from one phase to the next.
// Entries owns every LexicalEntry; Synsets only refers to them.
type Lexicon struct {
	Entries map[string]*LexicalEntry
	Synsets map[string]*Synset
}

// NewLexicon creates an empty Lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{
		Entries: make(map[string]*LexicalEntry),
		Synsets: make(map[string]*Synset),
	}
}

// AddEntry stores e under its sense id.
func (l *Lexicon) AddEntry(e *LexicalEntry) error {
	if _, ok := l.Entries[e.SenseID]; ok {
		return fmt.Errorf("sense %s: %w", e.SenseID, ErrAlreadyExists)
	}
	l.Entries[e.SenseID] = e
	return nil
}

// AddSynset stores s under its synset id.
func (l *Lexicon) AddSynset(s *Synset) error {
	if _, ok := l.Synsets[s.SynsetID]; ok {
		return fmt.Errorf("synset %s: %w", s.SynsetID, ErrAlreadyExists)
	}
	l.Synsets[s.SynsetID] = s
	return nil
}

// RemoveEntries deletes the given sense ids and returns how many were present.
func (l *Lexicon) RemoveEntries(ids map[string]struct{}) int {
	removed := 0
	for id := range ids {
		if _, ok := l.Entries[id]; ok {
			delete(l.Entries, id)
			removed++
		}
	}
	return removed
}

// SenseIDs returns all sense ids in sorted order.
func (l *Lexicon) SenseIDs() []string {
	ids := make([]string, 0, len(l.Entries))
	for id := range l.Entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// SynsetIDs returns all synset ids in sorted order.
func (l *Lexicon) SynsetIDs() []string {
	ids := make([]string, 0, len(l.Synsets))
	for id := range l.Synsets {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
