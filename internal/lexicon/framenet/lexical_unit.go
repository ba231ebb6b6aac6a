package framenet

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
)

// StatusCreated is the status of a lexical unit that nobody reviewed yet.
const StatusCreated = "Created"

// LexicalUnit is the record handed to the FrameNet importer.
type LexicalUnit struct {
	Lexemes         []Lexeme          `json:"lexemes"`
	Definition      string            `json:"definition"`
	LUName          string            `json:"lu_name"`
	LUType          string            `json:"lu_type"`
	Status          string            `json:"status"`
	POS             string            `json:"POS"`
	Frame           string            `json:"frame"`
	Provenance      string            `json:"provenance"`
	IncorporatedFE  string            `json:"incorporated_fe,omitempty"`
	Timestamp       string            `json:"timestamp,omitempty"`
	OptionalLUAttrs map[string]string `json:"optional_lu_attrs"`
}

// LUName returns the FrameNet name of e, e.g. "aanbieden.v".
func LUName(e *domain.LexicalEntry) string {
	return e.Lemma + "." + strings.ToLower(e.PartOfSpeech.FrameNet())
}

// NewLexicalUnit builds the lexical unit of e evoking frame. The second
// result lists, sorted, the attributes that still need annotation.
func NewLexicalUnit(e *domain.LexicalEntry, frame, provenance string) (LexicalUnit, []string) {
	lexemes, complete := Lexemes(e)

	lu := LexicalUnit{
		Lexemes:         lexemes,
		Definition:      e.Definition,
		LUName:          LUName(e),
		Status:          StatusCreated,
		POS:             e.PartOfSpeech.FrameNet(),
		Frame:           frame,
		Provenance:      provenance,
		OptionalLUAttrs: map[string]string{"sense_id": e.SenseID},
	}
	if e.LUType != "" && e.LUType != domain.LUTypeUnknown {
		lu.LUType = string(e.LUType)
	}

	var todo []string
	if lu.LUType == "" {
		todo = append(todo, "lu_type")
	}
	if !complete {
		todo = append(todo, "lexemes")
	}
	for attr, value := range map[string]string{
		"definition": lu.Definition,
		"status":     lu.Status,
		"POS":        lu.POS,
		"frame":      lu.Frame,
		"provenance": lu.Provenance,
	} {
		if value == "" {
			todo = append(todo, attr)
		}
	}
	slices.Sort(todo)
	return lu, todo
}

// FrameSource yields the frames proposed for a verb feature set.
type FrameSource interface {
	Frames(featureSet string) []string
}

// Candidate is a proposed lexical unit for one sense and one frame.
type Candidate struct {
	SenseID    string      `json:"sense_id"`
	FeatureSet string      `json:"feature_set"`
	LU         LexicalUnit `json:"lu"`
	ToAnnotate []string    `json:"to_annotate"`
}

// Candidates proposes a lexical unit for every verb sense whose feature set
// has frames, in sense id then frame order.
func Candidates(lex *domain.Lexicon, frames FrameSource) []Candidate {
	var out []Candidate
	for _, id := range lex.SenseIDs() {
		e := lex.Entries[id]
		featureSet := e.FeatureSet()
		if featureSet == "" {
			continue
		}
		for _, frame := range frames.Frames(featureSet) {
			lu, todo := NewLexicalUnit(e, frame, "rbn_feature_set:"+featureSet)
			out = append(out, Candidate{
				SenseID:    id,
				FeatureSet: featureSet,
				LU:         lu,
				ToAnnotate: todo,
			})
		}
	}
	return out
}

// WriteJSON writes candidates as an indented JSON array.
func WriteJSON(w io.Writer, candidates []Candidate) error {
	if candidates == nil {
		candidates = []Candidate{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(candidates); err != nil {
		return fmt.Errorf("encode candidates: %w", err)
	}
	return nil
}
