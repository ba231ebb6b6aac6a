// Package framenet prepares RBN senses as lexical-unit records in the
// format the NLTK FrameNet tooling imports.
package framenet

import (
	"strconv"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
)

// Lexeme is one orthographic part of a lexical unit. Boolean-like fields are
// strings because the importer expects "true" / "false".
type Lexeme struct {
	Order       string `json:"order"`
	Headword    string `json:"headword,omitempty"`
	BreakBefore string `json:"breakBefore"`
	POS         string `json:"POS,omitempty"`
	Name        string `json:"name"`
	Head        string `json:"head,omitempty"`
}

// InfixPOS tags a linking morpheme inside a compound.
const InfixPOS = "I"

var linkingMorphemes = map[string]struct{}{
	"s": {}, "e": {}, "en": {}, "n": {}, "ne": {}, "er": {},
}

// Lexemes splits e into lexemes. complete is false when the result still
// needs manual annotation.
//
// A compound is split into one lexeme per morphological part whatever its
// LU type, so compounds with an unknown LU type still get per-part lexemes
// rather than an empty list; the last part is the head.
func Lexemes(e *domain.LexicalEntry) (lexemes []Lexeme, complete bool) {
	pos := e.PartOfSpeech.FrameNet()

	switch {
	case e.LUType == domain.LUTypeSingleton || e.LUType == domain.LUTypeExocentricCompound:
		return []Lexeme{{
			Order:       "1",
			Headword:    "false",
			BreakBefore: "false",
			POS:         pos,
			Name:        e.Lemma,
		}}, true

	case e.LUType == domain.LUTypePhrasal && len(e.MorphologicalParts) == 2:
		return []Lexeme{
			{Order: "1", Headword: "false", BreakBefore: "false", Name: e.MorphologicalParts[0]},
			{Order: "2", Headword: "false", BreakBefore: "false", Name: e.MorphologicalParts[1], POS: pos},
		}, true

	case e.MorphoType == "compound":
		parts := e.MorphologicalParts
		lexemes = make([]Lexeme, 0, len(parts))
		for i, part := range parts {
			lx := Lexeme{Order: strconv.Itoa(i + 1), BreakBefore: "false", Name: part}
			if i < len(parts)-1 {
				lx.Headword = "false"
				if _, ok := linkingMorphemes[part]; ok && len(parts) == 3 && i == 1 {
					lx.POS = InfixPOS
				}
			} else {
				lx.POS = pos
				lx.Head = "true"
			}
			lexemes = append(lexemes, lx)
		}
		return lexemes, false
	}

	return []Lexeme{}, false
}
