package domain

import "strings"

// PartOfSpeech is the normalized grammatical category of a sense.
type PartOfSpeech string

const (
	PartOfSpeechVerb      PartOfSpeech = "verb"
	PartOfSpeechNoun      PartOfSpeech = "noun"
	PartOfSpeechAdjective PartOfSpeech = "adjective"
	PartOfSpeechAdverb    PartOfSpeech = "adverb"
	PartOfSpeechOther     PartOfSpeech = "other"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechVerb, PartOfSpeechNoun, PartOfSpeechAdjective,
		PartOfSpeechAdverb, PartOfSpeechOther:
		return true
	}
	return false
}

// Simple returns the one-letter tag used in sense labels (v, n, a, r, o).
func (p PartOfSpeech) Simple() string {
	switch p {
	case PartOfSpeechVerb:
		return "v"
	case PartOfSpeechNoun:
		return "n"
	case PartOfSpeechAdjective:
		return "a"
	case PartOfSpeechAdverb:
		return "r"
	case PartOfSpeechOther:
		return "o"
	}
	return ""
}

// FrameNet returns the POS tag FrameNet uses for lexical units.
func (p PartOfSpeech) FrameNet() string {
	switch p {
	case PartOfSpeechVerb:
		return "V"
	case PartOfSpeechNoun:
		return "N"
	case PartOfSpeechAdjective:
		return "A"
	case PartOfSpeechAdverb:
		return "ADV"
	case PartOfSpeechOther:
		return "o"
	}
	return ""
}

// LUType classifies how the morphological parts of a lemma are to be read.
type LUType string

const (
	LUTypeSingleton          LUType = "singleton"
	LUTypePhrasal            LUType = "phrasal"
	LUTypeExocentricCompound LUType = "exocentric compound"
	LUTypeUnknown            LUType = "unknown"
)

func (t LUType) String() string { return string(t) }

func (t LUType) IsValid() bool {
	switch t {
	case LUTypeSingleton, LUTypePhrasal, LUTypeExocentricCompound, LUTypeUnknown:
		return true
	}
	return false
}

// SemanticType is the aspectual class of a verb sense.
type SemanticType string

const (
	SemanticTypeAction  SemanticType = "action"
	SemanticTypeState   SemanticType = "state"
	SemanticTypeProcess SemanticType = "process"
)

func (s SemanticType) String() string { return string(s) }

// IsValid reports whether s is a known type or a "-"-joined combination of
// known types, as produced when an LMF sense lists several of them.
func (s SemanticType) IsValid() bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(string(s), "-") {
		switch SemanticType(part) {
		case SemanticTypeAction, SemanticTypeState, SemanticTypeProcess:
		default:
			return false
		}
	}
	return true
}

// Rejection explains why an extracted entry was not kept.
// The zero value means the entry is kept.
type Rejection string

const (
	RejectMissingLemma     Rejection = "missing_lemma"
	RejectMissingPOS       Rejection = "missing_pos"
	RejectBoundMorpheme    Rejection = "bound_morpheme"
	RejectInvalidRank      Rejection = "invalid_rank"
	RejectPrefixNotAllowed Rejection = "prefix_not_allowed"
	RejectSubNumbered      Rejection = "sub_numbered"
	RejectInconsistentRank Rejection = "inconsistent_rank"
)

func (r Rejection) String() string { return string(r) }
