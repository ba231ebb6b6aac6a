package extract

import (
	"strings"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
)

// posMap is the closed table of raw part-of-speech tags. cdb_lu records
// abbreviate adjectives as "adj"; LMF records spell them out.
var posMap = map[string]domain.PartOfSpeech{
	"verb":      domain.PartOfSpeechVerb,
	"noun":      domain.PartOfSpeechNoun,
	"adj":       domain.PartOfSpeechAdjective,
	"adjective": domain.PartOfSpeechAdjective,
	"adverb":    domain.PartOfSpeechAdverb,
	"other":     domain.PartOfSpeechOther,
}

// MapPOS normalizes a raw tag. An unknown tag means the table no longer
// matches the input schema and is reported as a *domain.SchemaError.
func MapPOS(senseID, raw string) (domain.PartOfSpeech, error) {
	pos, ok := posMap[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", domain.NewSchemaError(senseID, "part_of_speech", raw, "no mapping for raw tag")
	}
	return pos, nil
}

// cdbPaths are the POS-specific element names of a cdb_lu record.
type cdbPaths struct {
	morphology string
	semantics  string
	syntax     string
	definition string // empty when the POS carries no definition
}

var cdbPathTable = map[domain.PartOfSpeech]cdbPaths{
	domain.PartOfSpeechVerb: {
		morphology: "morphology_verb",
		semantics:  "semantics_verb",
		syntax:     "syntax_verb",
		definition: "sem-definition/sem-def",
	},
	domain.PartOfSpeechNoun: {
		morphology: "morphology_noun",
		semantics:  "semantics_noun",
		syntax:     "syntax_noun",
		definition: "sem-definition/sem-def-noun/sem-specificae",
	},
	domain.PartOfSpeechAdjective: {
		morphology: "morphology_adj",
		semantics:  "semantics_adj",
		syntax:     "syntax_adj",
		definition: "semantics_adj/sem-resume",
	},
	domain.PartOfSpeechAdverb: {
		morphology: "morphology_adverb",
		semantics:  "semantics_adverb",
		syntax:     "syntax_adverb",
	},
	domain.PartOfSpeechOther: {
		morphology: "morphology_other",
		semantics:  "semantics_other",
		syntax:     "syntax_other",
	},
}
