package framenet

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
)

func TestLexemes(t *testing.T) {
	tests := []struct {
		name     string
		entry    domain.LexicalEntry
		want     []Lexeme
		complete bool
	}{
		{
			name:  "singleton",
			entry: domain.LexicalEntry{Lemma: "groot", PartOfSpeech: domain.PartOfSpeechAdjective, LUType: domain.LUTypeSingleton},
			want: []Lexeme{
				{Order: "1", Headword: "false", BreakBefore: "false", POS: "A", Name: "groot"},
			},
			complete: true,
		},
		{
			name:  "exocentric compound",
			entry: domain.LexicalEntry{Lemma: "kerstboom", PartOfSpeech: domain.PartOfSpeechNoun, LUType: domain.LUTypeExocentricCompound},
			want: []Lexeme{
				{Order: "1", Headword: "false", BreakBefore: "false", POS: "N", Name: "kerstboom"},
			},
			complete: true,
		},
		{
			name: "phrasal",
			entry: domain.LexicalEntry{
				Lemma: "aanbieden", PartOfSpeech: domain.PartOfSpeechVerb, LUType: domain.LUTypePhrasal,
				MorphologicalParts: []string{"aan", "bieden"},
			},
			want: []Lexeme{
				{Order: "1", Headword: "false", BreakBefore: "false", Name: "aan"},
				{Order: "2", Headword: "false", BreakBefore: "false", POS: "V", Name: "bieden"},
			},
			complete: true,
		},
		{
			name:     "phrasal without split",
			entry:    domain.LexicalEntry{Lemma: "opbellen", PartOfSpeech: domain.PartOfSpeechVerb, LUType: domain.LUTypePhrasal},
			want:     []Lexeme{},
			complete: false,
		},
		{
			name: "compound with linking morpheme",
			entry: domain.LexicalEntry{
				Lemma: "zonnebril", PartOfSpeech: domain.PartOfSpeechNoun, LUType: domain.LUTypeUnknown,
				MorphoType: "compound", MorphologicalParts: []string{"zon", "ne", "bril"},
			},
			want: []Lexeme{
				{Order: "1", Headword: "false", BreakBefore: "false", Name: "zon"},
				{Order: "2", Headword: "false", BreakBefore: "false", Name: "ne", POS: InfixPOS},
				{Order: "3", BreakBefore: "false", Name: "bril", POS: "N", Head: "true"},
			},
			complete: false,
		},
		{
			name: "compound of two parts",
			entry: domain.LexicalEntry{
				Lemma: "huisdeur", PartOfSpeech: domain.PartOfSpeechNoun, LUType: domain.LUTypeUnknown,
				MorphoType: "compound", MorphologicalParts: []string{"huis", "deur"},
			},
			want: []Lexeme{
				{Order: "1", Headword: "false", BreakBefore: "false", Name: "huis"},
				{Order: "2", BreakBefore: "false", Name: "deur", POS: "N", Head: "true"},
			},
			complete: false,
		},
		{
			name:     "unknown type",
			entry:    domain.LexicalEntry{Lemma: "fiets", PartOfSpeech: domain.PartOfSpeechNoun, LUType: domain.LUTypeUnknown},
			want:     []Lexeme{},
			complete: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, complete := Lexemes(&tt.entry)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.complete, complete)
		})
	}
}

func TestNewLexicalUnit(t *testing.T) {
	e := &domain.LexicalEntry{
		SenseID:            "r_v-1001",
		Lemma:              "aanbieden",
		PartOfSpeech:       domain.PartOfSpeechVerb,
		Definition:         "iets ter beschikking stellen",
		Verb:               &domain.VerbFeatures{FeatureSet: "np_v"},
		LUType:             domain.LUTypePhrasal,
		MorphologicalParts: []string{"aan", "bieden"},
	}

	lu, todo := NewLexicalUnit(e, "Offering", "rbn_feature_set:np_v")

	assert.Equal(t, "aanbieden.v", lu.LUName)
	assert.Equal(t, "phrasal", lu.LUType)
	assert.Equal(t, StatusCreated, lu.Status)
	assert.Equal(t, "V", lu.POS)
	assert.Equal(t, "Offering", lu.Frame)
	assert.Len(t, lu.Lexemes, 2)
	assert.Equal(t, "r_v-1001", lu.OptionalLUAttrs["sense_id"])
	assert.Empty(t, todo)
}

func TestNewLexicalUnit_NeedsAnnotation(t *testing.T) {
	e := &domain.LexicalEntry{
		SenseID:      "r_n-8001",
		Lemma:        "fiets",
		PartOfSpeech: domain.PartOfSpeechNoun,
		LUType:       domain.LUTypeUnknown,
	}

	lu, todo := NewLexicalUnit(e, "", "")

	assert.Empty(t, lu.LUType)
	assert.Equal(t, []string{"definition", "frame", "lexemes", "lu_type", "provenance"}, todo)
}

type frames map[string][]string

func (f frames) Frames(featureSet string) []string { return f[featureSet] }

func TestCandidates(t *testing.T) {
	lex := domain.NewLexicon()
	for _, e := range []*domain.LexicalEntry{
		{SenseID: "r_v-2", Lemma: "geven", PartOfSpeech: domain.PartOfSpeechVerb, LUType: domain.LUTypeSingleton,
			Verb: &domain.VerbFeatures{FeatureSet: "np_v_np"}},
		{SenseID: "r_v-1", Lemma: "aanbieden", PartOfSpeech: domain.PartOfSpeechVerb, LUType: domain.LUTypeSingleton,
			Verb: &domain.VerbFeatures{FeatureSet: "np_v"}},
		{SenseID: "r_v-3", Lemma: "zijn", PartOfSpeech: domain.PartOfSpeechVerb, Verb: &domain.VerbFeatures{}},
		{SenseID: "r_n-1", Lemma: "bank", PartOfSpeech: domain.PartOfSpeechNoun},
	} {
		require.NoError(t, lex.AddEntry(e))
	}

	got := Candidates(lex, frames{"np_v": {"Offering", "Giving"}, "other": {"X"}})

	require.Len(t, got, 2)
	assert.Equal(t, "r_v-1", got[0].SenseID)
	assert.Equal(t, "Offering", got[0].LU.Frame)
	assert.Equal(t, "Giving", got[1].LU.Frame)
	assert.Equal(t, "rbn_feature_set:np_v", got[1].LU.Provenance)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	e := &domain.LexicalEntry{SenseID: "c_a-1", Lemma: "groot", PartOfSpeech: domain.PartOfSpeechAdjective, LUType: domain.LUTypeSingleton}
	lu, todo := NewLexicalUnit(e, "Size", "manual")
	require.NoError(t, WriteJSON(&buf, []Candidate{{SenseID: "c_a-1", LU: lu, ToAnnotate: todo}}))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	luJSON := decoded[0]["lu"].(map[string]any)
	assert.Equal(t, "groot.a", luJSON["lu_name"])
	lexemes := luJSON["lexemes"].([]any)
	assert.Equal(t, "A", lexemes[0].(map[string]any)["POS"])
}
