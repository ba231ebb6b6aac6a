package store

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
)

func sampleLexicon(t *testing.T) *domain.Lexicon {
	t.Helper()
	lex := domain.NewLexicon()

	verb := &domain.LexicalEntry{
		SenseID:            "r_v-1001",
		Lemma:              "aanbieden",
		PartOfSpeech:       domain.PartOfSpeechVerb,
		Definition:         "iets ter beschikking stellen",
		CanonicalForms:     map[string]string{"1": "hulp aanbieden"},
		Verb:               &domain.VerbFeatures{SemanticType: domain.SemanticTypeAction, FeatureSet: "np_v", Separable: true},
		SenseRank:          1,
		MorphoType:         "phrasal",
		MorphoStructure:    "*aan<bieden>",
		MorphologicalParts: []string{"aan", "bieden"},
		LUType:             domain.LUTypePhrasal,
		SynsetID:           "s-0043",
		ProvenanceLabel:    "manual+auto",
		ProvenanceSet:      []string{"manual", "auto"},
	}
	bare := &domain.LexicalEntry{
		SenseID:      "r_v-1002",
		Lemma:        "zijn",
		PartOfSpeech: domain.PartOfSpeechVerb,
		Verb:         &domain.VerbFeatures{},
		SenseRank:    1,
		LUType:       domain.LUTypeUnknown,
	}
	noun := &domain.LexicalEntry{
		SenseID:      "r_n-2001",
		Lemma:        "bank",
		PartOfSpeech: domain.PartOfSpeechNoun,
		Article:      "de",
		SenseRank:    1,
		LUType:       domain.LUTypeUnknown,
		SynsetID:     "s-0043",
	}
	for _, e := range []*domain.LexicalEntry{verb, bare, noun} {
		require.NoError(t, lex.AddEntry(e))
	}

	s := &domain.Synset{SynsetID: "s-0043", InterlingualIndex: "i12345", Definition: "aanbod"}
	s.AddSynonym(noun)
	s.AddSynonym(verb)
	require.NoError(t, lex.AddSynset(s))
	require.NoError(t, lex.AddSynset(&domain.Synset{SynsetID: "s-0044"}))
	return lex
}

func TestEncodeDecode(t *testing.T) {
	lex := sampleLexicon(t)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, lex))

	got, err := Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, lex.SenseIDs(), got.SenseIDs())
	assert.Equal(t, lex.SynsetIDs(), got.SynsetIDs())
	assert.Equal(t, lex.Entries["r_v-1001"], got.Entries["r_v-1001"])
	assert.Equal(t, lex.Entries["r_n-2001"], got.Entries["r_n-2001"])

	bare := got.Entries["r_v-1002"]
	require.NotNil(t, bare.Verb)
	assert.Equal(t, domain.VerbFeatures{}, *bare.Verb)

	s := got.Synsets["s-0043"]
	assert.Equal(t, "i12345", s.InterlingualIndex)
	assert.Equal(t, []string{"r_n-2001", "r_v-1001"}, s.SynonymIDs())
	assert.Same(t, got.Entries["r_n-2001"], s.Synonyms[0])
	assert.Same(t, got.Entries["r_v-1001"], s.Synonyms[1])
	assert.Empty(t, got.Synsets["s-0044"].Synonyms)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbn.bin")
	lex := sampleLexicon(t)

	require.NoError(t, Save(path, lex))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, got.Entries, 3)

	// overwrite in place
	lex.RemoveEntries(map[string]struct{}{"r_v-1002": {}})
	require.NoError(t, Save(path, lex))
	got, err = Load(path)
	require.NoError(t, err)
	assert.Len(t, got.Entries, 2)

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), "orbn.bin.*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.bin"))
	assert.Error(t, err)
}

func TestDecode_Errors(t *testing.T) {
	t.Run("not gzip", func(t *testing.T) {
		_, err := Decode(bytes.NewReader([]byte("plain")))
		assert.Error(t, err)
	})

	t.Run("version mismatch", func(t *testing.T) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		require.NoError(t, gob.NewEncoder(zw).Encode(&snapshot{Version: formatVersion + 1}))
		require.NoError(t, zw.Close())

		_, err := Decode(&buf)
		assert.True(t, errors.Is(err, ErrVersionMismatch))
	})

	t.Run("dangling synonym", func(t *testing.T) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		require.NoError(t, gob.NewEncoder(zw).Encode(&snapshot{
			Version: formatVersion,
			Synsets: []synsetRecord{{SynsetID: "s-1", SynonymIDs: []string{"r_n-404"}}},
		}))
		require.NoError(t, zw.Close())

		_, err := Decode(&buf)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
