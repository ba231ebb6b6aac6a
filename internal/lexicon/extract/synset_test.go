package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
	"github.com/heartmarshall/rbn-lexicon/internal/lexicon/xmlnode"
)

const odwnSynsets = `<LexicalResource><Lexicon>
  <Synset id="s-0043" ili="i12345">
    <Definitions><Definition gloss="een financiële instelling"/></Definitions>
  </Synset>
  <Synset id="s-0044"/>
</Lexicon></LexicalResource>`

func TestSynsets(t *testing.T) {
	doc, err := xmlnode.Parse(strings.NewReader(odwnSynsets))
	require.NoError(t, err)

	synsets, err := Synsets(doc)
	require.NoError(t, err)
	require.Len(t, synsets, 2)

	s := synsets["s-0043"]
	require.NotNil(t, s)
	assert.Equal(t, "i12345", s.InterlingualIndex)
	assert.Equal(t, "een financiële instelling", s.Definition)
	assert.Empty(t, s.Synonyms)

	bare := synsets["s-0044"]
	require.NotNil(t, bare)
	assert.Empty(t, bare.InterlingualIndex)
	assert.Equal(t, "", bare.Definition)
}

func TestSynsets_SchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"missing id", `<L><Synset ili="i1"/></L>`},
		{"duplicate id", `<L><Synset id="s-1"/><Synset id="s-1"/></L>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := xmlnode.Parse(strings.NewReader(tt.xml))
			require.NoError(t, err)
			_, err = Synsets(doc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrSchema))
		})
	}
}
