package xmlnode

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<cdb_lus>
  <cdb_lu c_lu_id="r_v-1" c_seq_nr="1">
    <form form-spelling="aanbieden" form-cat="verb"/>
    <examples>
      <example r_ex_id="1"><form_example><canonicalform>iets aanbieden</canonicalform></form_example></example>
      <example r_ex_id="2"><form_example><canonicalform></canonicalform></form_example></example>
    </examples>
  </cdb_lu>
  <cdb_lu c_lu_id="r_n-2" c_seq_nr="1"/>
</cdb_lus>`

func parseSample(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	return doc
}

func TestDocument_Select(t *testing.T) {
	t.Parallel()

	nodes, err := parseSample(t).Select("/*/cdb_lu")
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "cdb_lu", nodes[0].Name())

	id, ok := nodes[1].Attr("c_lu_id")
	assert.True(t, ok)
	assert.Equal(t, "r_n-2", id)
}

func TestDocument_Select_InvalidExpression(t *testing.T) {
	t.Parallel()

	_, err := parseSample(t).Select("/cdb_lu[")
	require.Error(t, err)
}

func TestNode_AttrAndChildren(t *testing.T) {
	t.Parallel()

	nodes, err := parseSample(t).Select("/*/cdb_lu")
	require.NoError(t, err)
	lu := nodes[0]

	_, ok := lu.Attr("missing")
	assert.False(t, ok)

	form, ok := lu.Child("form")
	require.True(t, ok)
	spelling, ok := form.Attr("form-spelling")
	assert.True(t, ok)
	assert.Equal(t, "aanbieden", spelling)
	assert.False(t, form.HasElementChildren())

	_, ok = lu.Child("morphology_verb/morpho-type")
	assert.False(t, ok)

	examples := lu.Children("examples/example")
	require.Len(t, examples, 2)
	text, ok := examples[0].Child("form_example/canonicalform")
	require.True(t, ok)
	assert.Equal(t, "iets aanbieden", text.Text())
	assert.True(t, lu.HasElementChildren())

	assert.Empty(t, nodes[1].Children("examples/example"))
	assert.False(t, nodes[1].HasElementChildren())
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("<cdb_lus><cdb_lu></cdb_lus>"))
	require.Error(t, err)
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "orbn.xml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	doc, err := ParseFile(path)
	require.NoError(t, err)
	nodes, err := doc.Select("//cdb_lu")
	require.NoError(t, err)
	assert.Len(t, nodes, 2)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.xml"))
	require.Error(t, err)
}
