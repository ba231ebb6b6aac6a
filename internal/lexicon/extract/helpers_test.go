package extract

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/rbn-lexicon/internal/lexicon/xmlnode"
)

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

// parseOne parses doc and returns the single element matching path.
func parseOne(t *testing.T, doc, path string) xmlnode.Node {
	t.Helper()
	d, err := xmlnode.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	nodes, err := d.Select(path)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	return nodes[0]
}
