package lemon

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/knakk/rdf"
)

// SenseIndex decodes a turtle graph and returns sense id → LexicalSense IRI,
// taken from the plain dct:identifier literals on IRI subjects. Typed or
// language-tagged identifiers (the lexicon's own version) are skipped.
// A sense id identifying more than one subject is an error.
func SenseIndex(r io.Reader) (map[string]string, error) {
	found := make(map[string]map[string]struct{})

	dec := rdf.NewTripleDecoder(r, rdf.Turtle)
	for {
		tr, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read turtle: %w", err)
		}
		if tr.Pred.String() != dctIdentifier.String() || tr.Subj.Type() != rdf.TermIRI {
			continue
		}
		lit, ok := tr.Obj.(rdf.Literal)
		if !ok || !isPlainLiteral(lit) {
			continue
		}
		id := lit.String()
		if found[id] == nil {
			found[id] = make(map[string]struct{})
		}
		found[id][tr.Subj.String()] = struct{}{}
	}

	index := make(map[string]string, len(found))
	for id, subjects := range found {
		if len(subjects) != 1 {
			return nil, fmt.Errorf("sense %s: expected one LexicalSense, found %d", id, len(subjects))
		}
		for s := range subjects {
			index[id] = s
		}
	}
	return index, nil
}

func isPlainLiteral(lit rdf.Literal) bool {
	if lit.Lang() != "" {
		return false
	}
	dt := lit.DataType.String()
	return dt == "" || dt == NSXSD+"string"
}

// ReadSenseIndex opens path and calls SenseIndex.
func ReadSenseIndex(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return SenseIndex(f)
}
