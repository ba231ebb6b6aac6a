// Package extract turns raw lexical-entry elements of the two supported
// source schemas (ORBN cdb_lu and Cornetto-style LMF) into domain entries.
//
// Data-quality problems are reported through Result.Reason and never abort
// a run. Schema violations are returned as errors wrapping domain.ErrSchema.
package extract

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
	"github.com/heartmarshall/rbn-lexicon/internal/lexicon/xmlnode"
)

// Result is the outcome of extracting one element. Entry is always populated
// on a best-effort basis, even when Reason rejects it.
type Result struct {
	Entry  *domain.LexicalEntry
	Reason domain.Rejection
}

// Keep reports whether the entry should enter the collection.
func (r Result) Keep() bool { return r.Reason == "" }

// reject records reason unless an earlier one was already recorded.
func (r *Result) reject(reason domain.Rejection) {
	if r.Reason == "" {
		r.Reason = reason
	}
}

// Extractor converts one raw element.
type Extractor func(n xmlnode.Node) (Result, error)

var multiwordID = regexp.MustCompile(`(?i)(^|[^a-z])mwe`)

func isMultiwordID(senseID string) bool {
	return multiwordID.MatchString(senseID)
}

// childText returns the trimmed text of the element at path.
func childText(n xmlnode.Node, path string) (string, bool) {
	c, ok := n.Child(path)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(c.Text()), true
}

// childAttr returns the attribute of the element at path.
func childAttr(n xmlnode.Node, path, attr string) (string, bool) {
	c, ok := n.Child(path)
	if !ok {
		return "", false
	}
	return c.Attr(attr)
}

// semanticType keeps raw only when it names known types.
func semanticType(raw string) domain.SemanticType {
	st := domain.SemanticType(strings.ToLower(strings.TrimSpace(raw)))
	if !st.IsValid() {
		return ""
	}
	return st
}
