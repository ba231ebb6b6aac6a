package extract

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
	"github.com/heartmarshall/rbn-lexicon/internal/lexicon/xmlnode"
)

// ExtractLMF converts one LMF LexicalEntry element.
// The schema guarantees a Sense child and a Lemma or MultiwordExpression
// child; their absence is a schema error.
func ExtractLMF(n xmlnode.Node) (Result, error) {
	entryID, _ := n.Attr("id")

	sense, ok := n.Child("Sense")
	if !ok {
		return Result{}, domain.NewSchemaError(entryID, "Sense", "", "LexicalEntry has no Sense child")
	}
	senseID, _ := sense.Attr("senseId")
	if senseID == "" {
		return Result{}, domain.NewSchemaError(entryID, "Sense/@senseId", "", "attribute is required")
	}

	multiword := false
	lemmaEl, ok := n.Child("Lemma")
	if !ok {
		multiword = true
		if lemmaEl, ok = n.Child("MultiwordExpression"); !ok {
			return Result{}, domain.NewSchemaError(senseID, "Lemma", "", "LexicalEntry has neither Lemma nor MultiwordExpression")
		}
	}

	e := &domain.LexicalEntry{
		SenseID:        senseID,
		IsMultiword:    multiword || isMultiwordID(senseID),
		CanonicalForms: lmfCanonicalForms(sense),
		LUType:         domain.LUTypeUnknown,
	}
	e.Lemma, _ = lemmaEl.Attr("writtenForm")
	e.DeclaredSynsetID, _ = sense.Attr("synset")
	e.Definition, _ = sense.Attr("definition")

	res := Result{Entry: e}
	rawPOS, _ := n.Attr("partOfSpeech")
	if e.Lemma == "" {
		res.reject(domain.RejectMissingLemma)
	}
	if strings.TrimSpace(rawPOS) == "" {
		res.reject(domain.RejectMissingPOS)
		return res, nil
	}
	if strings.HasPrefix(e.Lemma, "-") {
		res.reject(domain.RejectBoundMorpheme)
	}

	pos, err := MapPOS(senseID, rawPOS)
	if err != nil {
		return Result{}, err
	}
	e.PartOfSpeech = pos

	if pos == domain.PartOfSpeechVerb {
		e.Verb = lmfVerbFeatures(n, sense)
	}

	if res.Keep() {
		if err := e.Validate(); err != nil {
			return Result{}, fmt.Errorf("sense %s: %w", senseID, err)
		}
	}
	return res, nil
}

func lmfVerbFeatures(n, sense xmlnode.Node) *domain.VerbFeatures {
	vf := &domain.VerbFeatures{}

	if sem, ok := sense.Child("Semantics-verb"); ok && sem.HasElementChildren() {
		vf.SemanticType = semanticType(joinAttrValues(sem.Children("semanticTypes[@semanticType]"), "semanticType"))
		vf.FeatureSet = joinAttrValues(sem.Children("semanticTypes[@semanticFeatureSet]"), "semanticFeatureSet")
	}
	if sep, ok := childAttr(n, "Morphology", "separability"); ok {
		vf.Separable = sep == "separable"
	}
	return vf
}

// joinAttrValues joins the distinct values of attr in sorted order with "-".
func joinAttrValues(nodes []xmlnode.Node, attr string) string {
	var values []string
	for _, n := range nodes {
		v, _ := n.Attr(attr)
		if !slices.Contains(values, v) {
			values = append(values, v)
		}
	}
	slices.Sort(values)
	return strings.Join(values, "-")
}

// lmfCanonicalForms keys examples by their id, or by position when the
// example carries none.
func lmfCanonicalForms(sense xmlnode.Node) map[string]string {
	forms := make(map[string]string)
	for i, ex := range sense.Children("SenseExamples/SenseExample") {
		text, _ := childAttr(ex, "canonicalForm", "canonicalform")
		if strings.TrimSpace(text) == "" {
			continue
		}
		id, ok := ex.Attr("id")
		if !ok || id == "" {
			id = strconv.Itoa(i + 1)
		}
		forms[id] = text
	}
	return forms
}
