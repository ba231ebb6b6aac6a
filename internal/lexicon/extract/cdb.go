package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
	"github.com/heartmarshall/rbn-lexicon/internal/lexicon/xmlnode"
)

// ExtractCDB converts one ORBN cdb_lu element.
func ExtractCDB(n xmlnode.Node) (Result, error) {
	senseID, _ := n.Attr("c_lu_id")
	if senseID == "" {
		return Result{}, domain.NewSchemaError("", "c_lu_id", "", "attribute is required on every cdb_lu element")
	}

	e := &domain.LexicalEntry{
		SenseID:        senseID,
		IsMultiword:    isMultiwordID(senseID),
		CanonicalForms: cdbCanonicalForms(n),
		LUType:         domain.LUTypeUnknown,
	}
	res := Result{Entry: e}

	var rawPOS string
	if form, ok := n.Child("form"); ok {
		e.Lemma, _ = form.Attr("form-spelling")
		rawPOS, _ = form.Attr("form-cat")
	}
	if e.Lemma == "" {
		res.reject(domain.RejectMissingLemma)
	}
	if strings.TrimSpace(rawPOS) == "" {
		res.reject(domain.RejectMissingPOS)
	}
	if strings.HasPrefix(e.Lemma, "-") {
		res.reject(domain.RejectBoundMorpheme)
	}

	rawRank, _ := n.Attr("c_seq_nr")
	rank, err := strconv.Atoi(strings.TrimSpace(rawRank))
	if err != nil {
		res.reject(domain.RejectInvalidRank)
	}
	e.SenseRank = rank

	if strings.TrimSpace(rawPOS) == "" {
		return res, nil
	}

	pos, err := MapPOS(senseID, rawPOS)
	if err != nil {
		return Result{}, err
	}
	e.PartOfSpeech = pos
	if err := fillCDBConditional(n, e); err != nil {
		return Result{}, err
	}

	if res.Keep() {
		if err := e.Validate(); err != nil {
			return Result{}, fmt.Errorf("sense %s: %w", senseID, err)
		}
	}
	return res, nil
}

// fillCDBConditional sets the fields whose location depends on the POS.
func fillCDBConditional(n xmlnode.Node, e *domain.LexicalEntry) error {
	paths := cdbPathTable[e.PartOfSpeech]

	if paths.definition != "" {
		e.Definition, _ = childText(n, paths.definition)
	}
	e.Article, _ = childText(n, paths.syntax+"/sy-article")

	morphoType, ok := childText(n, paths.morphology+"/morpho-type")
	lu, err := MapLUType(e.SenseID, morphoType, ok && morphoType != "")
	if err != nil {
		return err
	}
	e.MorphoType = morphoType
	e.LUType = lu

	if structure, ok := childText(n, paths.morphology+"/morpho-structure"); ok {
		e.MorphoStructure = structure
		e.MorphologicalParts = SplitMorphostructure(structure, e.Lemma)
	}

	if e.PartOfSpeech == domain.PartOfSpeechVerb {
		rawType, _ := childText(n, "semantics_verb/sem-type")
		featureSet, _ := childText(n, "semantics_verb/sem-caseframe/caseframe")
		e.Verb = &domain.VerbFeatures{
			SemanticType: semanticType(rawType),
			FeatureSet:   featureSet,
		}
	}
	return nil
}

func cdbCanonicalForms(n xmlnode.Node) map[string]string {
	forms := make(map[string]string)
	for _, ex := range n.Children("examples/example") {
		id, _ := ex.Attr("r_ex_id")
		text, _ := childText(ex, "form_example/canonicalform")
		if text == "" {
			continue
		}
		forms[id] = text
	}
	return forms
}
