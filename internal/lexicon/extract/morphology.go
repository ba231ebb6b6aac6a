package extract

import (
	"strings"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
)

var boundaryReplacer = strings.NewReplacer(
	"*", "",
	"]", "[",
	"<", "[",
	">", "[",
)

// SplitMorphostructure splits a morphology structure such as "*aan<bieden>"
// into its fragments. The result is empty unless the fragments join back
// into lemma exactly.
func SplitMorphostructure(structure, lemma string) []string {
	var parts []string
	for _, frag := range strings.Split(boundaryReplacer.Replace(structure), "[") {
		if frag != "" {
			parts = append(parts, frag)
		}
	}
	if strings.Join(parts, "") != lemma {
		return nil
	}
	return parts
}

// luTypeMap covers every morpho-type the resource is known to use. Types
// mapped to unknown are deliberately not modeled yet.
var luTypeMap = map[string]domain.LUType{
	"simpmorph":      domain.LUTypeSingleton,
	"derivation":     domain.LUTypeSingleton,
	"xderivation":    domain.LUTypeSingleton,
	"zeroderivation": domain.LUTypeSingleton,
	"nmorph":         domain.LUTypeSingleton,

	"phrasal": domain.LUTypePhrasal,

	"xcompound":  domain.LUTypeExocentricCompound,
	"x-compound": domain.LUTypeExocentricCompound,

	"compound":    domain.LUTypeUnknown,
	"wordgroup":   domain.LUTypeUnknown,
	"compderiv":   domain.LUTypeUnknown,
	"derivcomp":   domain.LUTypeUnknown,
	"unspecified": domain.LUTypeUnknown,
	"nil":         domain.LUTypeUnknown,
}

// MapLUType derives the lexical-unit type from a raw morpho-type. An absent
// morpho-type yields unknown; an unlisted one is a *domain.SchemaError.
func MapLUType(senseID, morphoType string, present bool) (domain.LUType, error) {
	if !present {
		return domain.LUTypeUnknown, nil
	}
	lu, ok := luTypeMap[morphoType]
	if !ok {
		return "", domain.NewSchemaError(senseID, "morpho_type", morphoType, "no lexical unit type mapping")
	}
	return lu, nil
}
