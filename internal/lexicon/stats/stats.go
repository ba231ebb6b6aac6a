// Package stats computes descriptive statistics over a Lexicon.
package stats

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
)

// LemmaPolysemy is the number of senses of one lemma with one FrameNet POS.
type LemmaPolysemy struct {
	Lemma  string
	POS    string
	Senses int
}

// Polysemy counts senses per (lemma, FrameNet POS), sorted by lemma then POS.
func Polysemy(lex *domain.Lexicon) []LemmaPolysemy {
	type key struct{ lemma, pos string }
	groups := lo.GroupBy(lo.Values(lex.Entries), func(e *domain.LexicalEntry) key {
		return key{lemma: e.Lemma, pos: e.PartOfSpeech.FrameNet()}
	})

	out := make([]LemmaPolysemy, 0, len(groups))
	for k, senses := range groups {
		out = append(out, LemmaPolysemy{Lemma: k.lemma, POS: k.pos, Senses: len(senses)})
	}
	slices.SortFunc(out, func(a, b LemmaPolysemy) int {
		return cmp.Or(cmp.Compare(a.Lemma, b.Lemma), cmp.Compare(a.POS, b.POS))
	})
	return out
}

// PolysemyClass is how many lemmas have a given number of senses.
type PolysemyClass struct {
	Senses  int
	Lemmas  int
	Percent float64 // share of all lemmas, rounded to two decimals
}

// PolysemyDistribution groups rows by sense count, ascending.
func PolysemyDistribution(rows []LemmaPolysemy) []PolysemyClass {
	groups := lo.GroupBy(rows, func(r LemmaPolysemy) int { return r.Senses })

	out := make([]PolysemyClass, 0, len(groups))
	for senses, lemmas := range groups {
		out = append(out, PolysemyClass{
			Senses:  senses,
			Lemmas:  len(lemmas),
			Percent: round2(100 * float64(len(lemmas)) / float64(len(rows))),
		})
	}
	slices.SortFunc(out, func(a, b PolysemyClass) int { return cmp.Compare(a.Senses, b.Senses) })
	return out
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }

// attributeGetters are the entry attributes AttributeFrequencies accepts.
var attributeGetters = map[string]func(*domain.LexicalEntry) string{
	"lemma":         func(e *domain.LexicalEntry) string { return e.Lemma },
	"pos":           func(e *domain.LexicalEntry) string { return string(e.PartOfSpeech) },
	"fn_pos":        func(e *domain.LexicalEntry) string { return e.PartOfSpeech.FrameNet() },
	"simple_pos":    func(e *domain.LexicalEntry) string { return e.PartOfSpeech.Simple() },
	"prefix":        func(e *domain.LexicalEntry) string { return e.Prefix() },
	"lu_type":       func(e *domain.LexicalEntry) string { return string(e.LUType) },
	"morpho_type":   func(e *domain.LexicalEntry) string { return e.MorphoType },
	"article":       func(e *domain.LexicalEntry) string { return e.Article },
	"semantic_type": func(e *domain.LexicalEntry) string { return string(e.SemanticType()) },
	"feature_set":   func(e *domain.LexicalEntry) string { return e.FeatureSet() },
	"synset_id":     func(e *domain.LexicalEntry) string { return e.SynsetID },
	"multiword":     func(e *domain.LexicalEntry) string { return strconv.FormatBool(e.IsMultiword) },
	"separable": func(e *domain.LexicalEntry) string {
		if e.Verb == nil {
			return ""
		}
		return strconv.FormatBool(e.Verb.Separable)
	},
}

// Attributes returns the attribute names AttributeFrequencies accepts.
func Attributes() []string {
	names := lo.Keys(attributeGetters)
	slices.Sort(names)
	return names
}

// NoValue renders an empty attribute value.
const NoValue = "None"

// Frequency is how often one combination of attribute values occurs.
type Frequency struct {
	Values []string
	Count  int
}

// Key joins the values with "-".
func (f Frequency) Key() string { return strings.Join(f.Values, "-") }

// AttributeStats describes the joint distribution of some attributes.
type AttributeStats struct {
	Attributes []string
	Count      int
	Unique     int
	// Frequencies are sorted by descending count, then key.
	Frequencies []Frequency
}

// AttributeFrequencies counts each combination of the given attributes over
// all entries.
func AttributeFrequencies(lex *domain.Lexicon, attributes []string) (AttributeStats, error) {
	if len(attributes) == 0 {
		return AttributeStats{}, domain.NewValidationError("attributes", "at least one attribute is required")
	}
	getters := make([]func(*domain.LexicalEntry) string, len(attributes))
	for i, name := range attributes {
		g, ok := attributeGetters[name]
		if !ok {
			return AttributeStats{}, domain.NewValidationError("attributes",
				fmt.Sprintf("unknown attribute %q, expected one of %s", name, strings.Join(Attributes(), ", ")))
		}
		getters[i] = g
	}

	counts := make(map[string]*Frequency)
	for _, e := range lex.Entries {
		values := make([]string, len(getters))
		for i, g := range getters {
			if values[i] = g(e); values[i] == "" {
				values[i] = NoValue
			}
		}
		key := strings.Join(values, "\x00")
		if f, ok := counts[key]; ok {
			f.Count++
			continue
		}
		counts[key] = &Frequency{Values: values, Count: 1}
	}

	st := AttributeStats{
		Attributes:  attributes,
		Count:       len(lex.Entries),
		Unique:      len(counts),
		Frequencies: make([]Frequency, 0, len(counts)),
	}
	for _, f := range counts {
		st.Frequencies = append(st.Frequencies, *f)
	}
	slices.SortFunc(st.Frequencies, func(a, b Frequency) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.Key(), b.Key()))
	})
	return st, nil
}
