package extract

import (
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
	"github.com/heartmarshall/rbn-lexicon/internal/lexicon/xmlnode"
)

// Format describes one supported source schema.
type Format struct {
	Name      string
	EntryPath string
	Extract   Extractor
	// PositionalRanks numbers the senses of each lemma/POS group in document
	// order, for schemas that carry no sequence number of their own.
	PositionalRanks bool
}

var (
	FormatCDB = Format{Name: "cdb", EntryPath: "/*/cdb_lu", Extract: ExtractCDB}
	FormatLMF = Format{Name: "lmf", EntryPath: "//LexicalEntry", Extract: ExtractLMF, PositionalRanks: true}
)

// FormatByName returns the format registered under name.
func FormatByName(name string) (Format, error) {
	switch strings.ToLower(name) {
	case FormatCDB.Name:
		return FormatCDB, nil
	case FormatLMF.Name:
		return FormatLMF, nil
	}
	return Format{}, fmt.Errorf("unknown source format %q: %w", name, domain.ErrValidation)
}

// Options are the collection-level filters.
type Options struct {
	// AllowedPrefixes limits kept senses by the first character of their id.
	// Empty allows every prefix.
	AllowedPrefixes []string
	// ExcludeSubNumbered rejects sense ids containing "_sub_".
	ExcludeSubNumbered bool
}

// Stats holds collection statistics for logging.
type Stats struct {
	Elements int
	Kept     int
	ByReason map[domain.Rejection]int
}

// Rejected returns the total number of rejected elements.
func (s Stats) Rejected() int {
	total := 0
	for _, n := range s.ByReason {
		total += n
	}
	return total
}

// Collection is the keyed result of one extraction pass.
type Collection struct {
	Lexicon  *domain.Lexicon
	Rejected map[string]domain.Rejection // sense id → first reason
	Stats    Stats
}

// Collect extracts every node in document order. The first schema error
// aborts the pass.
func Collect(nodes []xmlnode.Node, format Format, opts Options) (*Collection, error) {
	c := &Collection{
		Lexicon:  domain.NewLexicon(),
		Rejected: make(map[string]domain.Rejection),
		Stats:    Stats{ByReason: make(map[domain.Rejection]int)},
	}
	type groupKey struct {
		lemma string
		pos   domain.PartOfSpeech
	}
	positions := make(map[groupKey]int)

	for _, n := range nodes {
		c.Stats.Elements++

		res, err := format.Extract(n)
		if err != nil {
			return nil, fmt.Errorf("extract %s element %d: %w", format.Name, c.Stats.Elements, err)
		}
		e := res.Entry

		if res.Keep() && len(opts.AllowedPrefixes) > 0 && !slices.Contains(opts.AllowedPrefixes, e.Prefix()) {
			res.reject(domain.RejectPrefixNotAllowed)
		}
		if res.Keep() && opts.ExcludeSubNumbered && strings.Contains(e.SenseID, "_sub_") {
			res.reject(domain.RejectSubNumbered)
		}

		if !res.Keep() {
			c.Rejected[e.SenseID] = res.Reason
			c.Stats.ByReason[res.Reason]++
			continue
		}

		if format.PositionalRanks {
			key := groupKey{lemma: e.Lemma, pos: e.PartOfSpeech}
			positions[key]++
			e.SenseRank = positions[key]
		}

		if err := c.Lexicon.AddEntry(e); err != nil {
			return nil, domain.NewSchemaError(e.SenseID, "sense_id", e.SenseID, "sense id is not unique")
		}
		c.Stats.Kept++
	}

	return c, nil
}

// Load parses the document at path and collects its entries.
func Load(path string, format Format, opts Options) (*Collection, error) {
	doc, err := xmlnode.ParseFile(path)
	if err != nil {
		return nil, err
	}
	nodes, err := doc.Select(format.EntryPath)
	if err != nil {
		return nil, err
	}
	return Collect(nodes, format, opts)
}
