// Package lemon exports a Lexicon as an RDF graph in the Lemon model,
// serialized as turtle, and reads back the sense index of such a file.
package lemon

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"regexp"
	"strconv"

	"github.com/knakk/rdf"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
)

// Language is the only language tag the resource is published in.
const Language = "nld"

// PartOfSpeechIRIs maps a part of speech to its LexInfo value. "other" has
// no LexInfo counterpart and its entries carry no partOfSpeech triple.
var PartOfSpeechIRIs = map[domain.PartOfSpeech]string{
	domain.PartOfSpeechVerb:      NSLexinfo + "verb",
	domain.PartOfSpeechNoun:      NSLexinfo + "noun",
	domain.PartOfSpeechAdjective: NSLexinfo + "adjective",
	domain.PartOfSpeechAdverb:    NSLexinfo + "adverb",
}

// Options describe the exported lexicon resource.
type Options struct {
	Namespace string
	// ShortNamespace, when set, is bound to Namespace in the prefix header.
	ShortNamespace string
	MajorVersion   int
	MinorVersion   int
	Language       string
}

var prefixName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Validate checks the options before anything is written.
func (o Options) Validate() error {
	var errs []domain.FieldError
	u, err := url.Parse(o.Namespace)
	if o.Namespace == "" || err != nil || !u.IsAbs() {
		errs = append(errs, domain.FieldError{Field: "namespace", Message: "must be an absolute IRI"})
	}
	if o.ShortNamespace != "" && (!prefixName.MatchString(o.ShortNamespace) || isReservedPrefix(o.ShortNamespace)) {
		errs = append(errs, domain.FieldError{Field: "short_namespace", Message: fmt.Sprintf("invalid prefix name %q", o.ShortNamespace)})
	}
	if o.MajorVersion < 0 || o.MinorVersion < 0 {
		errs = append(errs, domain.FieldError{Field: "version", Message: "must not be negative"})
	}
	if o.Language != Language {
		errs = append(errs, domain.FieldError{Field: "language", Message: fmt.Sprintf("must be %q", Language)})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Version returns "major.minor".
func (o Options) Version() string {
	return strconv.Itoa(o.MajorVersion) + "." + strconv.Itoa(o.MinorVersion)
}

// LexiconIRI returns the IRI of the lexicon resource itself.
func (o Options) LexiconIRI() string {
	return o.Namespace + "lexicon-" + o.Version()
}

// SenseIRI returns the LexicalSense IRI minted for senseID.
func (o Options) SenseIRI(senseID string) string {
	return o.LexiconIRI() + "-lu-" + escapeIRISegment(senseID)
}

func (o Options) label() string {
	return "Open Referentie Bestand Nederlands versie " + o.Version() +
		": nouns, verbs, and adjectives for senses with prefix c and r"
}

// Stats counts what an export wrote.
type Stats struct {
	Entries     int
	Definitions int
}

// Export writes lex to w as turtle. Entries are written in sense id order
// so the output is reproducible.
func Export(w io.Writer, lex *domain.Lexicon, opts Options) (Stats, error) {
	var stats Stats
	if err := opts.Validate(); err != nil {
		return stats, err
	}

	g := newGraphWriter(w, opts.ShortNamespace, opts.Namespace)
	lexicon := opts.LexiconIRI()
	lexIRI := g.iri(lexicon)
	g.add(lexIRI, rdfType, lemonLexicon)
	g.add(lexIRI, lemonLanguage, g.literal(opts.Language))
	g.add(lexIRI, rdfsLabel, g.literal(opts.label()))
	g.add(lexIRI, dctIdentifier, rdf.NewTypedLiteral(opts.Version(), xsdDecimal))

	for _, id := range lex.SenseIDs() {
		e := lex.Entries[id]
		segment := escapeIRISegment(id)
		le := g.iri(lexicon + "-le-" + segment)
		form := g.iri(lexicon + "-leform-" + segment)
		lu := g.iri(lexicon + "-lu-" + segment)

		g.add(le, rdfType, lemonLexicalEntry)
		if posIRI, ok := PartOfSpeechIRIs[e.PartOfSpeech]; ok {
			g.add(le, lexinfoPOS, g.iri(posIRI))
		}
		g.add(le, lemonCanonicalForm, form)
		g.add(le, lemonSense, lu)

		g.add(form, rdfType, lemonForm)
		g.add(form, rdfsIsDefinedBy, le)
		g.add(form, lemonWrittenRep, g.langLiteral(e.Lemma, opts.Language))

		g.add(lu, rdfType, lemonLexicalSense)
		g.add(lu, dctIdentifier, g.literal(id))
		g.add(lu, lemonIsSenseOf, le)
		if e.Definition != "" {
			g.add(lu, lemonDefinition, g.langLiteral(e.Definition, opts.Language))
			stats.Definitions++
		}
		stats.Entries++
	}

	if err := g.Close(); err != nil {
		return stats, fmt.Errorf("write turtle: %w", err)
	}
	return stats, nil
}

// WriteFile exports lex to path.
func WriteFile(path string, lex *domain.Lexicon, opts Options) (Stats, error) {
	if err := opts.Validate(); err != nil {
		return Stats{}, err
	}
	f, err := os.Create(path)
	if err != nil {
		return Stats{}, fmt.Errorf("create %s: %w", path, err)
	}
	stats, err := Export(f, lex, opts)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close %s: %w", path, cerr)
	}
	return stats, err
}
