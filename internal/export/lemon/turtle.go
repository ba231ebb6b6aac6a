package lemon

import (
	"fmt"
	"io"
	"net/url"

	"github.com/knakk/rdf"
)

// Namespaces bound in every exported graph.
const (
	NSLemon   = "http://lemon-model.net/lemon#"
	NSDCT     = "http://purl.org/dc/terms/"
	NSLexinfo = "http://www.lexinfo.net/ontology/3.0/lexinfo#"
	NSRDF     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSRDFS    = "http://www.w3.org/2000/01/rdf-schema#"
	NSXSD     = "http://www.w3.org/2001/XMLSchema#"
)

var prefixes = []struct{ name, iri string }{
	{"dct", NSDCT},
	{"lemon", NSLemon},
	{"lexinfo", NSLexinfo},
	{"rdf", NSRDF},
	{"rdfs", NSRDFS},
	{"xsd", NSXSD},
}

var (
	rdfType            = mustIRI(NSRDF + "type")
	rdfsLabel          = mustIRI(NSRDFS + "label")
	rdfsIsDefinedBy    = mustIRI(NSRDFS + "isDefinedBy")
	dctIdentifier      = mustIRI(NSDCT + "identifier")
	xsdDecimal         = mustIRI(NSXSD + "decimal")
	lexinfoPOS         = mustIRI(NSLexinfo + "partOfSpeech")
	lemonLexicon       = mustIRI(NSLemon + "Lexicon")
	lemonLexicalEntry  = mustIRI(NSLemon + "LexicalEntry")
	lemonForm          = mustIRI(NSLemon + "Form")
	lemonLexicalSense  = mustIRI(NSLemon + "LexicalSense")
	lemonLanguage      = mustIRI(NSLemon + "language")
	lemonCanonicalForm = mustIRI(NSLemon + "canonicalForm")
	lemonSense         = mustIRI(NSLemon + "sense")
	lemonWrittenRep    = mustIRI(NSLemon + "writtenRep")
	lemonIsSenseOf     = mustIRI(NSLemon + "isSenseOf")
	lemonDefinition    = mustIRI(NSLemon + "definition")
)

func mustIRI(s string) rdf.IRI {
	iri, err := rdf.NewIRI(s)
	if err != nil {
		panic(err)
	}
	return iri
}

// escapeIRISegment percent-encodes everything outside the unreserved set
// and the sub-delimiters allowed in a path segment.
func escapeIRISegment(s string) string { return url.PathEscape(s) }

func isReservedPrefix(name string) bool {
	for _, p := range prefixes {
		if p.name == name {
			return true
		}
	}
	return false
}

// graphWriter encodes triples as turtle. The first error is kept and
// returned by Close; later calls are no-ops.
type graphWriter struct {
	enc *rdf.TripleEncoder
	err error
}

// newGraphWriter binds the fixed prefixes, and the resource namespace under
// short when it is set.
func newGraphWriter(w io.Writer, short, namespace string) *graphWriter {
	enc := rdf.NewTripleEncoder(w, rdf.Turtle)
	for _, p := range prefixes {
		enc.Namespaces[p.iri] = p.name
	}
	if short != "" {
		enc.Namespaces[namespace] = short
	}
	return &graphWriter{enc: enc}
}

func (g *graphWriter) iri(s string) rdf.IRI {
	if g.err != nil {
		return rdf.IRI{}
	}
	iri, err := rdf.NewIRI(s)
	if err != nil {
		g.err = fmt.Errorf("iri %q: %w", s, err)
	}
	return iri
}

func (g *graphWriter) literal(s string) rdf.Literal {
	if g.err != nil {
		return rdf.Literal{}
	}
	lit, err := rdf.NewLiteral(s)
	if err != nil {
		g.err = fmt.Errorf("literal %q: %w", s, err)
	}
	return lit
}

func (g *graphWriter) langLiteral(s, lang string) rdf.Literal {
	if g.err != nil {
		return rdf.Literal{}
	}
	lit, err := rdf.NewLangLiteral(s, lang)
	if err != nil {
		g.err = fmt.Errorf("literal %q@%s: %w", s, lang, err)
	}
	return lit
}

func (g *graphWriter) add(s rdf.Subject, p rdf.Predicate, o rdf.Object) {
	if g.err != nil {
		return
	}
	if err := g.enc.Encode(rdf.Triple{Subj: s, Pred: p, Obj: o}); err != nil {
		g.err = err
	}
}

// Close flushes the encoder.
func (g *graphWriter) Close() error {
	if err := g.enc.Close(); g.err == nil && err != nil {
		g.err = err
	}
	return g.err
}
