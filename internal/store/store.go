// Package store persists a reconciled Lexicon as a gzip-compressed gob blob.
//
// Synset synonyms are written as sense ids and resolved back to the owning
// entries on load, so back-references survive as shared pointers.
package store

import (
	"compress/gzip"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
)

// formatVersion is bumped whenever the record layout changes.
const formatVersion = 1

var ErrVersionMismatch = errors.New("store: unsupported format version")

type snapshot struct {
	Version int
	Entries []*domain.LexicalEntry
	Synsets []synsetRecord
}

type synsetRecord struct {
	SynsetID          string
	InterlingualIndex string
	Definition        string
	SynonymIDs        []string
}

// Encode writes lex to w.
func Encode(w io.Writer, lex *domain.Lexicon) error {
	snap := snapshot{
		Version: formatVersion,
		Entries: make([]*domain.LexicalEntry, 0, len(lex.Entries)),
		Synsets: make([]synsetRecord, 0, len(lex.Synsets)),
	}
	for _, id := range lex.SenseIDs() {
		snap.Entries = append(snap.Entries, lex.Entries[id])
	}
	for _, id := range lex.SynsetIDs() {
		s := lex.Synsets[id]
		snap.Synsets = append(snap.Synsets, synsetRecord{
			SynsetID:          s.SynsetID,
			InterlingualIndex: s.InterlingualIndex,
			Definition:        s.Definition,
			SynonymIDs:        s.SynonymIDs(),
		})
	}

	zw := gzip.NewWriter(w)
	if err := gob.NewEncoder(zw).Encode(&snap); err != nil {
		return fmt.Errorf("encode lexicon: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("flush lexicon: %w", err)
	}
	return nil
}

// Decode reads a Lexicon written by Encode.
func Decode(r io.Reader) (*domain.Lexicon, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer zr.Close()

	var snap snapshot
	if err := gob.NewDecoder(zr).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode lexicon: %w", err)
	}
	if snap.Version != formatVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersionMismatch, snap.Version)
	}

	lex := domain.NewLexicon()
	for _, e := range snap.Entries {
		// gob drops nil-vs-empty distinctions; restore the verb coupling.
		if e.PartOfSpeech == domain.PartOfSpeechVerb && e.Verb == nil {
			e.Verb = &domain.VerbFeatures{}
		}
		if err := lex.AddEntry(e); err != nil {
			return nil, err
		}
	}
	for _, rec := range snap.Synsets {
		s := &domain.Synset{
			SynsetID:          rec.SynsetID,
			InterlingualIndex: rec.InterlingualIndex,
			Definition:        rec.Definition,
		}
		for _, id := range rec.SynonymIDs {
			e, ok := lex.Entries[id]
			if !ok {
				return nil, fmt.Errorf("synset %s: synonym %s: %w", rec.SynsetID, id, domain.ErrNotFound)
			}
			s.AddSynonym(e)
		}
		if err := lex.AddSynset(s); err != nil {
			return nil, err
		}
	}
	return lex, nil
}

// Save writes lex to path. The file is replaced only once the whole blob
// has been written.
func Save(path string, lex *domain.Lexicon) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create store file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, lex); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

// Load reads the Lexicon stored at path.
func Load(path string) (*domain.Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
