// Package converter runs the ORBN conversion phases in their fixed order:
// extract → filter → link → store → lemon.
package converter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
	"github.com/heartmarshall/rbn-lexicon/internal/export/lemon"
	"github.com/heartmarshall/rbn-lexicon/internal/lexicon/consistency"
	"github.com/heartmarshall/rbn-lexicon/internal/lexicon/extract"
	"github.com/heartmarshall/rbn-lexicon/internal/lexicon/phrasal"
	"github.com/heartmarshall/rbn-lexicon/internal/lexicon/reconcile"
	"github.com/heartmarshall/rbn-lexicon/internal/lexicon/xmlnode"
	"github.com/heartmarshall/rbn-lexicon/internal/store"
	"github.com/heartmarshall/rbn-lexicon/pkg/ctxutil"
)

// Phase names in execution order.
const (
	PhaseExtract = "extract"
	PhaseFilter  = "filter"
	PhaseLink    = "link"
	PhaseStore   = "store"
	PhaseLemon   = "lemon"
)

var allPhases = []string{PhaseExtract, PhaseFilter, PhaseLink, PhaseStore, PhaseLemon}

// Phases returns the phase names in execution order.
func Phases() []string { return append([]string(nil), allPhases...) }

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Processed int // elements, entries or references examined
	Kept      int // entries retained or linked
	Skipped   int // entries rejected or references not applied
	Written   int // entries persisted or exported
	Duration  time.Duration
	Err       error
}

// Pipeline holds the working Lexicon between phases.
type Pipeline struct {
	log     *slog.Logger
	cfg     Config
	lex     *domain.Lexicon
	results map[string]PhaseResult

	rejected map[string]domain.Rejection
	phrasal  phrasal.Index
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, cfg Config) *Pipeline {
	return &Pipeline{
		log:      log,
		cfg:      cfg,
		results:  make(map[string]PhaseResult),
		rejected: make(map[string]domain.Rejection),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult { return p.results }

// Lexicon returns the working Lexicon; nil before extraction.
func (p *Pipeline) Lexicon() *domain.Lexicon { return p.lex }

// Rejected returns sense id → reason for every entry not retained,
// including entries removed for inconsistent ranks.
func (p *Pipeline) Rejected() map[string]domain.Rejection { return p.rejected }

// PhrasalIndex returns the phrasal-verb index built after filtering.
func (p *Pipeline) PhrasalIndex() phrasal.Index { return p.phrasal }

// Run executes every phase in order. The first failing phase aborts the run,
// so no output is written after a fatal condition.
func (p *Pipeline) Run(ctx context.Context) error {
	log := ctxutil.Logger(ctx, p.log)

	if err := p.checkOutputs(); err != nil {
		log.Error("invalid run config", slog.String("error", err.Error()))
		return fmt.Errorf("before phase %s: %w", PhaseExtract, err)
	}

	for _, phase := range allPhases {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("before phase %s: %w", phase, err)
		}

		start := time.Now()
		log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case PhaseExtract:
			result = p.runExtract(log)
		case PhaseFilter:
			result = p.runFilter()
		case PhaseLink:
			result = p.runLink(log)
		case PhaseStore:
			result = p.runStore()
		case PhaseLemon:
			result = p.runLemon()
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			log.Error("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			return fmt.Errorf("phase %s: %w", phase, result.Err)
		}
		log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("processed", result.Processed),
			slog.Int("kept", result.Kept),
			slog.Int("skipped", result.Skipped),
			slog.Int("written", result.Written),
			slog.Duration("duration", result.Duration),
		)
	}

	log.Info("pipeline completed",
		slog.Int("senses", len(p.lex.Entries)),
		slog.Int("synsets", len(p.lex.Synsets)),
		slog.Int("rejected", len(p.rejected)),
	)
	return nil
}

// checkOutputs rejects output settings that would only fail once earlier
// phases had already written their files.
func (p *Pipeline) checkOutputs() error {
	if p.cfg.LemonOutputPath == "" {
		return nil
	}
	return p.cfg.Lemon.Validate()
}

func (p *Pipeline) runExtract(log *slog.Logger) PhaseResult {
	format, err := extract.FormatByName(p.cfg.Format)
	if err != nil {
		return PhaseResult{Err: err}
	}
	if p.cfg.InputPath == "" {
		return PhaseResult{Err: domain.NewValidationError("input", "input path is required")}
	}

	c, err := extract.Load(p.cfg.InputPath, format, extract.Options{
		AllowedPrefixes:    p.cfg.AllowedPrefixes,
		ExcludeSubNumbered: p.cfg.ExcludeSubNumbered,
	})
	if err != nil {
		return PhaseResult{Err: err}
	}

	p.lex = c.Lexicon
	for id, reason := range c.Rejected {
		p.rejected[id] = reason
	}
	for reason, n := range c.Stats.ByReason {
		log.Info("entries rejected", slog.String("reason", string(reason)), slog.Int("count", n))
	}
	return PhaseResult{Processed: c.Stats.Elements, Kept: c.Stats.Kept, Skipped: c.Stats.Rejected()}
}

func (p *Pipeline) runFilter() PhaseResult {
	before := len(p.lex.Entries)
	removed := consistency.Filter(p.lex)
	for id := range removed {
		p.rejected[id] = domain.RejectInconsistentRank
	}

	p.phrasal = phrasal.BuildIndex(p.lex.Entries)
	stats := p.phrasal.Stats()
	p.log.Debug("phrasal index built",
		slog.Int("phrasal_entries", stats.PhrasalEntries),
		slog.Int("verb_heads", stats.VerbHeads),
	)

	return PhaseResult{Processed: before, Kept: len(p.lex.Entries), Skipped: len(removed)}
}

func (p *Pipeline) runLink(log *slog.Logger) PhaseResult {
	if p.cfg.SynsetsPath == "" {
		return PhaseResult{}
	}

	doc, err := xmlnode.ParseFile(p.cfg.SynsetsPath)
	if err != nil {
		return PhaseResult{Err: err}
	}
	synsets, err := extract.Synsets(doc)
	if err != nil {
		return PhaseResult{Err: err}
	}
	for _, id := range lo.Keys(synsets) {
		if err := p.lex.AddSynset(synsets[id]); err != nil {
			return PhaseResult{Err: err}
		}
	}
	log.Info("synsets loaded", slog.Int("count", len(synsets)))

	if p.cfg.LinkPath == "" {
		return PhaseResult{}
	}
	linkDoc, err := xmlnode.ParseFile(p.cfg.LinkPath)
	if err != nil {
		return PhaseResult{Err: err}
	}
	refs, err := reconcile.References(linkDoc)
	if err != nil {
		return PhaseResult{Err: err}
	}
	stats, err := reconcile.Reconcile(p.lex, refs, log)
	if err != nil {
		return PhaseResult{Err: err}
	}
	log.Info("references reconciled",
		slog.Int("sentinel", stats.Sentinel),
		slog.Int("missing_synset", stats.MissingSynset),
		slog.Int("unknown_sense", stats.UnknownSense),
	)
	return PhaseResult{
		Processed: stats.References,
		Kept:      stats.Linked,
		Skipped:   stats.References - stats.Linked,
	}
}

func (p *Pipeline) runStore() PhaseResult {
	if p.cfg.OutputPath == "" {
		return PhaseResult{}
	}
	if err := store.Save(p.cfg.OutputPath, p.lex); err != nil {
		return PhaseResult{Err: err}
	}
	return PhaseResult{Processed: len(p.lex.Entries), Written: len(p.lex.Entries)}
}

func (p *Pipeline) runLemon() PhaseResult {
	if p.cfg.LemonOutputPath == "" {
		return PhaseResult{}
	}
	stats, err := lemon.WriteFile(p.cfg.LemonOutputPath, p.lex, p.cfg.Lemon)
	if err != nil {
		return PhaseResult{Err: err}
	}
	return PhaseResult{Processed: len(p.lex.Entries), Written: stats.Entries}
}
