package converter

import (
	"github.com/heartmarshall/rbn-lexicon/internal/config"
	"github.com/heartmarshall/rbn-lexicon/internal/export/lemon"
)

// Config holds everything one conversion run reads and writes.
// Empty optional paths make their phase record zero work.
type Config struct {
	InputPath          string
	Format             string
	AllowedPrefixes    []string
	ExcludeSubNumbered bool

	SynsetsPath string // optional
	LinkPath    string // optional

	OutputPath string

	LemonOutputPath string // optional
	Lemon           lemon.Options
}

// FromConfig derives a run Config from the application configuration.
func FromConfig(cfg *config.Config) Config {
	return Config{
		InputPath:          cfg.Convert.InputPath,
		Format:             cfg.Convert.Format,
		AllowedPrefixes:    cfg.Convert.AllowedPrefixes,
		ExcludeSubNumbered: cfg.Convert.ExcludeSubNumbered,
		SynsetsPath:        cfg.Convert.SynsetsPath,
		LinkPath:           cfg.Convert.LinkPath,
		OutputPath:         cfg.Convert.OutputPath,
		LemonOutputPath:    cfg.Lemon.OutputPath,
		Lemon:              LemonOptions(cfg.Lemon),
	}
}

// LemonOptions converts the lemon config section to exporter options.
func LemonOptions(cfg config.LemonConfig) lemon.Options {
	return lemon.Options{
		Namespace:      cfg.Namespace,
		ShortNamespace: cfg.ShortNamespace,
		MajorVersion:   cfg.MajorVersion,
		MinorVersion:   cfg.MinorVersion,
		Language:       cfg.Language,
	}
}
