package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/rbn-lexicon/internal/app"
	"github.com/heartmarshall/rbn-lexicon/internal/config"
)

// cli holds what every subcommand shares once the root has run.
type cli struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	cfg        *config.Config
	log        *slog.Logger
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rbnconv",
		Short:         "Convert the Dutch reference lexicon into a linked lexicon store",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.log = app.NewLogger(c.stderr, cfg.Log)
			return nil
		},
	}
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to YAML config file (default: $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		c.convertCmd(),
		c.lemonCmd(),
		c.mappingCmd(),
		c.statsCmd(),
		c.lexemesCmd(),
		c.publishCmd(),
		c.lookupCmd(),
	)
	return root
}

// revalidate re-runs config validation after flag overrides.
func (c *cli) revalidate() error {
	if err := c.cfg.Validate(); err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}
	return nil
}

// CLI flags override config only when given explicitly.

func overrideString(cmd *cobra.Command, name string, dst *string) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetString(name)
	}
}

func overrideInt(cmd *cobra.Command, name string, dst *int) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetInt(name)
	}
}

func overrideBool(cmd *cobra.Command, name string, dst *bool) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetBool(name)
	}
}
