package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// KnownPrefixes are the resource prefixes a sense id can start with.
var KnownPrefixes = []string{"r", "c", "o", "t"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Convert.validate(); err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	if err := c.Lemon.validate(); err != nil {
		return fmt.Errorf("lemon: %w", err)
	}
	if c.Publish.BatchSize < 1 || c.Publish.BatchSize > 10000 {
		return fmt.Errorf("publish.batch_size must be between 1 and 10000 (got %d)", c.Publish.BatchSize)
	}
	if c.Publish.Timeout <= 0 {
		return fmt.Errorf("publish.timeout must be > 0 (got %v)", c.Publish.Timeout)
	}
	return nil
}

// RequireDSN reports an error when no database is configured.
func (d DatabaseConfig) RequireDSN() error {
	if d.DSN == "" {
		return errors.New("database.dsn is required (set DATABASE_DSN)")
	}
	if d.MinConns > d.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", d.MinConns, d.MaxConns)
	}
	return nil
}

func (c *ConvertConfig) validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format != "cdb" && c.Format != "lmf" {
		return fmt.Errorf("format must be cdb or lmf (got %q)", c.Format)
	}

	prefixes, err := ParseAllowedPrefixes(c.AllowedPrefixesRaw)
	if err != nil {
		return fmt.Errorf("allowed_prefixes: %w", err)
	}
	c.AllowedPrefixes = prefixes
	return nil
}

func (l *LemonConfig) validate() error {
	if l.Namespace == "" {
		return errors.New("namespace is required")
	}
	if l.Language != "nld" {
		return fmt.Errorf("language must be nld (got %q)", l.Language)
	}
	if l.MajorVersion < 0 || l.MinorVersion < 0 {
		return fmt.Errorf("version must not be negative (got %d.%d)", l.MajorVersion, l.MinorVersion)
	}
	return nil
}

// ParseAllowedPrefixes parses a "+"-separated prefix list such as "r+c".
// Duplicates are dropped; an empty string allows every prefix and returns nil.
func ParseAllowedPrefixes(raw string) ([]string, error) {
	var prefixes []string
	for _, p := range strings.Split(raw, "+") {
		p = strings.TrimSpace(p)
		if p == "" || slices.Contains(prefixes, p) {
			continue
		}
		if !slices.Contains(KnownPrefixes, p) {
			return nil, fmt.Errorf("unknown prefix %q, expected one of %s", p, strings.Join(KnownPrefixes, "|"))
		}
		prefixes = append(prefixes, p)
	}
	return prefixes, nil
}
