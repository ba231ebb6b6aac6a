package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	Convert  ConvertConfig  `yaml:"convert"`
	Lemon    LemonConfig    `yaml:"lemon"`
	Publish  PublishConfig  `yaml:"publish"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// DatabaseConfig holds PostgreSQL connection settings. Only the catalog
// commands connect, so DSN is checked by RequireDSN rather than on load.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// ConvertConfig holds the XML → store conversion settings.
type ConvertConfig struct {
	InputPath          string `yaml:"input"                env:"CONVERT_INPUT"`
	Format             string `yaml:"format"               env:"CONVERT_FORMAT"               env-default:"cdb"`
	SynsetsPath        string `yaml:"synsets"              env:"CONVERT_SYNSETS"`
	LinkPath           string `yaml:"link"                 env:"CONVERT_LINK"`
	OutputPath         string `yaml:"output"               env:"CONVERT_OUTPUT"               env-default:"output/orbn.bin"`
	AllowedPrefixesRaw string `yaml:"allowed_prefixes"     env:"CONVERT_ALLOWED_PREFIXES"     env-default:"r+c"`
	ExcludeSubNumbered bool   `yaml:"exclude_sub_numbered" env:"CONVERT_EXCLUDE_SUB_NUMBERED" env-default:"true"`

	// AllowedPrefixes is parsed from AllowedPrefixesRaw during validation.
	AllowedPrefixes []string `yaml:"-" env:"-"`
}

// LemonConfig holds the RDF export settings.
type LemonConfig struct {
	OutputPath     string `yaml:"output"          env:"LEMON_OUTPUT"`
	Namespace      string `yaml:"namespace"       env:"LEMON_NAMESPACE"       env-default:"http://premon.fbk.eu/resource/"`
	ShortNamespace string `yaml:"short_namespace" env:"LEMON_SHORT_NAMESPACE" env-default:"pm"`
	MajorVersion   int    `yaml:"major_version"   env:"LEMON_MAJOR_VERSION"   env-default:"1"`
	MinorVersion   int    `yaml:"minor_version"   env:"LEMON_MINOR_VERSION"   env-default:"0"`
	Language       string `yaml:"language"        env:"LEMON_LANGUAGE"        env-default:"nld"`
}

// PublishConfig holds catalog publishing settings.
type PublishConfig struct {
	BatchSize int           `yaml:"batch_size" env:"PUBLISH_BATCH_SIZE" env-default:"500"`
	Timeout   time.Duration `yaml:"timeout"    env:"PUBLISH_TIMEOUT"    env-default:"30m"`
}
