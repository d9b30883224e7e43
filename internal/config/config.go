package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/medsupp/appformat/internal/model"
	"github.com/medsupp/appformat/internal/refdata"
)

// Config holds all runtime configuration for an appformat run.
type Config struct {
	ProducerConfig string        `mapstructure:"APPFORMAT_PRODUCER_CONFIG"`
	ZipTable       string        `mapstructure:"APPFORMAT_ZIP_TABLE"`
	NAICDirectory  string        `mapstructure:"APPFORMAT_NAIC_DIRECTORY"`
	RoutingURL     string        `mapstructure:"APPFORMAT_ROUTING_URL"`
	RoutingTimeout time.Duration `mapstructure:"APPFORMAT_ROUTING_TIMEOUT"`
	CacheSize      int           `mapstructure:"APPFORMAT_CACHE_SIZE"`
	LogFormat      string        `mapstructure:"APPFORMAT_LOG_FORMAT"` // "text" or "json"
	LogLevel       string        `mapstructure:"APPFORMAT_LOG_LEVEL"`
	DSN            string        `mapstructure:"DATABASE_URL"`

	// Per-invocation inputs, set from flags.
	FilePath      string
	ApplicationID string
	Carrier       string
	SkipBankName  bool
	Raw           bool

	// NAICCarriers extends the built-in NAIC to carrier map.
	NAICCarriers map[string]string `yaml:"naic_carriers"`
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	NAICCarriers map[string]string `yaml:"naic_carriers"`
}

// flagKeys binds command-line flags to their environment keys. A flag that
// was set wins over the environment, which wins over the defaults.
var flagKeys = map[string]string{
	"producer-config": "APPFORMAT_PRODUCER_CONFIG",
	"zip-table":       "APPFORMAT_ZIP_TABLE",
	"naic-directory":  "APPFORMAT_NAIC_DIRECTORY",
	"routing-url":     "APPFORMAT_ROUTING_URL",
	"routing-timeout": "APPFORMAT_ROUTING_TIMEOUT",
	"cache-size":      "APPFORMAT_CACHE_SIZE",
	"log-format":      "APPFORMAT_LOG_FORMAT",
	"log-level":       "APPFORMAT_LOG_LEVEL",
	"dsn":             "DATABASE_URL",
}

// Load reads configuration from flags and the environment, applying
// defaults. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APPFORMAT_PRODUCER_CONFIG", "producer_config.json")
	v.SetDefault("APPFORMAT_ZIP_TABLE", "data/zips.json")
	v.SetDefault("APPFORMAT_NAIC_DIRECTORY", "data/naic_directory.json")
	v.SetDefault("APPFORMAT_ROUTING_URL", "https://www.routingnumbers.info")
	v.SetDefault("APPFORMAT_ROUTING_TIMEOUT", "3s")
	v.SetDefault("APPFORMAT_CACHE_SIZE", 1024)
	v.SetDefault("APPFORMAT_LOG_FORMAT", "text")
	v.SetDefault("APPFORMAT_LOG_LEVEL", "info")

	for _, key := range flagKeys {
		_ = v.BindEnv(key)
	}
	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// LoadFromFile reads a YAML overrides file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.NAICCarriers = yc.NAICCarriers
	return c.validateNAICCarriers()
}

// validateNAICCarriers checks that every override names a known carrier.
func (c *Config) validateNAICCarriers() error {
	for naic, name := range c.NAICCarriers {
		if _, ok := model.CarrierByName(name); !ok {
			return fmt.Errorf("unknown carrier %q for naic %s in config", name, naic)
		}
	}
	return nil
}

// Carriers returns the NAIC to carrier map with file overrides applied.
func (c *Config) Carriers() model.NAICCarriers {
	m := model.DefaultNAICCarriers()
	for naic, name := range c.NAICCarriers {
		if carrier, ok := model.CarrierByName(name); ok {
			m[naic] = carrier
		}
	}
	return m
}

// RefPaths returns the reference file locations.
func (c *Config) RefPaths() refdata.Paths {
	return refdata.Paths{
		Producer:      c.ProducerConfig,
		ZipTable:      c.ZipTable,
		NAICDirectory: c.NAICDirectory,
	}
}

// Validate checks that exactly one application source was given.
func (c *Config) Validate() error {
	if c.FilePath == "" && c.ApplicationID == "" {
		return fmt.Errorf("one of --file or --id is required")
	}
	if c.FilePath != "" && c.ApplicationID != "" {
		return fmt.Errorf("--file and --id are mutually exclusive")
	}
	if c.FilePath != "" {
		if _, err := os.Stat(c.FilePath); err != nil {
			return fmt.Errorf("file not accessible: %w", err)
		}
	}
	if c.Carrier != "" {
		if _, ok := model.CarrierByName(c.Carrier); !ok {
			return fmt.Errorf("unsupported carrier: %s", c.Carrier)
		}
	}
	return nil
}

// ValidateWithDSN additionally requires a DSN when reading from the database.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ApplicationID != "" && c.DSN == "" {
		return fmt.Errorf("--dsn or DATABASE_URL is required with --id")
	}
	return nil
}
