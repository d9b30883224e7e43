package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medsupp/appformat/internal/config"
	"github.com/medsupp/appformat/internal/formatter"
	"github.com/medsupp/appformat/internal/refdata"
	"github.com/medsupp/appformat/internal/routing"
)

var (
	cfg        *config.Config
	configFile string
)

var rootCmd = &cobra.Command{
	Use:               "appformat",
	Short:             "Medicare supplement application → carrier payload formatter",
	Long:              "Reshapes intake applications into UnitedHealthcare, Aetna, Allstate and Chubb/ACE submission documents.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("dsn", "", "Postgres connection string (or set DATABASE_URL)")
	pf.String("log-format", "", "Log format: text or json (default text)")
	pf.String("log-level", "", "Log level: debug, info, warn, error (default info)")
	pf.String("producer-config", "", "Producer profile JSON (or set APPFORMAT_PRODUCER_CONFIG)")
	pf.String("zip-table", "", "Zip to city/state table JSON (or set APPFORMAT_ZIP_TABLE)")
	pf.String("naic-directory", "", "Company name to NAIC directory JSON (or set APPFORMAT_NAIC_DIRECTORY)")
	pf.String("routing-url", "", "Bank routing-number lookup base URL")
	pf.Duration("routing-timeout", 0, "Bank lookup timeout (default 3s)")
	pf.Int("cache-size", 0, "Bank lookup cache entries (default 1024)")
	pf.StringVar(&configFile, "config", "", "YAML overrides file (naic_carriers)")
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	if configFile != "" {
		if err := c.LoadFromFile(configFile); err != nil {
			return fmt.Errorf("load %s: %w", configFile, err)
		}
	}
	cfg = c
	return nil
}

// openRefs loads the reference tables once for the whole run. Missing files
// degrade lookups to empty results rather than stopping the run.
func openRefs(log zerolog.Logger) *refdata.Store {
	refs, err := refdata.Open(cfg.RefPaths(), log)
	if err != nil {
		log.Warn().Err(err).Msg("some reference data failed to load, lookups will return empty results")
	}
	return refs
}

func newRoutingClient() *routing.Client {
	return routing.New(routing.Options{
		BaseURL:   cfg.RoutingURL,
		Timeout:   cfg.RoutingTimeout,
		CacheSize: cfg.CacheSize,
	})
}

// newFormatter wires the formatter to the reference store and, unless
// disabled, the bank lookup.
func newFormatter(refs *refdata.Store, log zerolog.Logger, skipBankName bool) *formatter.Formatter {
	var banks formatter.BankLookup
	if !skipBankName {
		banks = newRoutingClient()
	}
	return formatter.New(refs, banks, log).WithBankTimeout(cfg.RoutingTimeout)
}
