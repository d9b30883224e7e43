package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medsupp/appformat/internal/appstore"
	"github.com/medsupp/appformat/internal/db"
	"github.com/medsupp/appformat/internal/exitcode"
	"github.com/medsupp/appformat/internal/formatter"
	"github.com/medsupp/appformat/internal/logging"
	"github.com/medsupp/appformat/internal/model"
	"github.com/medsupp/appformat/internal/present"
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Format one application for its carrier",
	Long:  "Reads an application from a JSON file or from the database by id and prints the carrier document as JSON.",
	RunE:  runFormat,
}

var formatOpts struct {
	file         string
	id           string
	carrier      string
	raw          bool
	skipBankName bool
}

func init() {
	f := formatCmd.Flags()
	f.StringVar(&formatOpts.file, "file", "", "Path to an application record JSON file")
	f.StringVar(&formatOpts.id, "id", "", "Application id to read from the database")
	f.StringVar(&formatOpts.carrier, "carrier", "", "Carrier override (default: inferred from the application NAIC)")
	f.BoolVar(&formatOpts.raw, "raw", false, "Print the bare carrier document without NA fill or metadata")
	f.BoolVar(&formatOpts.skipBankName, "skip-bank-name", false, "Do not look up bank names for routing numbers")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := cmd.Context()

	cfg.FilePath = formatOpts.file
	cfg.ApplicationID = formatOpts.id
	cfg.Carrier = formatOpts.carrier
	cfg.Raw = formatOpts.raw
	cfg.SkipBankName = formatOpts.skipBankName

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	app, err := loadApplication(ctx, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to load application")
		switch {
		case errors.Is(err, appstore.ErrApplicationNotFound):
			os.Exit(exitcode.NotFound)
		case errors.Is(err, errDatabase):
			os.Exit(exitcode.DBConnError)
		default:
			os.Exit(exitcode.ValidationError)
		}
	}

	carrier, err := resolveCarrier(app)
	if err != nil {
		log.Error().Err(err).Msg("cannot determine carrier")
		os.Exit(exitcode.ValidationError)
	}

	refs := openRefs(log)
	f := newFormatter(refs, log, cfg.SkipBankName)

	doc, err := f.Format(ctx, app, carrier)
	if err != nil {
		// The formatter has already logged the failure with its context.
		os.Exit(formatExitCode(err))
	}

	var out any = doc
	if !cfg.Raw {
		out = present.New().Wrap(app, carrier, doc)
	}
	if err := writeJSON(os.Stdout, out); err != nil {
		log.Error().Err(err).Msg("failed to write output")
		os.Exit(exitcode.FormatError)
	}
	return nil
}

var errDatabase = errors.New("database unavailable")

// loadApplication reads the record named by --file or --id.
func loadApplication(ctx context.Context, log zerolog.Logger) (*model.Application, error) {
	if cfg.FilePath != "" {
		return readApplicationFile(cfg.FilePath)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errDatabase, err)
	}
	defer pool.Close()

	log.Debug().Str("application_id", cfg.ApplicationID).Msg("fetching application")
	return appstore.New(pool).GetApplication(ctx, cfg.ApplicationID)
}

func readApplicationFile(path string) (*model.Application, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read application file: %w", err)
	}
	var app model.Application
	if err := json.Unmarshal(b, &app); err != nil {
		return nil, fmt.Errorf("decode application file %s: %w", path, err)
	}
	return &app, nil
}

// resolveCarrier honors --carrier, otherwise maps the application's NAIC.
func resolveCarrier(app *model.Application) (model.Carrier, error) {
	if cfg.Carrier != "" {
		c, ok := model.CarrierByName(cfg.Carrier)
		if !ok {
			return "", fmt.Errorf("%w: %q", formatter.ErrUnsupportedCarrier, cfg.Carrier)
		}
		return c, nil
	}
	c, ok := cfg.Carriers().Carrier(app.NAIC)
	if !ok {
		return "", fmt.Errorf("unsupported NAIC number: %q", app.NAIC)
	}
	return c, nil
}

// formatExitCode maps a formatter failure to a process exit code. Input
// problems the caller can fix are validation errors.
func formatExitCode(err error) int {
	var fe *formatter.FormatError
	if errors.As(err, &fe) {
		switch fe.Stage {
		case formatter.StageDispatch, formatter.StageEligibility:
			return exitcode.ValidationError
		}
	}
	return exitcode.FormatError
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
