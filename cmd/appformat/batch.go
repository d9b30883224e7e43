package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/medsupp/appformat/internal/exitcode"
	"github.com/medsupp/appformat/internal/logging"
	"github.com/medsupp/appformat/internal/model"
	"github.com/medsupp/appformat/internal/present"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Format every application JSON file in a directory",
	Long:  "Formats each *.json application record under --dir in parallel and writes <name>.formatted.json files to --out. A failed application does not stop the others.",
	RunE:  runBatch,
}

var batchOpts struct {
	dir          string
	out          string
	workers      int
	raw          bool
	skipBankName bool
}

func init() {
	f := batchCmd.Flags()
	f.StringVar(&batchOpts.dir, "dir", "", "Directory of application record JSON files (required)")
	f.StringVar(&batchOpts.out, "out", "", "Output directory (required)")
	f.IntVar(&batchOpts.workers, "workers", 4, "Applications formatted concurrently")
	f.BoolVar(&batchOpts.raw, "raw", false, "Write bare carrier documents without NA fill or metadata")
	f.BoolVar(&batchOpts.skipBankName, "skip-bank-name", false, "Do not look up bank names for routing numbers")
	_ = batchCmd.MarkFlagRequired("dir")
	_ = batchCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := cmd.Context()
	start := time.Now()

	matches, err := filepath.Glob(filepath.Join(batchOpts.dir, "*.json"))
	files := matches[:0]
	for _, m := range matches {
		if !strings.HasSuffix(m, ".formatted.json") {
			files = append(files, m)
		}
	}
	if err != nil || len(files) == 0 {
		log.Error().Err(err).Str("dir", batchOpts.dir).Msg("no application files found")
		os.Exit(exitcode.UsageError)
	}
	if err := os.MkdirAll(batchOpts.out, 0o755); err != nil {
		log.Error().Err(err).Msg("cannot create output directory")
		os.Exit(exitcode.UsageError)
	}

	refs := openRefs(log)
	f := newFormatter(refs, log, batchOpts.skipBankName)
	p := present.New()

	summary := &model.BatchSummary{
		Dir:       batchOpts.dir,
		Files:     len(files),
		ByCarrier: make(map[model.Carrier]int64),
	}
	var mu sync.Mutex
	record := func(carrier model.Carrier, ok bool) {
		mu.Lock()
		defer mu.Unlock()
		if !ok {
			summary.Failed++
			return
		}
		summary.Formatted++
		summary.ByCarrier[carrier]++
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(batchOpts.workers, 1))

	for _, path := range files {
		path := path
		g.Go(func() error {
			flog := log.With().Str("file", filepath.Base(path)).Logger()

			app, err := readApplicationFile(path)
			if err != nil {
				flog.Error().Err(err).Msg("skipping unreadable application")
				record("", false)
				return nil
			}
			carrier, err := resolveCarrier(app)
			if err != nil {
				flog.Error().Err(err).Msg("skipping application")
				record("", false)
				return nil
			}
			doc, err := f.Format(gctx, app, carrier)
			if err != nil {
				record("", false)
				return nil
			}

			var out any = doc
			if !batchOpts.raw {
				out = p.Wrap(app, carrier, doc)
			}
			name := strings.TrimSuffix(filepath.Base(path), ".json") + ".formatted.json"
			w, err := os.Create(filepath.Join(batchOpts.out, name))
			if err != nil {
				return err
			}
			if err := writeJSON(w, out); err != nil {
				w.Close()
				return err
			}
			if err := w.Close(); err != nil {
				return err
			}
			record(carrier, true)
			return nil
		})
	}

	// Only output I/O failures abort the batch.
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("batch aborted")
		os.Exit(exitcode.FormatError)
	}

	summary.Duration = time.Since(start)
	log.Info().
		Int("files", summary.Files).
		Int64("formatted", summary.Formatted).
		Int64("failed", summary.Failed).
		Str("total_duration", summary.Duration.String()).
		Msg("batch complete")

	fmt.Printf("Batch complete: %d of %d applications formatted (%.1fs)\n",
		summary.Formatted, summary.Files, summary.Duration.Seconds())
	for _, c := range model.AllCarriers {
		if n := summary.ByCarrier[c]; n > 0 {
			fmt.Printf("  %-16s %d\n", c, n)
		}
	}

	if summary.Failed > 0 {
		os.Exit(exitcode.FormatError)
	}
	return nil
}
