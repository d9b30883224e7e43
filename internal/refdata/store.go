package refdata

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/medsupp/appformat/internal/company"
)

// Paths locates the reference files on disk.
type Paths struct {
	Producer      string
	ZipTable      string
	NAICDirectory string
}

// Tables is one immutable snapshot of all reference data.
type Tables struct {
	Producer  Producer
	Zips      ZipTable
	Companies *company.Resolver
	LoadedAt  time.Time
}

// Store serves the current reference snapshot to concurrent formatters.
// Snapshots are replaced wholesale by Reload and never mutated in place.
type Store struct {
	paths Paths
	log   zerolog.Logger
	cur   atomic.Pointer[Tables]
}

// Open loads every reference file. A file that fails to load leaves its
// table empty; the returned error reports which files were skipped, and the
// store is usable either way.
func Open(paths Paths, log zerolog.Logger) (*Store, error) {
	s := &Store{paths: paths, log: log}
	t, err := load(paths)
	s.cur.Store(t)
	log.Info().
		Int("zips", len(t.Zips)).
		Int("companies", t.Companies.Len()).
		Bool("producer", t.Producer.FirstName != "" || t.Producer.LastName != "").
		Msg("reference data loaded")
	return s, err
}

// NewStatic wraps prebuilt tables. Reload on a static store is a no-op.
func NewStatic(t Tables) *Store {
	if t.Companies == nil {
		t.Companies = company.NewResolver(nil)
	}
	if t.LoadedAt.IsZero() {
		t.LoadedAt = time.Now()
	}
	s := &Store{log: zerolog.Nop()}
	s.cur.Store(&t)
	return s
}

// Reload re-reads all files and swaps the snapshot only if every file loaded.
func (s *Store) Reload() error {
	if s.paths == (Paths{}) {
		return nil
	}
	t, err := load(s.paths)
	if err != nil {
		s.log.Warn().Err(err).Msg("reference reload failed, keeping previous snapshot")
		return err
	}
	s.cur.Store(t)
	s.log.Info().Time("loaded_at", t.LoadedAt).Msg("reference data reloaded")
	return nil
}

// Tables returns the current snapshot.
func (s *Store) Tables() *Tables {
	return s.cur.Load()
}

// Producer returns the producer profile.
func (s *Store) Producer() Producer {
	return s.cur.Load().Producer
}

// ResolveZip resolves a zip code to its city and state.
func (s *Store) ResolveZip(zip5 string) Place {
	return s.cur.Load().Zips.Resolve(zip5)
}

// NAICCode resolves a free-text company name to its NAIC code, or "".
func (s *Store) NAICCode(companyName string) string {
	return s.cur.Load().Companies.Code(companyName)
}

func load(paths Paths) (*Tables, error) {
	t := &Tables{LoadedAt: time.Now()}
	var errs []error

	if paths.Producer != "" {
		p, err := LoadProducer(paths.Producer)
		if err != nil {
			errs = append(errs, err)
		}
		t.Producer = p
	}
	if paths.ZipTable != "" {
		zt, err := LoadZipTable(paths.ZipTable)
		if err != nil {
			errs = append(errs, err)
		}
		t.Zips = zt
	}
	var dir []company.Entry
	if paths.NAICDirectory != "" {
		d, err := LoadNAICDirectory(paths.NAICDirectory)
		if err != nil {
			errs = append(errs, err)
		}
		dir = d
	}
	t.Companies = company.NewResolver(dir)

	return t, errors.Join(errs...)
}
