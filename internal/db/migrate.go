package db

import (
	"context"
	"fmt"
	"io/fs"
	"path"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	embedsql "github.com/medsupp/appformat/internal/sql"
)

// Execer runs a statement. *pgxpool.Pool, *pgx.Conn and pgx.Tx satisfy it.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// ApplyMigrations provisions the application-record schema on a writable
// connection, running the embedded files in filename order. All DDL uses
// IF NOT EXISTS so it is safe to repeat. The formatter itself only reads;
// this exists for local and test databases.
func ApplyMigrations(ctx context.Context, db Execer, log zerolog.Logger) ([]string, error) {
	// fs.Glob returns names in lexical order.
	names, err := fs.Glob(embedsql.Migrations, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	applied := make([]string, 0, len(names))
	for _, name := range names {
		body, err := fs.ReadFile(embedsql.Migrations, name)
		if err != nil {
			return applied, fmt.Errorf("read migration %s: %w", name, err)
		}
		base := path.Base(name)
		log.Debug().Str("migration", base).Msg("applying migration")
		if _, err := db.Exec(ctx, string(body)); err != nil {
			return applied, fmt.Errorf("execute migration %s: %w", base, err)
		}
		applied = append(applied, base)
	}

	log.Info().Int("count", len(applied)).Msg("schema ready")
	return applied, nil
}
