// Package appstore reads intake application records from Postgres.
package appstore

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"

	"github.com/medsupp/appformat/internal/model"
	embedsql "github.com/medsupp/appformat/internal/sql"
)

// ErrApplicationNotFound is returned when no application has the requested id.
var ErrApplicationNotFound = errors.New("application not found")

// Querier is the read surface the store needs. *pgxpool.Pool satisfies it.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store fetches application records joined with the owning user's email and
// onboarding answers. It never writes.
type Store struct {
	q Querier
}

// New returns a Store reading through q.
func New(q Querier) *Store {
	return &Store{q: q}
}

// GetApplication loads one application by id. The intake data is returned as
// the raw JSON text the database holds; the formatter decodes it.
func (s *Store) GetApplication(ctx context.Context, id string) (*model.Application, error) {
	var (
		appID                                 string
		status, naic, zip, county, dob, email *string
		data, onboarding                      *string
	)
	err := s.q.QueryRow(ctx, embedsql.GetApplication, id).Scan(
		&appID, &status, &naic, &zip, &county, &dob, &data, &email, &onboarding,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrApplicationNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("query application %s: %w", id, err)
	}

	app := &model.Application{
		ID:     appID,
		Status: deref(status),
		NAIC:   deref(naic),
		Zip:    deref(zip),
		County: deref(county),
		DOB:    deref(dob),
		Email:  deref(email),
	}
	if data != nil {
		app.Data = *data
	}
	if onboarding != nil && *onboarding != "" {
		var ob model.OnboardingData
		if err := json.Unmarshal([]byte(*onboarding), &ob); err != nil {
			return nil, fmt.Errorf("decode onboarding data for application %s: %w", id, err)
		}
		app.Onboarding = &ob
	}
	return app, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
