package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/migrations"
	"github.com/sethvargo/go-retry"
)

// maxStatementRetries bounds how often a statement hitting a transient lock
// is re-run.
const maxStatementRetries = 3

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate brings the fallback schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}

	if len(applied) > 0 {
		db.logger.Info().Ints64("versions", applied).Msg("fallback schema migrated")
	}

	return nil
}

// withRetry runs fn again while it fails with an error the classifier deems
// retryable, backing off exponentially from 5ms.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxStatementRetries, retry.NewExponential(5*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			db.logger.Debug().Err(err).Msg("retrying statement after transient database error")
			return retry.RetryableError(err)
		}
		return err
	})
}
