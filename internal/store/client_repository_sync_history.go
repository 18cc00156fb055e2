package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/carbon/internal/logger"
	"github.com/MKhiriev/carbon/models"
)

const syncHistoryTable = "sync_history"

var syncHistoryColumns = []string{
	"id",
	"op",
	"started_at",
	"finished_at",
	"success",
	"conflict",
	"error",
	"local_last_modified",
	"remote_last_modified",
}

type syncHistoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncHistoryRepository returns the SQLite-backed [SyncHistoryRepository].
func NewSyncHistoryRepository(db *DB, logger *logger.Logger) SyncHistoryRepository {
	return &syncHistoryRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *syncHistoryRepository) RecordAttempt(ctx context.Context, attempt models.SyncAttempt) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert(syncHistoryTable).
		Columns(syncHistoryColumns[1:]...).
		Values(
			attempt.Op,
			attempt.StartedAt,
			attempt.FinishedAt,
			attempt.Success,
			attempt.Conflict,
			attempt.Error,
			attempt.LocalLastModified,
			attempt.RemoteLastModified,
		).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "syncHistoryRepository.RecordAttempt").
			Msg("failed to build insert query")
		return 0, fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncHistoryRepository.RecordAttempt").
			Str("op", string(attempt.Op)).
			Msg("failed to insert sync attempt")
		return 0, fmt.Errorf("%w: %s", ErrExecutingStatement, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrExecutingStatement, err)
	}

	return id, nil
}

func (r *syncHistoryRepository) RecentAttempts(ctx context.Context, limit uint64) ([]models.SyncAttempt, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(syncHistoryColumns...).
		From(syncHistoryTable).
		OrderBy("finished_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "syncHistoryRepository.RecentAttempts").
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncHistoryRepository.RecentAttempts").
			Msg("failed to query sync history")
		return nil, fmt.Errorf("%w: %s", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var attempts []models.SyncAttempt
	for rows.Next() {
		var attempt models.SyncAttempt
		scanErr := rows.Scan(
			&attempt.ID,
			&attempt.Op,
			&attempt.StartedAt,
			&attempt.FinishedAt,
			&attempt.Success,
			&attempt.Conflict,
			&attempt.Error,
			&attempt.LocalLastModified,
			&attempt.RemoteLastModified,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncHistoryRepository.RecentAttempts").
				Msg("failed to scan sync history row")
			return nil, fmt.Errorf("%w: %s", ErrScanningRows, scanErr)
		}
		attempts = append(attempts, attempt)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrScanningRows, err)
	}

	return attempts, nil
}

func (r *syncHistoryRepository) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete(syncHistoryTable).
		Where(sq.Lt{"finished_at": cutoff}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "syncHistoryRepository.PruneOlderThan").
			Msg("failed to build delete query")
		return 0, fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncHistoryRepository.PruneOlderThan").
			Time("cutoff", cutoff).
			Msg("failed to prune sync history")
		return 0, fmt.Errorf("%w: %s", ErrExecutingStatement, err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrExecutingStatement, err)
	}

	return removed, nil
}
