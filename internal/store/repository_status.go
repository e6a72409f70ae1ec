// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/models"
)

var statusColumns = []string{"id", "user_id", "content", "created_at", "updated_at"}

// statusRepository is the SQL-backed implementation of [StatusRepository].
type statusRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewStatusRepository constructs a [StatusRepository] backed by db.
func NewStatusRepository(db *DB, logger *logger.Logger) StatusRepository {
	logger.Debug().Msg("creating status repository")
	return &statusRepository{
		db:     db,
		logger: logger,
	}
}

func (r *statusRepository) CreateStatus(ctx context.Context, status models.Status) (models.Status, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(status.TableName()).
		Columns("user_id", "content").
		Values(status.UserID, status.Content).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*statusRepository.CreateStatus").Msg("failed to build query")
		return models.Status{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if r.db.errorClassificator.IsForeignKeyViolation(err) {
			log.Debug().Str("func", "*statusRepository.CreateStatus").Int64("user_id", status.UserID).Msg("author does not exist")
			return models.Status{}, fmt.Errorf("%w: %w", ErrNoUserWasFound, err)
		}
		log.Err(err).
			Str("func", "*statusRepository.CreateStatus").
			Int64("user_id", status.UserID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to insert status")
		return models.Status{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.FindStatusByID(ctx, id)
}

// FindStatusByID returns [ErrNoStatusWasFound] when no status has the given id.
func (r *statusRepository) FindStatusByID(ctx context.Context, id int64) (models.Status, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(statusColumns...).
		From(models.Status{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*statusRepository.FindStatusByID").Msg("failed to build query")
		return models.Status{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var status models.Status
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&status.ID, &status.UserID, &status.Content, &status.CreatedAt, &status.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Status{}, ErrNoStatusWasFound
		}
		log.Err(err).Str("func", "*statusRepository.FindStatusByID").Int64("status_id", id).Msg("failed to scan status row")
		return models.Status{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return status, nil
}

func (r *statusRepository) ListStatusesByUser(ctx context.Context, userID int64, page models.Page) ([]models.Status, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(statusColumns...).
		From(models.Status{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(page.Limit()).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*statusRepository.ListStatusesByUser").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*statusRepository.ListStatusesByUser").
			Int64("user_id", userID).
			Msg("failed to execute query for listing statuses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	statuses := make([]models.Status, 0, page.Limit())
	for rows.Next() {
		var status models.Status
		if err := rows.Scan(&status.ID, &status.UserID, &status.Content, &status.CreatedAt, &status.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*statusRepository.ListStatusesByUser").Msg("failed to scan status row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		statuses = append(statuses, status)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*statusRepository.ListStatusesByUser").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return statuses, nil
}

func (r *statusRepository) CountStatusesByUser(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From(models.Status{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*statusRepository.CountStatusesByUser").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*statusRepository.CountStatusesByUser").Int64("user_id", userID).Msg("failed to count statuses")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// DeleteStatus returns [ErrNoStatusWasFound] when nothing was deleted.
func (r *statusRepository) DeleteStatus(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Status{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*statusRepository.DeleteStatus").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*statusRepository.DeleteStatus").Int64("status_id", id).Msg("failed to delete status")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoStatusWasFound
	}

	return nil
}
