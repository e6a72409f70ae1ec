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

var userColumns = []string{
	"id",
	"name",
	"email",
	"password",
	"activated",
	"activation_token",
	"created_at",
	"updated_at",
}

// userRepository is the SQL-backed implementation of [UserRepository].
// It works against the "users" table on both supported drivers.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the user and, inside the same transaction, hands the
// stored record to afterCreate. The transaction commits only when
// afterCreate succeeds.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyTaken].
//   - afterCreate error → returned unchanged, insert rolled back.
//   - any other driver-level error → wrapped with a low-level sentinel.
func (r *userRepository) CreateUser(ctx context.Context, user models.User, afterCreate func(ctx context.Context, created models.User) error) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(user.TableName()).
		Columns("name", "email", "password", "activated", "activation_token").
		Values(user.Name, user.Email, user.PasswordHash, user.Activated, user.ActivationToken).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var id int64
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			if r.db.errorClassificator.IsUniqueViolation(err) {
				return ErrEmailAlreadyTaken
			}
			log.Err(err).
				Str("func", "*userRepository.CreateUser").
				Bool("retryable", r.db.retryable(err)).
				Msg("failed to insert user")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		found, err := r.findUser(ctx, tx, sq.Eq{"id": id})
		if err != nil {
			return err
		}
		created = found

		if afterCreate == nil {
			return nil
		}
		return afterCreate(ctx, created)
	})
	if err != nil {
		return models.User{}, err
	}

	return created, nil
}

// FindUserByID returns [ErrNoUserWasFound] when no user has the given id.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUser(ctx, r.db, sq.Eq{"id": id})
}

// FindUserByEmail returns [ErrNoUserWasFound] when no user has the given email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, r.db, sq.Eq{"email": email})
}

func (r *userRepository) ListUsers(ctx context.Context, page models.Page) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id ASC").
		Limit(page.Limit()).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.ListUsers").
			Int("page", page.Number).
			Msg("failed to execute query for listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, page.Limit())
	for rows.Next() {
		var user models.User
		if err := rows.Scan(userScanDest(&user)...); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From(models.User{}.TableName()).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CountUsers").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*userRepository.CountUsers").Msg("failed to count users")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// UpdateUser writes the name and password hash of user and returns the
// stored record. Returns [ErrNoUserWasFound] when the user does not exist.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(user.TableName()).
		Set("name", user.Name).
		Set("password", user.PasswordHash).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": user.ID}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).
			Str("func", "*userRepository.UpdateUser").
			Int64("user_id", user.ID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to update user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.findUser(ctx, r.db, sq.Eq{"id": id})
}

// ActivateUser consumes token. Returns [ErrNoUserWasFound] when no
// unactivated user holds it, including when it was already consumed.
func (r *userRepository) ActivateUser(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(models.User{}.TableName()).
		Set("activated", true).
		Set("activation_token", nil).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"activation_token": token, "activated": false}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ActivateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.ActivateUser").Msg("failed to activate user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.findUser(ctx, r.db, sq.Eq{"id": id})
}

// DeleteUser removes the user's statuses and then the user in one
// transaction. Returns [ErrNoUserWasFound] when the user does not exist.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	deleteStatuses, statusArgs, err := r.db.builder.
		Delete(models.Status{}.TableName()).
		Where(sq.Eq{"user_id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleteUser, userArgs, err := r.db.builder.
		Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteStatuses, statusArgs...); err != nil {
			log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", id).Msg("failed to delete statuses")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		result, err := tx.ExecContext(ctx, deleteUser, userArgs...)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", id).Msg("failed to delete user")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrNoUserWasFound
		}

		return nil
	})
}

// findUser selects a single user matching where using q.
func (r *userRepository) findUser(ctx context.Context, q querier, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	if err := q.QueryRowContext(ctx, query, args...).Scan(userScanDest(&user)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.findUser").Msg("failed to scan user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// userScanDest lists the scan targets matching [userColumns].
func userScanDest(user *models.User) []any {
	return []any{
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Activated,
		&user.ActivationToken,
		&user.CreatedAt,
		&user.UpdatedAt,
	}
}
