// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed statement is worth retrying.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// pgRetryableCodes lists the SQLSTATE codes of transient failures: lost
// connections (class 08), rolled back transactions (class 40) and a server
// that is still starting up (57P03). Every other code is permanent.
var pgRetryableCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	pgerrcode.TransactionRollback:    {},
	pgerrcode.SerializationFailure:   {},
	pgerrcode.DeadlockDetected:       {},
	pgerrcode.CannotConnectNow:       {},
}

// PostgresErrorClassifier implements [ErrorClassificator] on the SQLSTATE
// carried by *pgconn.PgError.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code, ok := pgCode(err)
	if !ok {
		return NonRetryable
	}

	if _, retry := pgRetryableCodes[code]; retry {
		return Retryable
	}
	return NonRetryable
}

// IsUniqueViolation reports SQLSTATE 23505, raised here by the unique index
// on users.email.
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	code, ok := pgCode(err)
	return ok && code == pgerrcode.UniqueViolation
}

// IsForeignKeyViolation reports SQLSTATE 23503, raised when a status
// references a user that no longer exists.
func (c *PostgresErrorClassifier) IsForeignKeyViolation(err error) bool {
	code, ok := pgCode(err)
	return ok && code == pgerrcode.ForeignKeyViolation
}

func pgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return "", false
	}
	return pgErr.Code, true
}
