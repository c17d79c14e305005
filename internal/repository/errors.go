package repository

import (
	"errors"

	"github.com/lib/pq"
)

// Sentinel errors shared by all repositories. Services translate these into
// user-facing messages and controllers into HTTP statuses.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation. Racing duplicate inserts surface this way and the callers treat
// it as a benign conflict, not a failure.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
