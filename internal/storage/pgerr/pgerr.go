// Package pgerr classifies PostgreSQL errors returned through lib/pq.
package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

const (
	codeUniqueViolation     pq.ErrorCode = "23505"
	codeForeignKeyViolation pq.ErrorCode = "23503"
)

// IsUniqueViolation reports whether err is a unique violation on the named constraint.
// An empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	return matches(err, codeUniqueViolation, constraint)
}

// IsForeignKeyViolation reports whether err is a foreign key violation on the named constraint.
// An empty constraint matches any foreign key violation.
func IsForeignKeyViolation(err error, constraint string) bool {
	return matches(err, codeForeignKeyViolation, constraint)
}

func matches(err error, code pq.ErrorCode, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code != code {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
