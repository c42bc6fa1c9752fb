package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// IsUniqueViolation 回報 err 是否為指定 constraint 的 unique_violation；
// constraint 為空字串時不比對名稱
func IsUniqueViolation(err error, constraint string) bool {
	return isPgError(err, uniqueViolation, constraint)
}

// IsForeignKeyViolation 同上，針對 foreign_key_violation
func IsForeignKeyViolation(err error, constraint string) bool {
	return isPgError(err, foreignKeyViolation, constraint)
}

func isPgError(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
