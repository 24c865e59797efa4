package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound            = gorm.ErrRecordNotFound
	ErrDuplicate           = gorm.ErrDuplicatedKey
	ErrInsufficientDeposit = errors.New("wallet balance does not cover the deposit")
	ErrOutOfStock          = errors.New("no copy available at this library")
	ErrInvalidGenreName    = errors.New("genre name has no letters or digits")
)

const pgForeignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
