package dao

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Gender{},
		&UserType{},
		&User{},
		&Sport{},
		&SportLevel{},
		&Category{},
		&Event{},
		&EventCategory{},
		&Inscription{},
		&Result{},
	)
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation on the named constraint. The storage constraints are the
// authoritative race-breakers; DAOs translate them back into the same
// conflict errors the pre-checks produce.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.Message, `"`+constraint+`"`)
}
