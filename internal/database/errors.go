package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a record with the requested id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConstraintViolation is returned when the store rejects a write
	// because of a foreign key, uniqueness or not-null constraint.
	ErrConstraintViolation = errors.New("constraint violation")
)

type ConstraintKind string

const (
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintNotNull    ConstraintKind = "not_null"
	ConstraintOther      ConstraintKind = "constraint"
)

// ConstraintError carries the driver's description of a rejected write.
// It matches ErrConstraintViolation with errors.Is.
type ConstraintError struct {
	Kind   ConstraintKind
	Detail string
	Err    error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s constraint violated: %s", e.Kind, e.Detail)
}

func (e *ConstraintError) Unwrap() []error {
	return []error{ErrConstraintViolation, e.Err}
}

// MissingReferenceError reports an id in a write payload that points at a
// record which does not exist (a category of a book, a menu of an order item).
type MissingReferenceError struct {
	Resource string
	ID       uint
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// TranslateError maps gorm and driver errors onto the package's error
// taxonomy. Errors it does not recognise are returned unchanged and should
// be treated as persistence faults.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintForeignKey:
			return &ConstraintError{Kind: ConstraintForeignKey, Detail: sqliteErr.Error(), Err: err}
		case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
			return &ConstraintError{Kind: ConstraintUnique, Detail: sqliteErr.Error(), Err: err}
		case sqlite3.ErrConstraintNotNull:
			return &ConstraintError{Kind: ConstraintNotNull, Detail: sqliteErr.Error(), Err: err}
		case sqlite3.ErrConstraintTrigger:
			// ON DELETE RESTRICT is enforced as a trigger constraint.
			if strings.Contains(sqliteErr.Error(), "FOREIGN KEY") {
				return &ConstraintError{Kind: ConstraintForeignKey, Detail: sqliteErr.Error(), Err: err}
			}
		}
		if sqliteErr.Code == sqlite3.ErrConstraint {
			return &ConstraintError{Kind: ConstraintOther, Detail: sqliteErr.Error(), Err: err}
		}
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		detail := pgErr.Message
		if pgErr.Detail != "" {
			detail = pgErr.Detail
		}
		switch pgErr.Code {
		case "23503":
			return &ConstraintError{Kind: ConstraintForeignKey, Detail: detail, Err: err}
		case "23505":
			return &ConstraintError{Kind: ConstraintUnique, Detail: detail, Err: err}
		case "23502":
			return &ConstraintError{Kind: ConstraintNotNull, Detail: detail, Err: err}
		}
		return err
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1451, 1452:
			return &ConstraintError{Kind: ConstraintForeignKey, Detail: myErr.Message, Err: err}
		case 1062:
			return &ConstraintError{Kind: ConstraintUnique, Detail: myErr.Message, Err: err}
		case 1048:
			return &ConstraintError{Kind: ConstraintNotNull, Detail: myErr.Message, Err: err}
		}
		return err
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ConstraintError{Kind: ConstraintUnique, Detail: err.Error(), Err: err}
	}

	return err
}
