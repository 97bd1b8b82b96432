package repositories

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// Error kinds surfaced by the store. Callers match them with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrReferentialFailure = errors.New("referential failure")
	ErrStoreUnavailable   = errors.New("store unavailable")
)

// Error is a classified store failure. Message is safe to show to clients;
// Err keeps the driver error for logs.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewError builds a classified error of the given kind
func NewError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// notFound reports a missing record of the named entity
func notFound(entity string) *Error {
	return NewError(ErrNotFound, entity+" not found", gorm.ErrRecordNotFound)
}

// TranslateError maps gorm, postgres and sqlite failures onto the error kinds.
// Unrecognised errors are returned unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NewError(ErrNotFound, "record not found", err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return NewError(ErrConflict, "record already exists", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return NewError(ErrReferentialFailure, "referenced record does not exist", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.UniqueViolation:
			return NewError(ErrConflict, "record already exists", err)
		case pgErr.Code == pgerrcode.ForeignKeyViolation:
			return NewError(ErrReferentialFailure, "referenced record does not exist", err)
		case pgerrcode.IsConnectionException(pgErr.Code),
			pgerrcode.IsInsufficientResources(pgErr.Code),
			pgerrcode.IsOperatorIntervention(pgErr.Code):
			return NewError(ErrStoreUnavailable, "database unavailable", err)
		}
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return NewError(ErrConflict, "record already exists", err)
		case sqlite3.ErrConstraintForeignKey:
			return NewError(ErrReferentialFailure, "referenced record does not exist", err)
		}
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen, sqlite3.ErrIoErr:
			return NewError(ErrStoreUnavailable, "database unavailable", err)
		}
		return err
	}

	var connectErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connectErr) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.As(err, &netErr) {
		return NewError(ErrStoreUnavailable, "database unavailable", err)
	}

	return err
}
