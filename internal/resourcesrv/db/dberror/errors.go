package dberror

import (
	"errors"
	"net/http"

	"github.com/jackc/pgconn"
	"github.com/tansive/resourcesrv/internal/common/apperrors"
)

var (
	ErrDatabase         apperrors.Error = apperrors.New("db error").SetStatusCode(http.StatusInternalServerError)
	ErrNotFound         apperrors.Error = ErrDatabase.New("not found").SetStatusCode(http.StatusNotFound)
	ErrInvalidInput     apperrors.Error = ErrDatabase.New("invalid input").SetStatusCode(http.StatusBadRequest)
	ErrResourceNotFound apperrors.Error = ErrNotFound.New("Resource not found")
	ErrMissingName      apperrors.Error = ErrInvalidInput.New("Name is required")
	ErrEmptyName        apperrors.Error = ErrInvalidInput.New("Name cannot be empty")
	ErrNullStatus       apperrors.Error = ErrInvalidInput.New("Status cannot be null")
	ErrNoFieldsToUpdate apperrors.Error = ErrInvalidInput.New("No fields to update")
)

// FromDriver wraps a driver failure so that its message reaches the caller.
// PostgreSQL errors report the server message without the severity and
// SQLSTATE decoration.
func FromDriver(err error) apperrors.Error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ErrDatabase.MsgErr(pgErr.Message, err)
	}
	return ErrDatabase.MsgErr(err.Error(), err)
}
