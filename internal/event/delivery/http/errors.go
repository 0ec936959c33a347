package http

import (
	"errors"
	"net/http"

	"household-calendar/internal/event"
	pkgErrors "household-calendar/pkg/errors"
)

var errInvalidTime = errors.New("from and to must be RFC 3339 timestamps")

// mapError translates event use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrEmptyTitle),
		errors.Is(err, event.ErrInvalidRange),
		errors.Is(err, event.ErrDurationTooLong),
		errors.Is(err, event.ErrEmptyBatch),
		errors.Is(err, event.ErrMissingRecurrence),
		errors.Is(err, event.ErrInvalidWindow):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, event.ErrMissingWorkspace):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, event.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, event.ErrForbidden):
		return pkgErrors.ErrForbidden
	default:
		return pkgErrors.ErrInternalServerError
	}
}
