package http

import (
	"errors"
	"net/http"

	"production-board/internal/view"
	pkgErrors "production-board/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Unknown errors return nil and are reported as internal errors.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, view.ErrUnknownKind):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, view.ErrInvalidDirection),
		errors.Is(err, view.ErrInvalidDue):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return nil
	}
}
