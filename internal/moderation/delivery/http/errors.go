package http

import (
	"errors"
	"net/http"

	"iffy-moderation/internal/moderation"
	pkgErrors "iffy-moderation/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Unknown errors map to a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, moderation.ErrInvalidContent), errors.Is(err, moderation.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, moderation.ErrRecordNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, moderation.ErrUpstreamRejected):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, moderation.ErrUpstreamRejected.Error())
	case errors.Is(err, moderation.ErrUpstreamUnavailable):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, moderation.ErrUpstreamUnavailable.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
