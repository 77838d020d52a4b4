package http

import (
	"errors"
	"net/http"

	"meeting-task-extractor/internal/extraction"
	pkgErrors "meeting-task-extractor/pkg/errors"
)

const (
	msgUpstreamFailed = "text generation service failed"
	msgNotConfigured  = "model extraction is not configured"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Upstream details stay in the logs; clients get a fixed message.
func (h *handler) mapError(err error) error {
	var (
		validationErr *extraction.ValidationError
		configErr     *extraction.ConfigurationError
		upstreamErr   *extraction.UpstreamError
	)

	switch {
	case errors.As(err, &validationErr):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &configErr):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, msgNotConfigured)
	case errors.As(err, &upstreamErr):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, msgUpstreamFailed)
	default:
		return pkgErrors.ErrInternalServerError
	}
}
