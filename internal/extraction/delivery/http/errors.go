package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"action-item-extractor/internal/extraction"
	pkgErrors "action-item-extractor/pkg/errors"
	"action-item-extractor/pkg/response"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// It returns nil for errors the client should not see.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, extraction.ErrEmptyDialogue):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "dialogue is empty")
	case errors.Is(err, extraction.ErrDialogueTooLong):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "dialogue is too long")
	case errors.Is(err, extraction.ErrLLMUnavailable):
		return pkgErrors.ErrBadGateway
	default:
		return nil
	}
}

// renderError writes the response for a use-case error; unknown errors become
// a generic 500.
func (h *handler) renderError(c *gin.Context, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped)
		return
	}
	response.InternalError(c, err)
}
