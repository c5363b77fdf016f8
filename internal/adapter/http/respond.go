package http

import (
	"errors"
	"net/http"
	"strconv"

	"medevac-case-service/internal/domain/closure"
	"medevac-case-service/internal/domain/district"
	"medevac-case-service/internal/domain/enquiry"
	"medevac-case-service/internal/domain/escalation"
	"medevac-case-service/internal/domain/hospital"
	"medevac-case-service/internal/domain/query"
	"medevac-case-service/internal/domain/user"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// respondError maps the domain error taxonomy onto HTTP codes. Anything not
// in the taxonomy is logged and surfaced as a generic 500.
func respondError(c echo.Context, log *zap.Logger, err error) error {
	var ve *enquiry.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation error",
			Details: []FieldError{{Field: ve.Field, Message: ve.Message}},
		})
	}

	var ce *enquiry.ConflictError
	if errors.As(err, &ce) {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: ce.Error()})
	}
	if errors.Is(err, escalation.ErrAlreadyResolved) || errors.Is(err, enquiry.ErrDuplicate) {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	}

	var re *enquiry.ReferenceError
	if errors.As(err, &re) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: re.Error()})
	}

	switch {
	case errors.Is(err, enquiry.ErrNotFound),
		errors.Is(err, escalation.ErrNotFound),
		errors.Is(err, query.ErrNotFound),
		errors.Is(err, closure.ErrNotFound),
		errors.Is(err, hospital.ErrNotFound),
		errors.Is(err, district.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	}

	log.Error("request failed",
		zap.String("path", c.Path()),
		zap.Error(err))
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// actorFrom reads the authenticated identity set by the auth layer (out of
// scope here) from request headers.
func actorFrom(c echo.Context) user.Actor {
	a := user.Actor{Role: user.Role(c.Request().Header.Get("Ax-User-Role"))}
	if id, err := strconv.ParseUint(c.Request().Header.Get("Ax-User-Id"), 10, 64); err == nil {
		a.UserID = id
	}
	return a
}

func pathID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return id, err == nil && id != 0
}
