package http

import (
	"net/http"

	"medevac-case-service/internal/domain/closure"
	closureUC "medevac-case-service/internal/usecase/closure"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ClosureHandler struct {
	uc  *closureUC.Usecase
	log *zap.Logger
}

func NewClosureHandler(uc *closureUC.Usecase, log *zap.Logger) *ClosureHandler {
	return &ClosureHandler{uc: uc, log: log}
}

func (h *ClosureHandler) Close(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid enquiry id"})
	}
	var req closureUC.CloseInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	req.EnquiryID = id
	dto, err := h.uc.Close(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ClosureHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid closure id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ClosureHandler) List(c echo.Context) error {
	if status := c.QueryParam("status"); status != "" {
		dtos, err := h.uc.ListByStatus(c.Request().Context(), closure.Status(status))
		if err != nil {
			return respondError(c, h.log, err)
		}
		return c.JSON(http.StatusOK, dtos)
	}
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
