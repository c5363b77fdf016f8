package http

import (
	"net/http"

	"medevac-case-service/internal/usecase/escalation"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EscalationHandler struct {
	uc  *escalation.Usecase
	log *zap.Logger
}

func NewEscalationHandler(uc *escalation.Usecase, log *zap.Logger) *EscalationHandler {
	return &EscalationHandler{uc: uc, log: log}
}

func (h *EscalationHandler) List(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *EscalationHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid escalation id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *EscalationHandler) Create(c echo.Context) error {
	var req escalation.CreateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *EscalationHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid escalation id"})
	}
	var req escalation.UpdateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Update(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type resolveReq struct {
	ResolutionNote string `json:"resolution_note"`
}

func (h *EscalationHandler) Resolve(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid escalation id"})
	}
	var req resolveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Resolve(c.Request().Context(), id, req.ResolutionNote)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *EscalationHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid escalation id"})
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "escalation deleted"})
}
